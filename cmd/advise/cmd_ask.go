package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"akwana/internal/domain"
)

func newAskCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a farming question",
		Example: `  advise ask "my tomato leaves have blight"
  advise ask "ddi lwe nsimba kasooli?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := domain.NewTextInput(strings.Join(args, " "))
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			a, err := diagnose(ctx, f, in)
			if err != nil {
				return err
			}
			return printArtifact(cmd.OutOrStdout(), f, a)
		},
	}
}
