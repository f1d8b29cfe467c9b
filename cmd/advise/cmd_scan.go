package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"akwana/internal/domain"
)

func newScanCmd(f *rootFlags) *cobra.Command {
	var (
		scanType string
		file     string
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Diagnose a crop or soil photo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			in, err := domain.NewImageInput(domain.ImageDescriptor{
				Data:        data,
				ContentType: http.DetectContentType(data),
				ScanType:    domain.ScanType(scanType),
				Metadata:    map[string]string{"filename": file},
			})
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
	fl := cmd.Flags()
	fl.StringVar(&scanType, "type", string(domain.ScanCrop), "scan type: crop or soil")
	fl.StringVarP(&file, "file", "f", "", "image file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
