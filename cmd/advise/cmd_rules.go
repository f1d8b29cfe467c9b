package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newRulesCmd(f *rootFlags) *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog in match order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(f)
			if err != nil {
				return err
			}
			rules, err := cat.All()
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleLight)
			tw.SetTitle("Catalog " + cat.Version())
			tw.AppendHeader(table.Row{"#", "ID", "Tags", "Keywords", "Severity", "Confidence", "Cost"})
			for i, r := range rules {
				cost := ""
				if r.CostEstimate != nil {
					cost = r.CostEstimate.String()
				}
				tw.AppendRow(table.Row{
					i + 1, r.ID,
					strings.Join(r.DomainTags, ", "),
					strings.Join(r.Keywords, ", "),
					r.Severity,
					fmt.Sprintf("%.0f", r.ConfidenceBase),
					cost,
				})
			}
			var out string
			if markdown {
				out = tw.RenderMarkdown()
			} else {
				out = tw.Render()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render as a Markdown table")
	return cmd
}
