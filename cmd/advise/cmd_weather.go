package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"akwana/internal/adapters/simulated"
	"akwana/internal/services/weather"
)

func newWeatherCmd(f *rootFlags) *cobra.Command {
	var (
		district string
		days     int
	)
	cmd := &cobra.Command{
		Use:     "weather",
		Short:   "Daily farming advice and alerts from the district forecast",
		Example: `  advise weather --district Mukono --days 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(f)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out, err := weather.New(cat, simulated.NewForecast(nil), nil).Outlook(ctx, district, days)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if f.asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for _, a := range out.Alerts {
				fmt.Fprintf(w, "[%s] %s (%s)\n", strings.ToUpper(string(a.Severity)), a.Message, a.Timing)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(w)
			tw.SetStyle(table.StyleLight)
			tw.SetTitle(out.District + " District")
			tw.AppendHeader(table.Row{"Day", "Condition", "Temp", "Rain", "Risk", "Advisory"})
			for _, d := range out.Days {
				tw.AppendRow(table.Row{
					d.Day.Label,
					d.Day.Condition,
					fmt.Sprintf("%.0f-%.0f°C", d.Day.TempMinC, d.Day.TempMaxC),
					fmt.Sprintf("%.0fmm", d.Day.RainfallMM),
					d.Risk,
					d.Advisory,
				})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&district, "district", "Mukono", "district to forecast")
	cmd.Flags().IntVar(&days, "days", weather.DefaultDays, fmt.Sprintf("days to forecast (1-%d)", weather.MaxDays))
	return cmd
}
