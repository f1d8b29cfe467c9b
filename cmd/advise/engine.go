package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"akwana/internal/adapters/remote"
	"akwana/internal/adapters/simulated"
	"akwana/internal/adapters/textintent"
	"akwana/internal/catalog"
	"akwana/internal/domain"
	"akwana/internal/ports"
	"akwana/internal/services/classifier"
	"akwana/internal/services/recommend"
	"akwana/internal/workers/scanrunner"
)

func loadCatalog(f *rootFlags) (*catalog.Catalog, error) {
	if f.rulesPath != "" {
		return catalog.LoadFile(f.rulesPath)
	}
	return catalog.Builtin()
}

// diagnose runs one input through classification and artifact building
// on the calling goroutine.
func diagnose(ctx context.Context, f *rootFlags, in domain.Input) (domain.Artifact, error) {
	cat, err := loadCatalog(f)
	if err != nil {
		return domain.Artifact{}, err
	}
	var images ports.ImageClassifier = simulated.New(f.delay)
	if f.classifierURL != "" {
		images = remote.New(f.classifierURL, nil)
	}
	cls := classifier.New(cat, images, classifier.WithTextIntent(textintent.New(nil)))
	runner := scanrunner.New(cls, scanrunner.Options{Timeout: f.timeout}, nil)

	m, err := runner.ProcessInline(ctx, in)
	if err != nil {
		return domain.Artifact{}, err
	}
	return recommend.New().Build(m, in)
}

func printArtifact(w io.Writer, f *rootFlags, a domain.Artifact) error {
	if f.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(a.Title)
	tw.AppendRow(table.Row{"Status", strings.ToUpper(string(a.Status))})
	tw.AppendRow(table.Row{"Confidence", fmt.Sprintf("%.0f%%", a.Confidence)})
	rule := a.MatchedRuleID
	if a.Fallback {
		rule = "(no specific match)"
	}
	tw.AppendRow(table.Row{"Rule", rule})
	tw.AppendSeparator()
	for i, issue := range a.Issues {
		tw.AppendRow(table.Row{label("Issues", i), issue})
	}
	tw.AppendSeparator()
	for i, rec := range a.Recommendations {
		tw.AppendRow(table.Row{label("Recommendations", i), fmt.Sprintf("%d. %s", i+1, rec)})
	}
	if a.CostEstimate != nil {
		tw.AppendSeparator()
		tw.AppendRow(table.Row{"Treatment cost", a.CostEstimate.String()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 72},
	})
	tw.Render()
	return nil
}

func label(name string, i int) string {
	if i == 0 {
		return name
	}
	return ""
}
