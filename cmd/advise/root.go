package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	rulesPath     string
	classifierURL string
	delay         time.Duration
	timeout       time.Duration
	asJSON        bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:   "advise",
		Short: "Offline crop, soil and farming advice from the rule catalog",
		Long:  "advise runs the diagnosis pipeline in-process: a question or photo is\nmatched against the rule catalog and the advisory is printed.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.rulesPath, "rules", "", "YAML rule catalog (default: built-in)")
	pf.StringVar(&flags.classifierURL, "classifier-url", "", "HTTP inference endpoint for photos (default: simulated)")
	pf.DurationVar(&flags.delay, "delay", 0, "simulated classifier latency")
	pf.DurationVar(&flags.timeout, "timeout", 10*time.Second, "classification deadline")
	pf.BoolVar(&flags.asJSON, "json", false, "print the artifact as JSON")

	root.AddCommand(newAskCmd(&flags))
	root.AddCommand(newScanCmd(&flags))
	root.AddCommand(newRulesCmd(&flags))
	root.AddCommand(newWeatherCmd(&flags))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
