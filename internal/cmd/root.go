// Package cmd wires the legallens command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shauryaa19/legallens/internal/rules"
	"github.com/shauryaa19/legallens/internal/rulesdsl"
	"github.com/shauryaa19/legallens/internal/shared"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "legallens",
	Short: "legallens - legal contract risk analyzer",
	Long: `legallens scans contract text for risky clauses (unlimited liability,
penalty clauses, foreign governing law, unfair termination, missing
dispute resolution), scores each document and writes JSON/HTML reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig layers the --config file over defaults plus LEGALLENS_* env
// overrides. --verbose forces debug logging regardless of config.
func loadConfig() (shared.Config, error) {
	cfg, err := shared.LoadConfig(cfgPath)
	if err != nil {
		return cfg, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// buildRegistry assembles the rule catalog for this deployment: the built-in
// rules, extended by any YAML rulepacks, minus disabled ids.
func buildRegistry(cfg shared.Config) (*rules.Registry, error) {
	reg := rules.Default()
	if len(cfg.Analysis.RulePacks) > 0 {
		extra, err := rulesdsl.LoadAll(cfg.Analysis.RulePacks)
		if err != nil {
			return nil, fmt.Errorf("rule packs: %w", err)
		}
		if reg, err = rules.Extend(extra); err != nil {
			return nil, fmt.Errorf("rule packs: %w", err)
		}
	}
	if len(cfg.Analysis.DisabledRules) > 0 {
		reg = reg.Without(cfg.Analysis.DisabledRules...)
	}
	return reg, nil
}
