package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shauryaa19/legallens/internal/contract"
	"github.com/shauryaa19/legallens/internal/document"
	"github.com/shauryaa19/legallens/internal/reporting"
	"github.com/shauryaa19/legallens/internal/rules"
	"github.com/shauryaa19/legallens/internal/shared"
	"github.com/shauryaa19/legallens/internal/storage"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Scan contract files, score them and write reports",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringSlice("path", nil, "contract file or directory (repeatable; default analysis.sources)")
	analyzeCmd.Flags().String("out", "", "output directory for reports")
	analyzeCmd.Flags().String("db", "", "SQLite database path")
	analyzeCmd.Flags().StringSlice("rules", nil, "extra YAML rulepack (repeatable)")
	analyzeCmd.Flags().StringSlice("disable", nil, "catalog rule id to skip (repeatable)")
	analyzeCmd.Flags().String("min-severity", "", "only keep issues at or above this severity (LOW|MEDIUM|HIGH)")
	analyzeCmd.Flags().Bool("no-db", false, "skip persistence and waivers, reports only")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	// precedence: flags > config > defaults
	paths, _ := cmd.Flags().GetStringSlice("path")
	if len(paths) == 0 {
		paths = cfg.Analysis.Sources
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Reporting.OutDir = out
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Database.DSN = db
	}
	if packs, _ := cmd.Flags().GetStringSlice("rules"); len(packs) > 0 {
		cfg.Analysis.RulePacks = append(cfg.Analysis.RulePacks, packs...)
	}
	if off, _ := cmd.Flags().GetStringSlice("disable"); len(off) > 0 {
		cfg.Analysis.DisabledRules = append(cfg.Analysis.DisabledRules, off...)
	}
	if ms, _ := cmd.Flags().GetString("min-severity"); ms != "" {
		cfg.Analysis.SeverityThreshold = ms
	}
	if len(paths) == 0 {
		return fmt.Errorf("analyze: --path (or analysis.sources in config) is required")
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	a, diags := document.Load(paths[0])
	for _, p := range paths[1:] {
		more, d := document.Load(p)
		a.Documents = append(a.Documents, more.Documents...)
		diags.Warnings = append(diags.Warnings, d.Warnings...)
	}
	if len(paths) > 1 {
		a.Source = strings.Join(paths, ", ")
	}
	if len(diags.Warnings) > 0 {
		slog.Warn("load warnings", "warnings", diags.Warnings)
	}
	if len(a.Documents) == 0 {
		return fmt.Errorf("analyze: no contract documents under %s", a.Source)
	}

	noDB, _ := cmd.Flags().GetBool("no-db")

	var db *storage.DB
	var waivers []storage.Waiver
	if !noDB {
		db, err = storage.OpenSQLite(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()
		if err := db.CreateSchema(); err != nil {
			return fmt.Errorf("db schema: %w", err)
		}
		if waivers, err = db.ListWaivers(true); err != nil {
			return fmt.Errorf("list waivers: %w", err)
		}
	}

	threshold := contract.ParseSeverity(cfg.Analysis.SeverityThreshold)
	waived := 0
	for i := range a.Documents {
		d := &a.Documents[i]
		res := reg.Analyze(d.Text)
		kept, w := rules.ApplyWaivers(d.Name, res.Issues, waivers)
		waived += w
		kept = rules.MinSeverity(kept, threshold)
		// waived or filtered issues drop out of the score as well
		if len(kept) != len(res.Issues) {
			res = rules.Rescore(kept)
		}
		d.Result = res
		slog.Debug("document analyzed", "name", d.Name, "score", res.RiskScore, "issues", res.TotalIssues)
	}

	if db != nil {
		if err := db.SaveAnalysis(&a); err != nil {
			return fmt.Errorf("save analysis: %w", err)
		}
	}

	if err := os.MkdirAll(cfg.Reporting.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	jsonPath, err := reporting.WriteJSON(a.ID, cfg.Reporting.OutDir, &a)
	if err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	htmlPath, err := reporting.WriteHTML(a.ID, cfg.Reporting.OutDir, &a)
	if err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	slog.Info("analyze complete",
		"analysis", a.ID,
		"documents", len(a.Documents),
		"issues", a.TotalIssues(),
		"max_risk", a.MaxRisk(),
		"waived", waived,
	)
	fmt.Printf("Analyze OK\n  Analysis: %s\n  Documents: %d\n  Issues: %d (max risk %.2f)\n  JSON: %s\n  HTML: %s\n",
		a.ID, len(a.Documents), a.TotalIssues(), a.MaxRisk(), jsonPath, htmlPath)
	if !noDB {
		fmt.Printf("  DB: %s\n", filepath.Clean(cfg.Database.DSN))
	}
	return nil
}
