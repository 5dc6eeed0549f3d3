package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shauryaa19/legallens/internal/reporting"
	"github.com/shauryaa19/legallens/internal/shared"
	"github.com/shauryaa19/legallens/internal/storage"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two stored analyses (new, resolved and changed issues)",
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().String("base", "", "base analysis id")
	diffCmd.Flags().String("head", "", "head analysis id")
	diffCmd.Flags().String("out", "", "output directory for reports")
	diffCmd.Flags().String("db", "", "SQLite database path")
	_ = diffCmd.MarkFlagRequired("base")
	_ = diffCmd.MarkFlagRequired("head")
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Reporting.OutDir = out
	}
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	base, _ := cmd.Flags().GetString("base")
	head, _ := cmd.Flags().GetString("head")

	db, err := storage.OpenSQLite(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	ba, err := db.LoadAnalysis(base)
	if err != nil {
		return fmt.Errorf("load base analysis: %w", err)
	}
	ha, err := db.LoadAnalysis(head)
	if err != nil {
		return fmt.Errorf("load head analysis: %w", err)
	}

	if err := os.MkdirAll(cfg.Reporting.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	path, err := reporting.WriteDiffJSON(base, head, cfg.Reporting.OutDir, &ba, &ha)
	if err != nil {
		return fmt.Errorf("write diff: %w", err)
	}
	fmt.Printf("Diff OK\n  %s\n", path)
	return nil
}
