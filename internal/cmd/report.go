package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shauryaa19/legallens/internal/contract"
	"github.com/shauryaa19/legallens/internal/reporting"
	"github.com/shauryaa19/legallens/internal/shared"
	"github.com/shauryaa19/legallens/internal/storage"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Re-render JSON and HTML reports for a stored analysis",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().String("analysis", "", "analysis id (default: latest)")
	reportCmd.Flags().String("out", "", "output directory for reports")
	reportCmd.Flags().String("db", "", "SQLite database path")
}

func runReport(cmd *cobra.Command, args []string) error {
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

	db, err := storage.OpenSQLite(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	var a contract.Analysis
	if id, _ := cmd.Flags().GetString("analysis"); id != "" {
		a, err = db.LoadAnalysis(id)
	} else {
		a, err = db.LoadLatestAnalysis()
	}
	if err != nil {
		return fmt.Errorf("load analysis: %w", err)
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
	fmt.Printf("Report OK\n  Analysis: %s\n  JSON: %s\n  HTML: %s\n", a.ID, jsonPath, htmlPath)
	return nil
}
