package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shauryaa19/legallens/internal/api"
	"github.com/shauryaa19/legallens/internal/shared"
	"github.com/shauryaa19/legallens/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default server.addr)")
	serveCmd.Flags().String("db", "", "SQLite database path")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	db, err := storage.OpenSQLite(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("db schema: %w", err)
	}

	srv := &api.Server{
		DB:              db,
		UserStore:       db,
		Logger:          logger,
		Registry:        reg,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		SessionDuration: time.Duration(cfg.Server.SessionHours) * time.Hour,
	}
	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeSessions(ctx, db, logger)

	serveErr := make(chan error, 1)
	logger.Info("api listening", "addr", cfg.Server.Addr, "rules", reg.Len())
	go func() {
		serveErr <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("api stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// purgeSessions drops expired sessions hourly until ctx is cancelled.
func purgeSessions(ctx context.Context, db *storage.DB, logger *slog.Logger) {
	t := time.NewTicker(time.Hour)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n, err := db.DeleteExpiredSessions(); err == nil && n > 0 {
				logger.Debug("expired sessions purged", "count", n)
			}
		}
	}
}
