package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shauryaa19/legallens/internal/security"
	"github.com/shauryaa19/legallens/internal/shared"
	"github.com/shauryaa19/legallens/internal/storage"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage API users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create an API user",
	Long: `Create an API user in the configured database. The password comes from
--password, the LEGALLENS_PASSWORD environment variable, or a no-echo
terminal prompt, in that order.`,
	Args: cobra.ExactArgs(1),
	RunE: runUserCreate,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().String("role", "viewer", "user role (admin|viewer)")
	userCreateCmd.Flags().String("password", "", "password (prompted when omitted)")
	userCreateCmd.Flags().String("db", "", "SQLite database path")
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	role, _ := cmd.Flags().GetString("role")
	if role != "admin" && role != "viewer" {
		return fmt.Errorf("user create: role must be admin or viewer, got %q", role)
	}

	pw, _ := cmd.Flags().GetString("password")
	if pw == "" {
		pw = os.Getenv("LEGALLENS_PASSWORD")
	}
	if pw == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("user create: stdin is not a terminal; pass --password or set LEGALLENS_PASSWORD")
		}
		fmt.Fprint(os.Stderr, "Password: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		pw = string(b)
	}
	if err := security.ValidatePassword(pw); err != nil {
		return fmt.Errorf("user create: %w", err)
	}
	hash, err := security.HashPassword(pw)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	db, err := storage.OpenSQLite(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("db schema: %w", err)
	}

	id, err := db.CreateUser(args[0], hash, role)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	fmt.Printf("User created\n  ID: %d\n  Username: %s\n  Role: %s\n", id, args[0], role)
	return nil
}
