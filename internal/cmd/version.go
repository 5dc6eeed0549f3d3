package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shauryaa19/legallens/internal/contract"
)

// version is overridden at build time via cmd/legallens/main.go.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("legallens %s (engine %s)\n", version, contract.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}
