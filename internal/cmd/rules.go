package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the detection rule catalog",
	Long: `List the rules this deployment evaluates, in evaluation order:
the built-in catalog plus any configured rulepacks, minus disabled ids.`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().Bool("json", false, "emit the catalog as JSON")
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		type item struct {
			ID         string `json:"id"`
			Name       string `json:"name"`
			Severity   string `json:"severity"`
			Category   string `json:"category"`
			Issue      string `json:"issue"`
			Suggestion string `json:"suggestion"`
			LegalBasis string `json:"legal_basis"`
		}
		items := make([]item, 0, reg.Len())
		for _, r := range reg.Rules() {
			items = append(items, item{
				ID: r.ID, Name: r.Name, Severity: string(r.Severity), Category: r.Category,
				Issue: r.Issue, Suggestion: r.Suggestion, LegalBasis: r.LegalBasis,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for _, r := range reg.Rules() {
		fmt.Printf("%-22s %-7s %s\n", r.ID, r.Severity, r.Name)
		fmt.Printf("%-22s %-7s basis: %s\n", "", "", r.LegalBasis)
	}
	fmt.Printf("%d rules\n", reg.Len())
	return nil
}
