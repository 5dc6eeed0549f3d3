package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shauryaa19/legallens/internal/shared"
	"github.com/shauryaa19/legallens/internal/storage"
)

func TestBuildRegistry(t *testing.T) {
	cfg := shared.DefaultConfig()

	reg, err := buildRegistry(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, reg.Len())

	cfg.Analysis.DisabledRules = []string{"penalty_clause"}
	reg, err = buildRegistry(cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())
	_, ok := reg.Get("penalty_clause")
	assert.False(t, ok)
}

func TestBuildRegistry_RulePacks(t *testing.T) {
	dir := t.TempDir()
	pack := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(pack, []byte(`
rules:
  - id: auto_renewal
    name: Automatic renewal
    severity: MEDIUM
    match: 'automatic(ally)? renew'
    issue: Contract renews without an explicit opt-in.
    suggestion: Require written consent before each renewal term.
`), 0o644))

	cfg := shared.DefaultConfig()
	cfg.Analysis.RulePacks = []string{pack}
	reg, err := buildRegistry(cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, reg.Len())

	cfg.Analysis.RulePacks = []string{filepath.Join(dir, "missing.yaml")}
	_, err = buildRegistry(cfg)
	assert.Error(t, err)
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	contracts := filepath.Join(dir, "contracts")
	require.NoError(t, os.MkdirAll(contracts, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(contracts, "vendor.txt"), []byte(
		"The supplier shall pay a penalty of 5% per week of delay. "+
			"Any dispute arising out of this agreement shall be referred to arbitration in Bengaluru.",
	), 0o644))
	out := filepath.Join(dir, "reports")
	dbPath := filepath.Join(dir, "legallens.db")

	rootCmd.SetArgs([]string{"analyze", "--path", contracts, "--out", out, "--db", dbPath})
	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "expected one JSON and one HTML report")

	db, err := storage.OpenSQLite(dbPath)
	require.NoError(t, err)
	defer db.Close()
	a, err := db.LoadLatestAnalysis()
	require.NoError(t, err)
	require.Len(t, a.Documents, 1)
	res := a.Documents[0].Result
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "penalty_clause", res.Issues[0].ID)
	assert.Equal(t, 0.25, res.RiskScore)
}
