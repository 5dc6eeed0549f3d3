package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shauryaa19/legallens/internal/contract"
)

func analysisFixture(id string) *contract.Analysis {
	return &contract.Analysis{
		ID:            id,
		StartedAt:     time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
		Source:        "contracts/",
		EngineVersion: contract.Version,
		Documents: []contract.Document{
			{
				Name:  "vendor.txt",
				Stats: contract.Stats{Chars: 420, Words: 80, Sentences: 6, ReviewMinutes: 1},
				Result: contract.Result{
					RiskScore: 0.4,
					Issues: []contract.Issue{
						{
							ID:          "penalty_clause",
							Name:        "Penalty Clause",
							RiskLevel:   contract.SeverityHigh,
							Description: "Contract imposes penalties",
							Suggestion:  "Replace penalties with liquidated damages",
							LegalBasis:  "Indian Contract Act, 1872, Section 74",
							Category:    "damages",
							Matches:     2,
							MatchedText: "penalty",
						},
						{
							ID:          "missing_arbitration",
							Name:        "Missing Dispute Resolution",
							RiskLevel:   contract.SeverityMedium,
							Description: "No dispute resolution clause found",
							Suggestion:  "Add an arbitration clause",
							LegalBasis:  "Arbitration and Conciliation Act, 1996, Section 7",
							Category:    "dispute_resolution",
							Matches:     1,
							MatchedText: "No dispute resolution mechanism found in document",
						},
					},
					TotalIssues: 2,
				},
			},
			{
				Name:   "clean <b>.txt",
				Stats:  contract.Stats{Chars: 100, Words: 20, Sentences: 2, ReviewMinutes: 1},
				Result: contract.Result{Issues: []contract.Issue{}},
			},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := WriteJSON("run-1", dir, analysisFixture("run-1"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run-1.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got contract.Analysis
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "run-1", got.ID)
	require.Len(t, got.Documents, 2)
	assert.Equal(t, 0.4, got.Documents[0].Result.RiskScore)
	assert.Equal(t, "penalty_clause", got.Documents[0].Result.Issues[0].ID)

	// camelCase wire fields survive encoding
	assert.Contains(t, string(raw), `"riskScore"`)
	assert.Contains(t, string(raw), `"legalBasis"`)
	// raw document text must never appear in a report
	assert.NotContains(t, string(raw), `"Text"`)
}

func TestWriteHTML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := WriteHTML("run-1", dir, analysisFixture("run-1"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, "legallens report")
	assert.Contains(t, body, "vendor.txt")
	assert.Contains(t, body, "Penalty Clause")
	assert.Contains(t, body, "Indian Contract Act, 1872, Section 74")
	// document names are escaped
	assert.Contains(t, body, "clean &lt;b&gt;.txt")
	assert.NotContains(t, body, "clean <b>.txt")
}

func TestWriteHTML_NoIssues(t *testing.T) {
	a := analysisFixture("run-2")
	a.Documents = a.Documents[1:]

	path, err := WriteHTML("run-2", filepath.Join(t.TempDir(), "reports"), a)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "No issues at or above the configured threshold.")
}

func TestWriteDiffJSON(t *testing.T) {
	base := analysisFixture("base")
	head := analysisFixture("head")

	// head: penalty issue resolved, termination issue appeared, arbitration excerpt changed
	head.Documents[0].Result.Issues = []contract.Issue{
		{
			ID:          "unfair_termination",
			Name:        "Unfair Termination",
			RiskLevel:   contract.SeverityMedium,
			Description: "Termination without notice",
			Matches:     1,
			MatchedText: "terminate at will",
		},
		{
			ID:          "missing_arbitration",
			Name:        "Missing Dispute Resolution",
			RiskLevel:   contract.SeverityMedium,
			Description: "No dispute resolution clause found",
			Matches:     1,
			MatchedText: "No dispute resolution mechanism found",
		},
	}
	head.Documents[0].Result.RiskScore = 0.3
	head.Documents[0].Result.TotalIssues = 2

	dir := t.TempDir()
	path, err := WriteDiffJSON("base", "head", dir, base, head)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "diff_base__head.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload struct {
		Summary struct {
			New         int     `json:"new"`
			Resolved    int     `json:"resolved"`
			Changed     int     `json:"changed"`
			BaseMaxRisk float64 `json:"base_max_risk"`
			HeadMaxRisk float64 `json:"head_max_risk"`
		} `json:"summary"`
		New []struct {
			Document string `json:"document"`
			RuleID   string `json:"rule_id"`
		} `json:"new"`
		Resolved []struct {
			RuleID string `json:"rule_id"`
		} `json:"resolved"`
		Changed []struct {
			Key     string   `json:"key"`
			Changed []string `json:"fields_changed"`
		} `json:"changed"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, 1, payload.Summary.New)
	assert.Equal(t, 1, payload.Summary.Resolved)
	assert.Equal(t, 1, payload.Summary.Changed)
	assert.Equal(t, 0.4, payload.Summary.BaseMaxRisk)
	assert.Equal(t, 0.3, payload.Summary.HeadMaxRisk)

	require.Len(t, payload.New, 1)
	assert.Equal(t, "vendor.txt", payload.New[0].Document)
	assert.Equal(t, "unfair_termination", payload.New[0].RuleID)

	require.Len(t, payload.Resolved, 1)
	assert.Equal(t, "penalty_clause", payload.Resolved[0].RuleID)

	require.Len(t, payload.Changed, 1)
	assert.Equal(t, []string{"matched_text"}, payload.Changed[0].Changed)
}

func TestWriteDiffJSON_Identical(t *testing.T) {
	base := analysisFixture("base")
	head := analysisFixture("head")

	path, err := WriteDiffJSON("base", "head", t.TempDir(), base, head)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload struct {
		Summary struct {
			New      int `json:"new"`
			Resolved int `json:"resolved"`
			Changed  int `json:"changed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Zero(t, payload.Summary.New)
	assert.Zero(t, payload.Summary.Resolved)
	assert.Zero(t, payload.Summary.Changed)
}
