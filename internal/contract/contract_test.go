package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityHigh, ParseSeverity("high"))
	assert.Equal(t, SeverityHigh, ParseSeverity("  HIGH "))
	assert.Equal(t, SeverityMedium, ParseSeverity("Medium"))
	assert.Equal(t, SeverityLow, ParseSeverity("low"))
	assert.Equal(t, SeverityLow, ParseSeverity("anything else"))
	assert.Equal(t, SeverityLow, ParseSeverity(""))
}

func TestSeverityWeights(t *testing.T) {
	assert.Equal(t, 0.25, SeverityHigh.Weight())
	assert.Equal(t, 0.15, SeverityMedium.Weight())
	assert.Equal(t, 0.1, SeverityLow.Weight())

	assert.Greater(t, SeverityHigh.Rank(), SeverityMedium.Rank())
	assert.Greater(t, SeverityMedium.Rank(), SeverityLow.Rank())
	assert.Zero(t, Severity("CRITICAL").Rank())
}

func TestRiskBand(t *testing.T) {
	assert.Equal(t, SeverityLow, RiskBand(0))
	assert.Equal(t, SeverityLow, RiskBand(0.39))
	assert.Equal(t, SeverityMedium, RiskBand(0.4))
	assert.Equal(t, SeverityMedium, RiskBand(0.69))
	assert.Equal(t, SeverityHigh, RiskBand(0.7))
	assert.Equal(t, SeverityHigh, RiskBand(1.0))
}

func TestResultJSONShape(t *testing.T) {
	res := Result{
		RiskScore: 0.45,
		Issues: []Issue{{
			ID:          "foreign_jurisdiction",
			Name:        "Foreign Governing Law",
			RiskLevel:   SeverityMedium,
			Description: "Contract is governed by foreign law",
			Suggestion:  "Specify Indian law as the governing law",
			LegalBasis:  "Code of Civil Procedure, 1908",
			Category:    "governing_law",
			Matches:     1,
			MatchedText: "governed by the laws of England",
		}},
		TotalIssues: 1,
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Contains(t, got, "riskScore")
	assert.Contains(t, got, "totalIssues")
	issues, ok := got["issues"].([]any)
	require.True(t, ok)
	require.Len(t, issues, 1)
	first, ok := issues[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "MEDIUM", first["riskLevel"])
	assert.Equal(t, "Contract is governed by foreign law", first["issue"])
	assert.Contains(t, first, "legalBasis")
	assert.Contains(t, first, "matchedText")
}

func TestAnalysisAggregates(t *testing.T) {
	a := Analysis{
		ID:        "run-1",
		StartedAt: time.Now(),
		Documents: []Document{
			{Name: "a.txt", Result: Result{RiskScore: 0.25, TotalIssues: 1}},
			{Name: "b.txt", Result: Result{RiskScore: 0.95, TotalIssues: 5}},
			{Name: "c.txt", Result: Result{RiskScore: 0.15, TotalIssues: 1}},
		},
	}

	assert.Equal(t, 7, a.TotalIssues())
	assert.Equal(t, 0.95, a.MaxRisk())
}
