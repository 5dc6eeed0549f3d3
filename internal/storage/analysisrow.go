package storage

import "time"

// AnalysisRow is a lightweight listing row for /analyses.
type AnalysisRow struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	Source        string    `json:"source,omitempty"`
	EngineVersion string    `json:"engine_version,omitempty"`
	Documents     int       `json:"documents"`
	MaxRisk       float64   `json:"max_risk"`
	TotalIssues   int       `json:"total_issues"`
}

// IssueRow is a flattened issue as stored, one row per document and rule.
type IssueRow struct {
	Document    string `json:"document"`
	RuleID      string `json:"rule_id"`
	RuleName    string `json:"rule_name"`
	Severity    string `json:"severity"`
	Category    string `json:"category,omitempty"`
	Issue       string `json:"issue"`
	Suggestion  string `json:"suggestion"`
	LegalBasis  string `json:"legal_basis"`
	Matches     int    `json:"matches"`
	MatchedText string `json:"matched_text"`
}
