// Package contract holds the shared data model for contract risk analysis:
// severities, detected issues, per-document results and the run-level
// aggregate that the reporting, storage and API layers exchange.
package contract

import (
	"strings"
	"time"
)

// Version identifies the analysis model; bump when the result shape changes.
const Version = "1.0"

// Severity classifies a rule's risk level and fixes its score weight.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// ParseSeverity maps free-form input to a Severity. Unknown values rank as LOW,
// matching how filters treat them.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGH":
		return SeverityHigh
	case "MEDIUM":
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Rank orders severities for threshold filters: HIGH=3, MEDIUM=2, LOW=1.
// Anything else ranks 0, which catalog validation rejects.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// WeightHundredths returns the severity's score weight in hundredths of a
// point (HIGH=25, MEDIUM=15, LOW=10). The analyzer accumulates hundredths so
// repeated additions stay exact: three MEDIUM hits sum to 45, never 0.44999….
func (s Severity) WeightHundredths() int {
	switch s {
	case SeverityHigh:
		return 25
	case SeverityMedium:
		return 15
	default:
		return 10
	}
}

// Weight returns the severity's fixed score weight, applied once per matching
// rule regardless of how often the rule's pattern occurs.
func (s Severity) Weight() float64 {
	return float64(s.WeightHundredths()) / 100
}

// RiskBand buckets a document score for display: HIGH at 0.7 and above,
// MEDIUM at 0.4, LOW below that.
func RiskBand(score float64) Severity {
	switch {
	case score >= 0.7:
		return SeverityHigh
	case score >= 0.4:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Issue is one detected problem in a document. The JSON field names are the
// wire contract consumed by persistence and rendering collaborators; do not
// rename them.
type Issue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	RiskLevel   Severity `json:"riskLevel"`
	Description string   `json:"issue"`
	Suggestion  string   `json:"suggestion"`
	LegalBasis  string   `json:"legalBasis"`
	Category    string   `json:"category"`
	Matches     int      `json:"matches"`
	MatchedText string   `json:"matchedText"`
}

// Result is the outcome of analyzing a single document's text. RiskScore is
// always within [0,1] and TotalIssues always equals len(Issues); issues keep
// rule catalog order, not severity order.
type Result struct {
	RiskScore   float64 `json:"riskScore"`
	Issues      []Issue `json:"issues"`
	TotalIssues int     `json:"totalIssues"`
}

// Stats are deterministic text measurements attached to each document.
type Stats struct {
	Chars         int     `json:"chars"`
	Words         int     `json:"words"`
	Sentences     int     `json:"sentences"`
	ReviewMinutes float64 `json:"review_minutes"`
}

// Document is one contract within an analysis run. Text carries the raw
// UTF-8 content through the pipeline and is never serialized or persisted.
type Document struct {
	Name   string `json:"name"`
	Path   string `json:"path,omitempty"`
	Stats  Stats  `json:"stats"`
	Result Result `json:"result"`

	Text string `json:"-"`
}

// Analysis is a run over a corpus of contract documents.
type Analysis struct {
	ID            string     `json:"id"`
	StartedAt     time.Time  `json:"started_at"`
	Source        string     `json:"source,omitempty"`
	EngineVersion string     `json:"engine_version,omitempty"`
	Documents     []Document `json:"documents"`
}

// TotalIssues sums detected issues across all documents.
func (a *Analysis) TotalIssues() int {
	n := 0
	for _, d := range a.Documents {
		n += d.Result.TotalIssues
	}
	return n
}

// MaxRisk returns the highest per-document risk score in the run.
func (a *Analysis) MaxRisk() float64 {
	top := 0.0
	for _, d := range a.Documents {
		if d.Result.RiskScore > top {
			top = d.Result.RiskScore
		}
	}
	return top
}
