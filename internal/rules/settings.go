package rules

import "github.com/shauryaa19/legallens/internal/contract"

// MinSeverity drops issues ranked below threshold. A zero or unknown
// threshold keeps everything. The filter does not rescore; pair it with
// Rescore when the thinned list feeds a report.
func MinSeverity(issues []contract.Issue, threshold contract.Severity) []contract.Issue {
	floor := threshold.Rank()
	if floor <= 1 {
		return issues
	}
	out := make([]contract.Issue, 0, len(issues))
	for _, iss := range issues {
		if iss.RiskLevel.Rank() >= floor {
			out = append(out, iss)
		}
	}
	return out
}
