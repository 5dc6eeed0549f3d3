package rules

import (
	"strings"

	"github.com/shauryaa19/legallens/internal/contract"
	"github.com/shauryaa19/legallens/internal/storage"
)

// ApplyWaivers filters out issues covered by an active waiver for the given
// document. Returns (kept, waivedCount).
func ApplyWaivers(document string, in []contract.Issue, waivers []storage.Waiver) ([]contract.Issue, int) {
	if len(waivers) == 0 || len(in) == 0 {
		return in, 0
	}
	out := make([]contract.Issue, 0, len(in))
	waived := 0
nextIssue:
	for _, iss := range in {
		for _, w := range waivers {
			if !eqCI(iss.ID, w.RuleID) {
				continue
			}
			if w.Document != "" && !eqCI(document, w.Document) {
				continue
			}
			if w.ExcerptSub != "" &&
				!strings.Contains(strings.ToUpper(iss.MatchedText), strings.ToUpper(w.ExcerptSub)) {
				continue
			}
			// matched, waive it
			waived++
			continue nextIssue
		}
		out = append(out, iss)
	}
	return out, waived
}

// Rescore rebuilds a Result from an issue list, recomputing the risk score
// after waivers or a severity threshold have thinned it.
func Rescore(issues []contract.Issue) contract.Result {
	if issues == nil {
		issues = []contract.Issue{}
	}
	score := 0
	for _, iss := range issues {
		score += iss.RiskLevel.WeightHundredths()
	}
	if score > 100 {
		score = 100
	}
	return contract.Result{
		RiskScore:   float64(score) / 100,
		Issues:      issues,
		TotalIssues: len(issues),
	}
}

func eqCI(a, b string) bool { return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) }
