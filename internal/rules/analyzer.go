package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shauryaa19/legallens/internal/contract"
)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace to a single space and trims the
// ends. Matching happens on the normalized text, so clauses broken across
// lines or hard-wrapped by a PDF exporter still hit.
func Normalize(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// excerptLimit caps the matched text carried on an issue, in runes.
const excerptLimit = 100

// Analyze scans contract text against the catalog and returns the scored
// result. Positive rules report in catalog order; the absence rule, when it
// fires, reports last. Each rule contributes its severity weight once no
// matter how many times it matches.
func (r *Registry) Analyze(text string) contract.Result {
	doc := Normalize(text)

	res := contract.Result{Issues: []contract.Issue{}}
	score := 0 // hundredths of a point, so repeated weights stay exact

	for i := range r.rules {
		locs := r.compiled[i].FindAllStringIndex(doc, -1)
		if len(locs) == 0 {
			continue
		}
		rule := r.rules[i]
		res.Issues = append(res.Issues, issueFor(rule, len(locs), excerpt(doc, locs[0])))
		score += rule.Severity.WeightHundredths()
	}

	if r.absence != nil && !r.presence.MatchString(doc) {
		res.Issues = append(res.Issues, issueFor(r.absence.Rule, 1, r.absence.Excerpt))
		score += r.absence.Rule.Severity.WeightHundredths()
	}

	if score > 100 {
		score = 100
	}
	res.RiskScore = float64(score) / 100
	res.TotalIssues = len(res.Issues)
	return res
}

// Analyze runs the built-in catalog over text.
func Analyze(text string) contract.Result {
	return Default().Analyze(text)
}

func issueFor(rule Rule, matches int, matched string) contract.Issue {
	return contract.Issue{
		ID:          rule.ID,
		Name:        rule.Name,
		RiskLevel:   rule.Severity,
		Description: rule.Issue,
		Suggestion:  rule.Suggestion,
		LegalBasis:  rule.LegalBasis,
		Category:    rule.Category,
		Matches:     matches,
		MatchedText: matched,
	}
}

// excerpt returns the first matched span, truncated to excerptLimit runes
// with an ellipsis marker when the span runs longer.
func excerpt(doc string, loc []int) string {
	span := doc[loc[0]:loc[1]]
	if utf8.RuneCountInString(span) <= excerptLimit {
		return span
	}
	return string([]rune(span)[:excerptLimit]) + "..."
}
