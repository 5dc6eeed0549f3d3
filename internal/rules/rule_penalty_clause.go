package rules

import "github.com/shauryaa19/legallens/internal/contract"

var penaltyClause = Rule{
	ID:         "penalty_clause",
	Name:       "Penalty Clause",
	Severity:   contract.SeverityHigh,
	Category:   "damages",
	Expr:       `\bpenalt(?:y|ies)\b|\bpunitive damages\b`,
	Issue:      "Contains penal or punitive language. Courts enforce a genuine pre-estimate of loss, not a penalty stipulated in terrorem.",
	Suggestion: "Replace penalty wording with liquidated damages that reflect a reasonable pre-estimate of the actual loss.",
	LegalBasis: "Indian Contract Act, 1872, Section 74 (penalty vs. liquidated damages)",
}
