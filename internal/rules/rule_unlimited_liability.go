package rules

import "github.com/shauryaa19/legallens/internal/contract"

var unlimitedLiability = Rule{
	ID:       "unlimited_liability",
	Name:     "Unlimited Liability",
	Severity: contract.SeverityHigh,
	Category: "liability",
	Expr: `\bunlimited liabilit(?:y|ies)\b` +
		`|\bliable for (?:all|any and all)\b` +
		`|\bwithout (?:any )?limitation of liability\b` +
		`|\bliability (?:shall|will) (?:be|remain) unlimited\b`,
	Issue:      "Liability is uncapped: one party bears open-ended exposure for any and all losses arising under the contract.",
	Suggestion: "Cap aggregate liability at a fixed amount or a multiple of fees paid, and exclude indirect and consequential losses.",
	LegalBasis: "Indian Contract Act, 1872, Sections 73-74 (compensation for breach)",
}
