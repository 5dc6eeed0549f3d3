package rules

import "github.com/shauryaa19/legallens/internal/contract"

var unfairTermination = Rule{
	ID:       "unfair_termination",
	Name:     "Unfair Termination",
	Severity: contract.SeverityMedium,
	Category: "termination",
	Expr: `\bwithout (?:prior |any )?notice\b` +
		`|\bimmediate(?:ly)? terminat(?:e|ed|es|ion|ing)\b` +
		`|\bterminat(?:e|ed|es|ion|ing)\b[^.]{0,40}?\bimmediately\b` +
		`|\bat[ -]will\b`,
	Issue:      "Permits termination without notice or at will, leaving the counterparty with no wind-down period.",
	Suggestion: "Require written notice of 30-90 days and a cure period for remediable breaches before termination takes effect.",
	LegalBasis: "Industrial Disputes Act, 1947, Section 25F (notice of termination)",
}
