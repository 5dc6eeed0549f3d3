package rules

import "github.com/shauryaa19/legallens/internal/contract"

// missingArbitration fires only when the whole document is silent on dispute
// resolution. Its Presence expression is scanned in a second pass after the
// positive rules; the rule itself has no pattern to match.
var missingArbitration = AbsenceRule{
	Rule: Rule{
		ID:         "missing_arbitration",
		Name:       "No Dispute Resolution Mechanism",
		Severity:   contract.SeverityMedium,
		Category:   "dispute_resolution",
		Issue:      "No dispute resolution mechanism is specified: the contract names neither arbitration, mediation nor a court with jurisdiction.",
		Suggestion: "Add an arbitration clause naming the seat, language and rules, or designate courts with exclusive jurisdiction.",
		LegalBasis: "Arbitration and Conciliation Act, 1996, Section 7 (arbitration agreement)",
	},
	Presence: `\barbitrat(?:ion|ions|or|ors|e|ed|es|ing)\b` +
		`|\bmediat(?:ion|ions|or|ors|e|ed|es|ing)\b` +
		`|\bdispute resolutions?\b` +
		`|\bcourts?\b[^.]{0,60}?\bjurisdiction\b` +
		`|\bjurisdiction\b[^.]{0,60}?\bcourts?\b` +
		`|\bexclusive jurisdiction\b` +
		`|\bcompetent courts?\b`,
	Excerpt: "No dispute resolution mechanism found in document",
}
