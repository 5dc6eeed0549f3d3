package rules

import "github.com/shauryaa19/legallens/internal/contract"

// Rule is a single detection criterion: an immutable value record pairing a
// case-insensitive match expression with the explanation, remediation and
// citation reported when it fires. Rules are independent and stateless; no
// rule's outcome depends on another's.
type Rule struct {
	ID       string
	Name     string
	Severity contract.Severity
	Category string

	// Expr is the match expression, compiled case-insensitively when the
	// registry is built. Empty only on an absence rule's metadata.
	Expr string

	// Issue describes the problem, Suggestion the remediation, LegalBasis the
	// statutory citation backing the flag.
	Issue      string
	Suggestion string
	LegalBasis string
}

// AbsenceRule flags a document when NONE of its presence expressions occur
// anywhere in the text. It runs as a dedicated whole-document pass after the
// positive rules, so its metadata carries no match expression.
type AbsenceRule struct {
	Rule Rule

	// Presence is the expression whose absence across the whole document
	// triggers the rule.
	Presence string

	// Excerpt is the synthetic matched-text reported with the issue, since an
	// absence has no span to quote.
	Excerpt string
}
