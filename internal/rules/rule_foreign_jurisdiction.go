package rules

import "github.com/shauryaa19/legallens/internal/contract"

// foreignJurisdictions are the governing-law venues treated as foreign to the
// Indian framework the catalog reviews against.
const foreignJurisdictions = `england(?: and wales)?|wales|scotland|northern ireland` +
	`|united kingdom|great britain` +
	`|united states(?: of america)?|america|new york|delaware|california|texas|florida` +
	`|singapore|hong kong|dubai|uae|united arab emirates` +
	`|germany|france|switzerland|netherlands|luxembourg|ireland` +
	`|japan|china|south korea|australia|canada|russia|brazil`

var foreignJurisdiction = Rule{
	ID:       "foreign_jurisdiction",
	Name:     "Foreign Governing Law",
	Severity: contract.SeverityMedium,
	Category: "governing_law",
	Expr: `\b(?:governed by|construed (?:and interpreted )?in accordance with|subject to)` +
		` the laws? of (?:the )?(?:` + foreignJurisdictions + `)\b`,
	Issue:      "The contract is governed by the law of a foreign jurisdiction, adding cost and uncertainty to enforcement for a domestic party.",
	Suggestion: "Negotiate Indian governing law, or obtain advice on the cost and enforceability of judgments from the named jurisdiction.",
	LegalBasis: "Code of Civil Procedure, 1908, Sections 13 and 44A (foreign judgments)",
}
