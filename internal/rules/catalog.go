package rules

// builtinRules returns the positive rules of the built-in catalog. The order
// here is the order issues appear in every report, so treat it as part of the
// output contract. The absence rule lives in rule_missing_arbitration.go and
// always reports after these.
func builtinRules() []Rule {
	return []Rule{
		unlimitedLiability,
		penaltyClause,
		foreignJurisdiction,
		unfairTermination,
	}
}

// Extend builds a registry of the built-in catalog plus extra positive rules,
// typically loaded from a rule pack. Extras report after the built-ins; the
// absence rule still reports last.
func Extend(extra []Rule) (*Registry, error) {
	return NewRegistry(append(builtinRules(), extra...), &missingArbitration)
}
