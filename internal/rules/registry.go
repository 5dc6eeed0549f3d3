package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Registry is an immutable, ordered rule catalog: positive rules evaluated in
// definition order, plus at most one absence rule checked in a second pass.
// A Registry carries no per-analysis state, so a single instance is safe for
// concurrent use; changing the catalog means building a new Registry.
type Registry struct {
	rules    []Rule
	compiled []*regexp.Regexp

	absence  *AbsenceRule
	presence *regexp.Regexp
}

var defaultRegistry = mustRegistry(builtinRules(), &missingArbitration)

// Default returns the built-in legal catalog, compiled once at startup and
// shared by all callers.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry compiles a catalog. Rule order is preserved and becomes the
// reporting order. absence may be nil for catalogs without an absence rule.
func NewRegistry(rs []Rule, absence *AbsenceRule) (*Registry, error) {
	reg := &Registry{
		rules:    make([]Rule, len(rs)),
		compiled: make([]*regexp.Regexp, len(rs)),
	}
	copy(reg.rules, rs)

	seen := make(map[string]struct{}, len(rs)+1)
	for i, r := range reg.rules {
		if err := validate(r, seen); err != nil {
			return nil, err
		}
		if r.Expr == "" {
			return nil, fmt.Errorf("rule %q: missing match expression", r.ID)
		}
		re, err := regexp.Compile("(?i)" + r.Expr)
		if err != nil {
			return nil, fmt.Errorf("rule %q: compile pattern: %w", r.ID, err)
		}
		reg.compiled[i] = re
	}

	if absence != nil {
		a := *absence
		if err := validate(a.Rule, seen); err != nil {
			return nil, err
		}
		if a.Rule.Expr != "" {
			return nil, fmt.Errorf("rule %q: an absence rule must not carry a match expression", a.Rule.ID)
		}
		if a.Presence == "" {
			return nil, fmt.Errorf("rule %q: missing presence expression", a.Rule.ID)
		}
		re, err := regexp.Compile("(?i)" + a.Presence)
		if err != nil {
			return nil, fmt.Errorf("rule %q: compile presence pattern: %w", a.Rule.ID, err)
		}
		reg.absence = &a
		reg.presence = re
	}
	return reg, nil
}

func validate(r Rule, seen map[string]struct{}) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("rule with empty id")
	}
	if r.Severity.Rank() == 0 {
		return fmt.Errorf("rule %q: unknown severity %q", r.ID, r.Severity)
	}
	key := strings.ToLower(r.ID)
	if _, dup := seen[key]; dup {
		return fmt.Errorf("rule %q: duplicate id", r.ID)
	}
	seen[key] = struct{}{}
	return nil
}

func mustRegistry(rs []Rule, absence *AbsenceRule) *Registry {
	reg, err := NewRegistry(rs, absence)
	if err != nil {
		panic(err)
	}
	return reg
}

// Rules returns the catalog in evaluation order, absence rule last. The slice
// is a copy; mutating it does not touch the registry.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.rules)+1)
	out = append(out, r.rules...)
	if r.absence != nil {
		out = append(out, r.absence.Rule)
	}
	return out
}

// Len reports the number of rules in the catalog, absence rule included.
func (r *Registry) Len() int {
	n := len(r.rules)
	if r.absence != nil {
		n++
	}
	return n
}

// Get returns a rule by id, case-insensitively.
func (r *Registry) Get(id string) (Rule, bool) {
	for i := range r.rules {
		if strings.EqualFold(r.rules[i].ID, id) {
			return r.rules[i], true
		}
	}
	if r.absence != nil && strings.EqualFold(r.absence.Rule.ID, id) {
		return r.absence.Rule, true
	}
	return Rule{}, false
}

// Without derives a registry with the named rules removed; unknown ids are
// ignored. Naming the absence rule disables its second pass entirely. The
// receiver is left untouched.
func (r *Registry) Without(ids ...string) *Registry {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[strings.ToLower(strings.TrimSpace(id))] = struct{}{}
	}

	out := &Registry{}
	for i := range r.rules {
		if _, skip := drop[strings.ToLower(r.rules[i].ID)]; skip {
			continue
		}
		out.rules = append(out.rules, r.rules[i])
		out.compiled = append(out.compiled, r.compiled[i])
	}
	if r.absence != nil {
		if _, skip := drop[strings.ToLower(r.absence.Rule.ID)]; !skip {
			out.absence = r.absence
			out.presence = r.presence
		}
	}
	return out
}
