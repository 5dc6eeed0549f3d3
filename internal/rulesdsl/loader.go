// Package rulesdsl loads extra catalog rules from YAML packs, so teams can
// ship house clauses without recompiling.
package rulesdsl

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shauryaa19/legallens/internal/contract"
	"github.com/shauryaa19/legallens/internal/rules"
)

type dslPack struct {
	Rules []dslRule `yaml:"rules"`
}

type dslRule struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Severity   string `yaml:"severity"` // LOW|MEDIUM|HIGH
	Category   string `yaml:"category"`
	Match      string `yaml:"match"` // regex, compiled case-insensitively
	Issue      string `yaml:"issue"`
	Suggestion string `yaml:"suggestion"`
	LegalBasis string `yaml:"legal_basis"`
}

// Load reads a YAML rule pack and returns catalog rules in file order.
func Load(path string) ([]rules.Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule pack: %w", err)
	}
	var pack dslPack
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out := make([]rules.Rule, 0, len(pack.Rules))
	for _, r := range pack.Rules {
		cr, err := convert(r)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.ID, err)
		}
		out = append(out, cr)
	}
	return out, nil
}

// LoadAll reads several packs, concatenating their rules in argument order.
func LoadAll(paths []string) ([]rules.Rule, error) {
	var out []rules.Rule
	for _, p := range paths {
		rs, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, rs...)
	}
	return out, nil
}

func convert(r dslRule) (rules.Rule, error) {
	if r.ID == "" || r.Severity == "" || r.Match == "" || r.Issue == "" {
		return rules.Rule{}, fmt.Errorf("missing required fields (id/severity/match/issue)")
	}
	sev := contract.Severity(strings.ToUpper(strings.TrimSpace(r.Severity)))
	if sev.Rank() == 0 {
		return rules.Rule{}, fmt.Errorf("severity must be HIGH, MEDIUM or LOW")
	}
	if _, err := regexp.Compile("(?i)" + r.Match); err != nil {
		return rules.Rule{}, fmt.Errorf("match regex: %w", err)
	}
	name := r.Name
	if name == "" {
		name = r.ID
	}
	return rules.Rule{
		ID:         r.ID,
		Name:       name,
		Severity:   sev,
		Category:   r.Category,
		Expr:       r.Match,
		Issue:      r.Issue,
		Suggestion: r.Suggestion,
		LegalBasis: r.LegalBasis,
	}, nil
}
