package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shauryaa19/legallens/internal/contract"
)

type diffPayload struct {
	BaseID   string        `json:"base_id"`
	HeadID   string        `json:"head_id"`
	Summary  diffSummary   `json:"summary"`
	New      []diffIssue   `json:"new"`
	Resolved []diffIssue   `json:"resolved"`
	Changed  []diffChanged `json:"changed"`
}

type diffSummary struct {
	NewCount      int     `json:"new"`
	ResolvedCount int     `json:"resolved"`
	ChangedCount  int     `json:"changed"`
	BaseMaxRisk   float64 `json:"base_max_risk"`
	HeadMaxRisk   float64 `json:"head_max_risk"`
}

type diffIssue struct {
	Document    string `json:"document"`
	RuleID      string `json:"rule_id"`
	Severity    string `json:"severity,omitempty"`
	Issue       string `json:"issue,omitempty"`
	Matches     int    `json:"matches,omitempty"`
	MatchedText string `json:"matched_text,omitempty"`
}

type diffChanged struct {
	Key     string    `json:"key"`
	Base    diffIssue `json:"base"`
	Head    diffIssue `json:"head"`
	Changed []string  `json:"fields_changed"`
}

// WriteDiffJSON compares two analyses of the same corpus and records which
// issues appeared, which were resolved, and which changed shape. Issues pair
// up by document and rule, the once-per-rule identity the analyzer guarantees.
func WriteDiffJSON(baseID, headID, outDir string, base, head *contract.Analysis) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, "diff_"+baseID+"__"+headID+".json")

	bm := indexIssues(base)
	hm := indexIssues(head)

	var added []diffIssue
	var resolved []diffIssue
	var changed []diffChanged

	for k, hi := range hm {
		bi, ok := bm[k]
		if !ok {
			added = append(added, hi)
			continue
		}
		var fields []string
		if norm(bi.Severity) != norm(hi.Severity) {
			fields = append(fields, "severity")
		}
		if bi.Matches != hi.Matches {
			fields = append(fields, "matches")
		}
		if strings.TrimSpace(bi.MatchedText) != strings.TrimSpace(hi.MatchedText) {
			fields = append(fields, "matched_text")
		}
		if len(fields) > 0 {
			changed = append(changed, diffChanged{Key: k, Base: bi, Head: hi, Changed: fields})
		}
	}
	for k, bi := range bm {
		if _, ok := hm[k]; !ok {
			resolved = append(resolved, bi)
		}
	}

	sort.Slice(added, func(i, j int) bool { return diffLess(added[i], added[j]) })
	sort.Slice(resolved, func(i, j int) bool { return diffLess(resolved[i], resolved[j]) })
	sort.Slice(changed, func(i, j int) bool { return changed[i].Key < changed[j].Key })

	payload := diffPayload{
		BaseID: baseID, HeadID: headID,
		Summary: diffSummary{
			NewCount:      len(added),
			ResolvedCount: len(resolved),
			ChangedCount:  len(changed),
			BaseMaxRisk:   base.MaxRisk(),
			HeadMaxRisk:   head.MaxRisk(),
		},
		New:      added,
		Resolved: resolved,
		Changed:  changed,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

func indexIssues(a *contract.Analysis) map[string]diffIssue {
	m := map[string]diffIssue{}
	for _, d := range a.Documents {
		for _, iss := range d.Result.Issues {
			m[keyOf(d.Name, iss.ID)] = diffIssue{
				Document:    d.Name,
				RuleID:      iss.ID,
				Severity:    string(iss.RiskLevel),
				Issue:       iss.Description,
				Matches:     iss.Matches,
				MatchedText: iss.MatchedText,
			}
		}
	}
	return m
}

func keyOf(document, ruleID string) string {
	return norm(document) + "|" + norm(ruleID)
}

func diffLess(a, b diffIssue) bool {
	if a.Document == b.Document {
		return a.RuleID < b.RuleID
	}
	return a.Document < b.Document
}

func norm(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
