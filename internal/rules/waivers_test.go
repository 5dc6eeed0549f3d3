package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shauryaa19/legallens/internal/contract"
	"github.com/shauryaa19/legallens/internal/storage"
)

func TestApplyWaivers(t *testing.T) {
	issues := []contract.Issue{
		{ID: "penalty_clause", RiskLevel: contract.SeverityHigh, MatchedText: "penalty for late delivery"},
		{ID: "unfair_termination", RiskLevel: contract.SeverityMedium, MatchedText: "terminate at will"},
	}

	tests := []struct {
		name       string
		document   string
		waivers    []storage.Waiver
		wantKept   []string
		wantWaived int
	}{
		{
			name:       "no waivers keeps everything",
			document:   "vendor.txt",
			wantKept:   []string{"penalty_clause", "unfair_termination"},
			wantWaived: 0,
		},
		{
			name:       "rule-wide waiver",
			document:   "vendor.txt",
			waivers:    []storage.Waiver{{RuleID: "PENALTY_CLAUSE"}},
			wantKept:   []string{"unfair_termination"},
			wantWaived: 1,
		},
		{
			name:       "document-scoped waiver on another document",
			document:   "vendor.txt",
			waivers:    []storage.Waiver{{RuleID: "penalty_clause", Document: "lease.txt"}},
			wantKept:   []string{"penalty_clause", "unfair_termination"},
			wantWaived: 0,
		},
		{
			name:       "excerpt substring narrows the waiver",
			document:   "vendor.txt",
			waivers:    []storage.Waiver{{RuleID: "penalty_clause", ExcerptSub: "LATE DELIVERY"}},
			wantKept:   []string{"unfair_termination"},
			wantWaived: 1,
		},
		{
			name:       "excerpt substring that does not occur",
			document:   "vendor.txt",
			waivers:    []storage.Waiver{{RuleID: "penalty_clause", ExcerptSub: "liquidated"}},
			wantKept:   []string{"penalty_clause", "unfair_termination"},
			wantWaived: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, waived := ApplyWaivers(tt.document, issues, tt.waivers)
			ids := make([]string, 0, len(kept))
			for _, iss := range kept {
				ids = append(ids, iss.ID)
			}
			assert.Equal(t, tt.wantKept, ids)
			assert.Equal(t, tt.wantWaived, waived)
		})
	}
}

func TestRescore(t *testing.T) {
	kept := []contract.Issue{
		{ID: "unlimited_liability", RiskLevel: contract.SeverityHigh},
		{ID: "missing_arbitration", RiskLevel: contract.SeverityMedium},
	}

	res := Rescore(kept)
	assert.Equal(t, 0.4, res.RiskScore)
	assert.Equal(t, 2, res.TotalIssues)

	empty := Rescore(nil)
	assert.NotNil(t, empty.Issues)
	assert.Zero(t, empty.RiskScore)
	assert.Zero(t, empty.TotalIssues)
}

func TestRescore_Clamps(t *testing.T) {
	var kept []contract.Issue
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		kept = append(kept, contract.Issue{ID: id, RiskLevel: contract.SeverityHigh})
	}

	res := Rescore(kept)
	require.Equal(t, 5, res.TotalIssues)
	assert.Equal(t, 1.0, res.RiskScore)
}
