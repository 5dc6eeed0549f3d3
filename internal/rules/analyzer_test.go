package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shauryaa19/legallens/internal/contract"
)

func issueIDs(res contract.Result) []string {
	ids := make([]string, 0, len(res.Issues))
	for _, iss := range res.Issues {
		ids = append(ids, iss.ID)
	}
	return ids
}

func TestAnalyze_GoverningLawAndTermination(t *testing.T) {
	text := "This agreement shall be governed by the laws of England. " +
		"The employer may terminate employment immediately without notice."

	res := Analyze(text)

	assert.Equal(t, []string{"foreign_jurisdiction", "unfair_termination", "missing_arbitration"}, issueIDs(res))
	assert.Equal(t, 0.45, res.RiskScore)
	assert.Equal(t, 3, res.TotalIssues)

	require.Len(t, res.Issues, 3)
	assert.Equal(t, contract.SeverityMedium, res.Issues[0].RiskLevel)
	assert.Equal(t, "governed by the laws of England", res.Issues[0].MatchedText)
	assert.Equal(t, "No dispute resolution mechanism found in document", res.Issues[2].MatchedText)
}

func TestAnalyze_EmptyText(t *testing.T) {
	res := Analyze("")

	assert.Equal(t, 0.15, res.RiskScore)
	assert.Equal(t, 1, res.TotalIssues)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "missing_arbitration", res.Issues[0].ID)
}

func TestAnalyze_ArbitrationSuppressesAbsenceRule(t *testing.T) {
	text := "The vendor accepts unlimited liability. A penalty applies for delay. " +
		"All disputes shall be settled by arbitration."

	res := Analyze(text)

	assert.Equal(t, []string{"unlimited_liability", "penalty_clause"}, issueIDs(res))
	assert.Equal(t, 0.5, res.RiskScore)
	assert.Equal(t, 2, res.TotalIssues)
	for _, iss := range res.Issues {
		assert.Equal(t, contract.SeverityHigh, iss.RiskLevel)
	}
}

func TestAnalyze_AllRulesFire(t *testing.T) {
	text := "The contractor assumes unlimited liability for any breach. " +
		"A penalty of ten percent applies to late milestones. " +
		"This agreement shall be governed by the laws of Singapore. " +
		"The company may terminate this agreement at will."

	res := Analyze(text)

	assert.Equal(t, []string{
		"unlimited_liability",
		"penalty_clause",
		"foreign_jurisdiction",
		"unfair_termination",
		"missing_arbitration",
	}, issueIDs(res))
	assert.Equal(t, 0.95, res.RiskScore)
	assert.Equal(t, 5, res.TotalIssues)
}

func TestAnalyze_ScoreClampsAtOne(t *testing.T) {
	rs := []Rule{
		{ID: "alpha", Name: "Alpha", Severity: contract.SeverityHigh, Expr: `\balpha\b`},
		{ID: "bravo", Name: "Bravo", Severity: contract.SeverityHigh, Expr: `\bbravo\b`},
		{ID: "charlie", Name: "Charlie", Severity: contract.SeverityHigh, Expr: `\bcharlie\b`},
		{ID: "delta", Name: "Delta", Severity: contract.SeverityHigh, Expr: `\bdelta\b`},
		{ID: "echo", Name: "Echo", Severity: contract.SeverityHigh, Expr: `\becho\b`},
	}
	reg, err := NewRegistry(rs, nil)
	require.NoError(t, err)

	res := reg.Analyze("alpha bravo charlie delta echo")

	// 5 x 0.25 would sum to 1.25; the score saturates instead.
	assert.Equal(t, 1.0, res.RiskScore)
	assert.Equal(t, 5, res.TotalIssues)
}

func TestAnalyze_WeightAppliedOncePerRule(t *testing.T) {
	text := "A penalty for delay. A penalty for defects. A further penalty for withdrawal. " +
		"Disputes go to arbitration."

	res := Analyze(text)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "penalty_clause", res.Issues[0].ID)
	assert.Equal(t, 3, res.Issues[0].Matches)
	assert.Equal(t, 0.25, res.RiskScore)
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	res := Analyze("THE SUPPLIER BEARS UNLIMITED LIABILITY. DISPUTES GO TO ARBITRATION.")

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "unlimited_liability", res.Issues[0].ID)
	assert.Equal(t, "UNLIMITED LIABILITY", res.Issues[0].MatchedText)
}

func TestAnalyze_WhitespaceCollapsed(t *testing.T) {
	text := "This agreement shall be governed\n\tby   the\nlaws of England. Disputes go to arbitration."

	res := Analyze(text)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "foreign_jurisdiction", res.Issues[0].ID)
	assert.Equal(t, "governed by the laws of England", res.Issues[0].MatchedText)
}

func TestAnalyze_IssueOrderFollowsCatalog(t *testing.T) {
	// Triggering phrases appear in reverse catalog order.
	text := "Either party may terminate at will. Governed by the laws of Germany. " +
		"Penalty charges accrue. The supplier bears unlimited liability."

	res := Analyze(text)

	assert.Equal(t, []string{
		"unlimited_liability",
		"penalty_clause",
		"foreign_jurisdiction",
		"unfair_termination",
		"missing_arbitration",
	}, issueIDs(res))
}

func TestAnalyze_ExcerptTruncated(t *testing.T) {
	rs := []Rule{
		{ID: "span", Name: "Span", Severity: contract.SeverityLow, Expr: `begin[^.]*end`},
	}
	reg, err := NewRegistry(rs, nil)
	require.NoError(t, err)

	res := reg.Analyze("begin " + strings.Repeat("x", 150) + " end.")

	require.Len(t, res.Issues, 1)
	got := res.Issues[0].MatchedText
	assert.True(t, strings.HasSuffix(got, "..."), "long excerpt should end with ellipsis, got %q", got)
	assert.Len(t, got, excerptLimit+3)
	assert.Equal(t, 0.1, res.RiskScore)
}

func TestAnalyze_NoIssues(t *testing.T) {
	res := Analyze("This agreement includes an arbitration clause for all disagreements.")

	assert.NotNil(t, res.Issues)
	assert.Empty(t, res.Issues)
	assert.Zero(t, res.RiskScore)
	assert.Zero(t, res.TotalIssues)
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "Unlimited liability applies. Governed by the laws of France. No notice required."

	first := Analyze(text)
	second := Analyze(text)

	assert.Equal(t, first, second)
}

func TestAnalyze_MoreMatchesNeverLowerScore(t *testing.T) {
	base := "The parties agree to binding arbitration. Payment is due in thirty days."
	worse := base + " The customer accepts unlimited liability."

	assert.GreaterOrEqual(t, Analyze(worse).RiskScore, Analyze(base).RiskScore)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "governed by law", "governed by law"},
		{"newlines and tabs", "governed\n\tby \r\n law", "governed by law"},
		{"leading and trailing", "  governed by law \n", "governed by law"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
