package fuzz

import (
	"testing"

	"github.com/shauryaa19/legallens/internal/rules"
)

// Fuzz the analyzer with arbitrary text to ensure it never panics and its
// result invariants hold for any input.
func FuzzAnalyzeNoPanic(f *testing.F) {
	seeds := []string{
		"",
		"This agreement shall be governed by the laws of England.",
		"unlimited liability penalty without notice arbitration",
		"plain text with no contract language at all",
		"\x00\xff broken \xf0\x28\x8c\x28 bytes",
		"   \t\n\r\n   ",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, text string) {
		res := rules.Analyze(text)

		if res.RiskScore < 0 || res.RiskScore > 1 {
			t.Fatalf("risk score %v out of [0,1] for %q", res.RiskScore, text)
		}
		if res.TotalIssues != len(res.Issues) {
			t.Fatalf("totalIssues %d != len(issues) %d for %q", res.TotalIssues, len(res.Issues), text)
		}
		if res.Issues == nil {
			t.Fatalf("issues must never be nil")
		}
		for _, iss := range res.Issues {
			if iss.Matches < 1 {
				t.Fatalf("issue %s reported %d matches", iss.ID, iss.Matches)
			}
			if len([]rune(iss.MatchedText)) > 103 {
				t.Fatalf("issue %s excerpt too long: %d runes", iss.ID, len([]rune(iss.MatchedText)))
			}
		}

		// determinism over the same input
		again := rules.Analyze(text)
		if again.RiskScore != res.RiskScore || again.TotalIssues != res.TotalIssues {
			t.Fatalf("repeated analysis diverged for %q", text)
		}
	})
}
