package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/shauryaa19/legallens/internal/contract"
	"github.com/shauryaa19/legallens/internal/document"
	"github.com/shauryaa19/legallens/internal/rules"
)

// maxAnalyzeBytes bounds an inline analyze request body.
const maxAnalyzeBytes = 1 << 20

type analyzeReq struct {
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
}

// POST /api/v1/analyze runs the catalog over inline text. Active waivers are
// applied before scoring, so the response matches what a stored report would
// show for the same document name.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBytes)
	var in analyzeReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.err(w, http.StatusBadRequest, "invalid json")
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Text)) < document.MinTextRunes {
		s.err(w, http.StatusBadRequest, "text too short to analyze")
		return
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "adhoc"
	}

	res := s.registry().Analyze(in.Text)

	waived := 0
	if ws, err := s.DB.ListWaivers(true); err == nil && len(ws) > 0 {
		var kept []contract.Issue
		kept, waived = rules.ApplyWaivers(name, res.Issues, ws)
		if waived > 0 {
			res = rules.Rescore(kept)
		}
	}

	if u, ok := userFromCtx(r.Context()); ok {
		_ = s.UserStore.LogAudit(u.Username, "analyze", name, map[string]any{
			"issues": res.TotalIssues, "waived": waived,
		})
	}
	s.log().Info("adhoc analysis", "document", name, "score", res.RiskScore, "issues", res.TotalIssues, "waived", waived)
	writeJSON(w, http.StatusOK, map[string]any{
		"document":   name,
		"risk_level": contract.RiskBand(res.RiskScore),
		"waived":     waived,
		"result":     res,
	})
}
