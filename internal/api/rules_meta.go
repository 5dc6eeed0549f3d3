package api

import "net/http"

// GET /api/v1/rules (catalog metadata; no auth needed for read-only)
func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	type R struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Severity   string `json:"severity"`
		Category   string `json:"category,omitempty"`
		Issue      string `json:"issue"`
		Suggestion string `json:"suggestion,omitempty"`
		LegalBasis string `json:"legal_basis,omitempty"`
	}
	var out []R
	for _, rr := range s.registry().Rules() {
		out = append(out, R{
			ID: rr.ID, Name: rr.Name, Severity: string(rr.Severity),
			Category: rr.Category, Issue: rr.Issue,
			Suggestion: rr.Suggestion, LegalBasis: rr.LegalBasis,
		})
	}
	// catalog order is the registry's evaluation order
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "count": len(out)})
}
