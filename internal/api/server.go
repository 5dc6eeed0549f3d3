package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shauryaa19/legallens/internal/contract"
	"github.com/shauryaa19/legallens/internal/rules"
	"github.com/shauryaa19/legallens/internal/storage"
)

// Store is the minimal persistence contract the API needs.
type Store interface {
	ListAnalyses(limit, offset int) ([]storage.AnalysisRow, error)
	LoadAnalysis(id string) (contract.Analysis, error)
	LoadLatestAnalysis() (contract.Analysis, error)
	ListIssues(analysisID, minSeverity, document string) ([]storage.IssueRow, error)

	ListWaivers(activeOnly bool) ([]storage.Waiver, error)
	CreateWaiver(ruleID, document, excerptSub, reason, createdBy string, expires time.Time) (int64, error)
	RevokeWaiver(id int64) error
}

// UserStore is the auth/audit contract the API uses.
type UserStore interface {
	GetUserByUsername(string) (storage.User, string, error)
	CreateSession(int64, string, time.Time) error
	GetSession(string) (storage.User, error)
	DeleteSession(string) error
	LogAudit(username, action, resource string, meta map[string]any) error
}

type Server struct {
	DB              Store
	UserStore       UserStore
	Logger          *slog.Logger
	Registry        *rules.Registry // nil means the built-in catalog
	AllowedOrigins  []string
	SessionDuration time.Duration
}

func (s *Server) registry() *rules.Registry {
	if s.Registry != nil {
		return s.Registry
	}
	return rules.Default()
}

func (s *Server) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	withCORS := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if origin := s.pickCORSOrigin(r); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS, POST")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			h(w, r)
		}
	}

	// Health
	mux.HandleFunc("GET /api/v1/health", withCORS(s.handleHealth))

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", withCORS(s.handleLogin))
	mux.HandleFunc("POST /api/v1/auth/logout", withCORS(withAuth(s, s.handleLogout, "auth:logout")))
	mux.HandleFunc("GET /api/v1/me", withCORS(withAuth(s, s.handleMe, "me")))

	// Analyses
	mux.HandleFunc("GET /api/v1/analyses", withCORS(s.handleListAnalyses))
	mux.HandleFunc("GET /api/v1/analyses/latest", withCORS(s.handleGetLatest))
	mux.HandleFunc("GET /api/v1/analyses/{id}", withCORS(s.handleGetAnalysis))
	mux.HandleFunc("GET /api/v1/analyses/{id}/issues", withCORS(s.handleListIssues))

	// Ad-hoc analysis
	mux.HandleFunc("POST /api/v1/analyze", withCORS(withAuth(s, s.handleAnalyze, "analyze")))

	// Rules inventory
	mux.HandleFunc("GET /api/v1/rules", withCORS(s.handleRules))

	// Waivers
	mux.HandleFunc("GET /api/v1/waivers", withCORS(withAuth(s, s.handleListWaivers, "waivers:list")))
	mux.HandleFunc("POST /api/v1/waivers", withCORS(withAdmin(s, s.handleCreateWaiver, "waivers:create")))
	mux.HandleFunc("POST /api/v1/waivers/{id}/revoke", withCORS(withAdmin(s, s.handleRevokeWaiver, "waivers:revoke")))

	// Fallback 404
	mux.HandleFunc("/", withCORS(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	return mux
}

func (s *Server) pickCORSOrigin(r *http.Request) string {
	if len(s.AllowedOrigins) == 0 {
		return "*"
	}
	origin := r.Header.Get("Origin")
	for _, ao := range s.AllowedOrigins {
		if ao == "*" {
			return "*"
		}
		if origin != "" && strings.EqualFold(origin, ao) {
			return origin
		}
	}
	// not allowed: no CORS header
	return ""
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"engine":    contract.Version,
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := clamp(parseInt(q.Get("limit"), 20), 1, 200)
	offset := parseInt(q.Get("offset"), 0)

	rows, err := s.DB.ListAnalyses(limit, offset)
	if err != nil {
		s.log().Error("list analyses", "err", err)
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": rows, "limit": limit, "offset": offset,
	})
}

func (s *Server) handleGetLatest(w http.ResponseWriter, r *http.Request) {
	a, err := s.DB.LoadLatestAnalysis()
	if err != nil {
		s.err(w, http.StatusNotFound, "no analyses")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.DB.LoadAnalysis(r.PathValue("id"))
	if err != nil {
		s.err(w, http.StatusNotFound, "analysis not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleListIssues(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	q := r.URL.Query()
	min := strings.ToUpper(strings.TrimSpace(q.Get("min_severity")))
	if min == "" {
		min = "LOW"
	}
	doc := q.Get("document")

	items, err := s.DB.ListIssues(id, min, doc)
	if err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	resp := map[string]any{
		"analysis_id": id, "min_severity": min, "items": items,
	}
	if doc != "" {
		resp["document"] = doc
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) err(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
