package storage

import (
	"database/sql"
	"time"

	"github.com/shauryaa19/legallens/internal/contract"
)

// ListAnalyses returns a lightweight list of runs with counts.
func (db *DB) ListAnalyses(limit, offset int) ([]AnalysisRow, error) {
	const q = `
		SELECT id, started_at, source, engine_version, documents, max_risk, total_issues
		  FROM analyses
		 ORDER BY started_at DESC, id DESC
		 LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnalysisRow
	for rows.Next() {
		var ar AnalysisRow
		var startedAtStr string
		if err := rows.Scan(&ar.ID, &startedAtStr, &ar.Source, &ar.EngineVersion, &ar.Documents, &ar.MaxRisk, &ar.TotalIssues); err != nil {
			return nil, err
		}
		ar.StartedAt = parseTS(startedAtStr)
		out = append(out, ar)
	}
	return out, rows.Err()
}

// ListIssues returns issues for an analysis at or above a minimum severity,
// optionally narrowed to one document.
func (db *DB) ListIssues(analysisID, minSeverity, document string) ([]IssueRow, error) {
	q := `
		SELECT document, rule_id, rule_name, severity, COALESCE(category,''),
		       issue, suggestion, legal_basis, matches, matched_text
		  FROM issues
		 WHERE analysis_id = ?
		   AND (CASE severity WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END)
		       >= (CASE ? WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END)`
	args := []any{analysisID, minSeverity}
	if document != "" {
		q += ` AND document = ?`
		args = append(args, document)
	}
	q += `
		 ORDER BY
		       (CASE severity WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END) DESC,
		       document, rule_id`
	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []IssueRow
	for rows.Next() {
		var ir IssueRow
		if err := rows.Scan(&ir.Document, &ir.RuleID, &ir.RuleName, &ir.Severity, &ir.Category,
			&ir.Issue, &ir.Suggestion, &ir.LegalBasis, &ir.Matches, &ir.MatchedText); err != nil {
			return nil, err
		}
		out = append(out, ir)
	}
	return out, rows.Err()
}

// LoadLatestAnalysis returns the most recently started analysis.
func (db *DB) LoadLatestAnalysis() (contract.Analysis, error) {
	var id string
	row := db.conn.QueryRow(`SELECT id FROM analyses ORDER BY started_at DESC, id DESC LIMIT 1`)
	if err := row.Scan(&id); err != nil {
		return contract.Analysis{}, err
	}
	return db.LoadAnalysis(id)
}

// HasAnalysis reports whether an analysis id exists.
func (db *DB) HasAnalysis(id string) (bool, error) {
	const q = `SELECT 1 FROM analyses WHERE id = ? LIMIT 1`
	var one int
	err := db.conn.QueryRow(q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

// parseTS parses RFC3339Nano first, falling back to RFC3339. Unparsable
// values come back as the zero time.
func parseTS(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
