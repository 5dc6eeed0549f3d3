package storage

import (
	"database/sql"
	"time"
)

// Waiver suppresses a rule's issues, optionally narrowed to one document or
// to issues whose excerpt contains a substring.
type Waiver struct {
	ID         int64      `json:"id"`
	RuleID     string     `json:"rule_id"`
	Document   string     `json:"document,omitempty"`
	ExcerptSub string     `json:"excerpt_sub,omitempty"`
	Reason     string     `json:"reason"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

func (db *DB) CreateWaiver(ruleID, document, excerptSub, reason, createdBy string, expires time.Time) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := db.conn.Exec(`
INSERT INTO waivers(rule_id, document, excerpt_sub, reason, expires_at, created_by, created_at)
VALUES(?,?,?,?,?,?,?)`,
		ruleID, nz(document), nz(excerptSub), reason, expires.UTC().Format(time.RFC3339Nano), createdBy, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) RevokeWaiver(id int64) error {
	// the revoker is recorded in audit; waivers only carry revoked_at
	_, err := db.conn.Exec(`UPDATE waivers SET revoked_at=? WHERE id=? AND revoked_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339Nano), id)
	return err
}

func (db *DB) ListWaivers(activeOnly bool) ([]Waiver, error) {
	q := `
SELECT id, rule_id, COALESCE(document,''), COALESCE(excerpt_sub,''),
       reason, expires_at, created_by, created_at, revoked_at
FROM waivers`
	args := []any{}
	if activeOnly {
		q += ` WHERE (revoked_at IS NULL) AND (expires_at > ?)`
		args = append(args, time.Now().UTC().Format(time.RFC3339Nano))
	}
	q += ` ORDER BY id DESC`
	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Waiver
	for rows.Next() {
		var (
			w           Waiver
			exp, ca, ra sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.RuleID, &w.Document, &w.ExcerptSub,
			&w.Reason, &exp, &w.CreatedBy, &ca, &ra); err != nil {
			return nil, err
		}
		if exp.Valid {
			w.ExpiresAt = parseTS(exp.String)
		}
		if ca.Valid {
			w.CreatedAt = parseTS(ca.String)
		}
		if ra.Valid {
			t := parseTS(ra.String)
			w.RevokedAt = &t
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func nz(s string) any {
	if s == "" {
		return nil
	}
	return s
}
