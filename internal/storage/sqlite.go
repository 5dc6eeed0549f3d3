package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite" // CGO-free SQLite driver

	"github.com/shauryaa19/legallens/internal/contract"
)

// DB is the concrete storage backed by SQLite.
type DB struct {
	conn *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite DB at path.
func OpenSQLite(path string) (*DB, error) {
	// Pragmas via DSN keep it portable with the modernc driver.
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	c, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &DB{conn: c}, nil
}

func (db *DB) Close() error { return db.conn.Close() }

// CreateSchema ensures tables (and the summary view) exist.
func (db *DB) CreateSchema() error {
	_, err := db.conn.Exec(`
CREATE TABLE IF NOT EXISTS analyses (
  id             TEXT PRIMARY KEY,
  started_at     TEXT,          -- RFC3339
  source         TEXT,
  engine_version TEXT,
  documents      INTEGER NOT NULL DEFAULT 0,
  max_risk       REAL NOT NULL DEFAULT 0,
  total_issues   INTEGER NOT NULL DEFAULT 0,
  analysis_json  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS issues (
  analysis_id  TEXT NOT NULL,
  document     TEXT NOT NULL,
  rule_id      TEXT NOT NULL,
  rule_name    TEXT,
  severity     TEXT,
  category     TEXT,
  issue        TEXT,
  suggestion   TEXT,
  legal_basis  TEXT,
  matches      INTEGER,
  matched_text TEXT,
  PRIMARY KEY (analysis_id, document, rule_id),
  FOREIGN KEY(analysis_id) REFERENCES analyses(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_issues_analysis ON issues(analysis_id);
CREATE INDEX IF NOT EXISTS idx_issues_rule ON issues(rule_id);

CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE NOT NULL,
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'viewer',
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
  token TEXT PRIMARY KEY,
  user_id INTEGER NOT NULL,
  expires_at TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS audit (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ts TEXT NOT NULL,
  username TEXT,
  action TEXT NOT NULL,
  resource TEXT,
  meta_json TEXT
);

CREATE TABLE IF NOT EXISTS waivers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  rule_id     TEXT NOT NULL,
  document    TEXT,              -- optional exact match; NULL = any document
  excerpt_sub TEXT,              -- optional substring to match the issue excerpt
  reason      TEXT NOT NULL,
  expires_at  TEXT NOT NULL,     -- RFC3339Nano
  created_by  TEXT NOT NULL,
  created_at  TEXT NOT NULL,
  revoked_at  TEXT               -- NULL = active
);

-- Ad-hoc summary view: issue counts per rule and severity across all runs.
CREATE VIEW IF NOT EXISTS rule_hits AS
SELECT rule_id, severity, COUNT(1) AS hits
FROM issues
GROUP BY rule_id, severity;
`)
	return err
}

// SaveAnalysis upserts an analysis JSON and (re)writes its issue rows.
func (db *DB) SaveAnalysis(a *contract.Analysis) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	ts := a.StartedAt.UTC().Format(time.RFC3339Nano)

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO analyses (id, started_at, source, engine_version, documents, max_risk, total_issues, analysis_json)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET started_at=excluded.started_at, source=excluded.source,
             engine_version=excluded.engine_version, documents=excluded.documents,
             max_risk=excluded.max_risk, total_issues=excluded.total_issues,
             analysis_json=excluded.analysis_json`,
		a.ID, ts, a.Source, a.EngineVersion, len(a.Documents), a.MaxRisk(), a.TotalIssues(), string(b),
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM issues WHERE analysis_id = ?`, a.ID); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO issues
		(analysis_id, document, rule_id, rule_name, severity, category, issue, suggestion, legal_basis, matches, matched_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, d := range a.Documents {
		for _, iss := range d.Result.Issues {
			if _, err := stmt.Exec(
				a.ID,
				d.Name,
				iss.ID,
				iss.Name,
				string(iss.RiskLevel),
				iss.Category,
				iss.Description,
				iss.Suggestion,
				iss.LegalBasis,
				iss.Matches,
				iss.MatchedText,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadAnalysis returns the full analysis (from stored JSON).
func (db *DB) LoadAnalysis(id string) (contract.Analysis, error) {
	var s string
	row := db.conn.QueryRow(`SELECT analysis_json FROM analyses WHERE id = ?`, id)
	if err := row.Scan(&s); err != nil {
		return contract.Analysis{}, err
	}
	var a contract.Analysis
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return contract.Analysis{}, err
	}
	return a, nil
}
