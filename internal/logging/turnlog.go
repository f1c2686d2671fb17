package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS turn_log (
    turn_id      TEXT NOT NULL,
    stimulus     TEXT NOT NULL,
    response     TEXT NOT NULL,
    mode         TEXT NOT NULL,
    depth        TEXT,
    stage        TEXT NOT NULL,
    level        REAL NOT NULL,
    record_json  TEXT,
    failure_note TEXT,
    created_at   TEXT NOT NULL
);
`

// EnsureSchema creates the turn_log table if it does not exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate turn_log: %w", err)
	}
	return nil
}

// #endregion schema

// #region log-turn
// LogTurn writes a completed turn to the turn_log table.
func LogTurn(db *sql.DB, entry TurnEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO turn_log (turn_id, stimulus, response, mode, depth, stage, level, record_json, failure_note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.TurnID,
		entry.Stimulus,
		entry.Response,
		entry.Mode,
		nullIfEmpty(entry.Depth),
		entry.Stage,
		entry.Level,
		nullIfEmpty(entry.RecordJSON),
		nullIfEmpty(entry.FailureNote),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log turn: %w", err)
	}
	return nil
}

// #endregion log-turn

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
