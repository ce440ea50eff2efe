package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens (or creates) the audit database and its tables. The store is
// best-effort bookkeeping: handlers log failures and carry on.
func InitDB(path string) error {
	var err error
	db, err = sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open audit db: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS refreshes (
		id TEXT PRIMARY KEY,
		trigger_kind TEXT NOT NULL,
		status TEXT NOT NULL,
		row_count INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		error TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS query_log (
		id TEXT PRIMARY KEY,
		zones TEXT,
		vehicles TEXT,
		method TEXT NOT NULL,
		raw INTEGER NOT NULL DEFAULT 0,
		rows_out INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create audit tables: %w", err)
	}
	return nil
}

// Close releases the database handle.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// Refresh is one recorded reload of the source range.
type Refresh struct {
	ID        string    `json:"id"`
	Trigger   string    `json:"trigger"`
	Status    string    `json:"status"`
	RowCount  int       `json:"rowCount"`
	Duration  int64     `json:"durationMs"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveRefresh records one reload attempt and returns its id.
func SaveRefresh(trigger, status string, rowCount int, duration time.Duration, errMsg string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("store not initialized")
	}
	id := uuid.New().String()
	_, err := db.Exec(
		`INSERT INTO refreshes (id, trigger_kind, status, row_count, duration_ms, error) VALUES (?, ?, ?, ?, ?, ?)`,
		id, trigger, status, rowCount, duration.Milliseconds(), errMsg,
	)
	if err != nil {
		return "", fmt.Errorf("save refresh: %w", err)
	}
	return id, nil
}

// ListRefreshes returns the most recent reloads, newest first.
func ListRefreshes(limit int) ([]Refresh, error) {
	if db == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT id, trigger_kind, status, row_count, duration_ms, COALESCE(error, ''), created_at
		 FROM refreshes ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list refreshes: %w", err)
	}
	defer rows.Close()

	var out []Refresh
	for rows.Next() {
		var r Refresh
		if err := rows.Scan(&r.ID, &r.Trigger, &r.Status, &r.RowCount, &r.Duration, &r.Error, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan refresh: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveQuery records one dashboard evaluation for usage auditing.
func SaveQuery(zones, vehicles, method string, raw bool, rowsOut int) error {
	if db == nil {
		return fmt.Errorf("store not initialized")
	}
	rawInt := 0
	if raw {
		rawInt = 1
	}
	_, err := db.Exec(
		`INSERT INTO query_log (id, zones, vehicles, method, raw, rows_out) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), zones, vehicles, method, rawInt, rowsOut,
	)
	if err != nil {
		return fmt.Errorf("save query: %w", err)
	}
	return nil
}
