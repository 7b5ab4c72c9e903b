package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists tick history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode: the helper writes twice a second, readers must not block it.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ticks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT,
			price       REAL,
			ma20        REAL,
			rsi14       REAL,
			macd        REAL,
			macd_signal REAL,
			action      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ticks_ts ON ticks(timestamp)`,

		`CREATE TABLE IF NOT EXISTS action_changes (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT,
			prev_action TEXT,
			new_action  TEXT,
			price       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_changes_ts ON action_changes(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTick(rec *TickRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := rec.Snapshot
	_, err := r.db.Exec(`INSERT INTO ticks
		(timestamp, symbol, price, ma20, rsi14, macd, macd_signal, action)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Symbol, snap.Price,
		snap.MA20, snap.RSI14, snap.MACDLine, snap.MACDSignal,
		string(rec.Action),
	)
	return err
}

func (r *SQLiteRecorder) RecordActionChange(evt *ActionChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO action_changes
		(timestamp, symbol, prev_action, new_action, price)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol,
		string(evt.PrevAction), string(evt.NewAction), evt.Price,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
