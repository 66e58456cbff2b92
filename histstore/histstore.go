package histstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // driver: sqlite
)

const (
	// ReasonDroppedTop10 marks a student pushed out of the top 10 by a
	// point update elsewhere.
	ReasonDroppedTop10 = "dropped_out_of_top10"
	ReasonAddedPoints  = "added_points"
)

type Entry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	StudentName string    `json:"studentName"`
	Reason      string    `json:"reason"`
	Details     string    `json:"details,omitempty"`
}

// Store is the append-only notification log backing the history feed.
// Entries are written once and never reconciled with the workbook.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		ts INTEGER NOT NULL,
		student_name TEXT NOT NULL,
		reason TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT ''
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one event. The id and timestamp are assigned here.
func (s *Store) Append(ctx context.Context, studentName, reason, details string) (*Entry, error) {
	entry := &Entry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now(),
		StudentName: studentName,
		Reason:      reason,
		Details:     details,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, ts, student_name, reason, details) VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Timestamp.UnixMilli(), entry.StudentName, entry.Reason, entry.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to append history entry: %w", err)
	}
	return entry, nil
}

// List returns entries newest first, at most limit of them (no limit
// when limit <= 0).
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, ts, student_name, reason, details FROM history ORDER BY ts DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	dbRows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer dbRows.Close()

	entries := []Entry{}
	for dbRows.Next() {
		var entry Entry
		var ts int64
		if err := dbRows.Scan(&entry.ID, &ts, &entry.StudentName, &entry.Reason, &entry.Details); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Timestamp = time.UnixMilli(ts)
		entries = append(entries, entry)
	}
	return entries, dbRows.Err()
}
