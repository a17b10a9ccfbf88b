package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"daily_companion/internal/models"
)

type JournalSQLite struct {
	db *sql.DB
}

func NewJournalSQLite(db *sql.DB) *JournalSQLite { return &JournalSQLite{db: db} }

var _ JournalEntries = (*JournalSQLite)(nil)

const (
	insertEntrySQL = `
		INSERT INTO journal_entries (user_id, title, body, mood_symbol, mood_value, created_at, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	// Timestamps are left untouched: an edit is not a new entry.
	updateEntrySQL = `
		UPDATE journal_entries SET title = ?, body = ?, mood_symbol = ?, mood_value = ?
		WHERE user_id = ? AND entry_id = ?
	`

	selectEntrySQL = `
		SELECT entry_id, user_id, title, body, mood_symbol, mood_value, created_at
		FROM journal_entries WHERE user_id = ? AND entry_id = ?
	`

	selectEntriesByUserSQL = `
		SELECT entry_id, user_id, title, body, mood_symbol, mood_value, created_at
		FROM journal_entries WHERE user_id = ? ORDER BY created_at DESC
	`

	deleteEntrySQL = `DELETE FROM journal_entries WHERE user_id = ? AND entry_id = ?`

	selectDailyAveragesSQL = `
		SELECT created_date, AVG(mood_value)
		FROM journal_entries WHERE user_id = ?
		GROUP BY created_date ORDER BY created_date DESC LIMIT ?
	`
)

const sqliteTimestampFormat = "2006-01-02 15:04:05"

// Insert stores a new entry and returns its id. A zero CreatedAt is stamped
// with the current UTC time; created_date always mirrors CreatedAt's day.
func (r *JournalSQLite) Insert(ctx context.Context, e models.JournalEntry) (int64, error) {
	ts := e.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertEntrySQL,
		e.UserID,
		e.Title,
		e.Body,
		e.MoodSymbol,
		e.MoodValue,
		ts.Format(sqliteTimestampFormat),
		ts.Format("2006-01-02"),
	)
	if err != nil {
		return 0, fmt.Errorf("insert journal entry for user %d: %w", e.UserID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for journal entry: %w", err)
	}
	return id, nil
}

// Update rewrites title/body/mood of one (user, entry) pair and reports the
// matched row count so callers can signal NotFound.
func (r *JournalSQLite) Update(ctx context.Context, e models.JournalEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateEntrySQL,
		e.Title,
		e.Body,
		e.MoodSymbol,
		e.MoodValue,
		e.UserID,
		e.EntryID,
	)
	if err != nil {
		return 0, fmt.Errorf("update journal entry %d for user %d: %w", e.EntryID, e.UserID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for journal entry %d: %w", e.EntryID, err)
	}
	return n, nil
}

// Get fetches one (user, entry) pair. Returns (nil, nil) if not found.
func (r *JournalSQLite) Get(ctx context.Context, userID int, entryID int64) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := r.db.QueryRowContext(ctx, selectEntrySQL, userID, entryID).
		Scan(&e.EntryID, &e.UserID, &e.Title, &e.Body, &e.MoodSymbol, &e.MoodValue, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select journal entry %d for user %d: %w", entryID, userID, err)
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return &e, nil
}

// ListByUser returns the user's entries, most recent first.
func (r *JournalSQLite) ListByUser(ctx context.Context, userID int) ([]models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectEntriesByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select journal entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.JournalEntry, 0, 32)
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.EntryID, &e.UserID, &e.Title, &e.Body, &e.MoodSymbol, &e.MoodValue, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry row: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entry rows: %w", err)
	}
	return out, nil
}

// Delete removes one (user, entry) pair. Deleting an absent entry is a no-op.
func (r *JournalSQLite) Delete(ctx context.Context, userID int, entryID int64) error {
	if _, err := r.db.ExecContext(ctx, deleteEntrySQL, userID, entryID); err != nil {
		return fmt.Errorf("delete journal entry %d for user %d: %w", entryID, userID, err)
	}
	return nil
}

// DailyAverages returns the per-day mood averages for the user, most recent
// day first, at most limit days. Symbols are left blank; classification is
// a service concern.
func (r *JournalSQLite) DailyAverages(ctx context.Context, userID, limit int) ([]models.DailyMood, error) {
	rows, err := r.db.QueryContext(ctx, selectDailyAveragesSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select daily mood averages for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.DailyMood, 0, limit)
	for rows.Next() {
		var d models.DailyMood
		if err := rows.Scan(&d.Date, &d.Average); err != nil {
			return nil, fmt.Errorf("scan daily mood row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily mood rows: %w", err)
	}
	return out, nil
}
