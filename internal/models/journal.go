package models

import "time"

// JournalEntry is one dated entry with its mood classification.
// MoodSymbol is denormalized from MoodValue; every write path recomputes
// it so the two never drift apart.
type JournalEntry struct {
	EntryID    int64     `json:"entry_id"`
	UserID     int       `json:"user_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	MoodSymbol string    `json:"mood_symbol"`
	MoodValue  int       `json:"mood_value"` // slider input, 1..120
	CreatedAt  time.Time `json:"created_at"`
}

// DailyMood is one bar of the mood report: the average mood value of all
// entries written on a calendar day, plus the symbol that average maps to.
type DailyMood struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Average float64 `json:"average"`
	Symbol  string  `json:"symbol"`
}
