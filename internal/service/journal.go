package service

import (
	"context"
	"strings"
	"time"

	"daily_companion/internal/models"
	"daily_companion/internal/mood"
	"daily_companion/internal/repository"
)

// Placeholders applied when the form fields were left blank.
const (
	defaultTitle = "No Title"
	defaultBody  = "No Text"
)

// EntryInput is a decoded entry form: create and update share it.
type EntryInput struct {
	Title     string
	Text      string
	MoodValue int
}

// EntryView is an entry prepared for the edit form: SliderValue is the
// reverse-mapped threshold that pre-positions the mood slider.
type EntryView struct {
	models.JournalEntry
	SliderValue int
}

type JournalService struct {
	entries repository.JournalEntries
}

func NewJournalService(entries repository.JournalEntries) *JournalService {
	return &JournalService{entries: entries}
}

// normalizeInput applies the blank-field placeholders and classifies the
// mood value. Classification happens here so that no write path can store a
// mood value without its matching symbol.
func normalizeInput(in EntryInput) (title, body, symbol string, err error) {
	title = strings.TrimSpace(in.Title)
	if title == "" {
		title = defaultTitle
	}
	body = strings.TrimSpace(in.Text)
	if body == "" {
		body = defaultBody
	}
	symbol, err = mood.Classify(in.MoodValue)
	return title, body, symbol, err
}

// Create stores a new entry stamped with the current time.
func (s *JournalService) Create(ctx context.Context, userID int, in EntryInput) (int64, error) {
	title, body, symbol, err := normalizeInput(in)
	if err != nil {
		return 0, err
	}

	return s.entries.Insert(ctx, models.JournalEntry{
		UserID:     userID,
		Title:      title,
		Body:       body,
		MoodSymbol: symbol,
		MoodValue:  in.MoodValue,
		CreatedAt:  time.Now().UTC(),
	})
}

// Update rewrites an existing entry with the same defaulting and
// classification as Create. The creation timestamp is not touched.
func (s *JournalService) Update(ctx context.Context, userID int, entryID int64, in EntryInput) (models.JournalEntry, error) {
	title, body, symbol, err := normalizeInput(in)
	if err != nil {
		return models.JournalEntry{}, err
	}

	e := models.JournalEntry{
		EntryID:    entryID,
		UserID:     userID,
		Title:      title,
		Body:       body,
		MoodSymbol: symbol,
		MoodValue:  in.MoodValue,
	}
	n, err := s.entries.Update(ctx, e)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if n == 0 {
		return models.JournalEntry{}, ErrNotFound
	}
	return e, nil
}

// Get fetches one entry and attaches the slider value for redisplay.
func (s *JournalService) Get(ctx context.Context, userID int, entryID int64) (EntryView, error) {
	e, err := s.entries.Get(ctx, userID, entryID)
	if err != nil {
		return EntryView{}, err
	}
	if e == nil {
		return EntryView{}, ErrNotFound
	}

	slider, err := mood.SliderValue(e.MoodSymbol)
	if err != nil {
		return EntryView{}, err
	}
	return EntryView{JournalEntry: *e, SliderValue: slider}, nil
}

// List returns the user's entries, most recent first.
func (s *JournalService) List(ctx context.Context, userID int) ([]models.JournalEntry, error) {
	return s.entries.ListByUser(ctx, userID)
}

// Delete removes the (user, entry) pair; absent entries are a silent no-op.
func (s *JournalService) Delete(ctx context.Context, userID int, entryID int64) error {
	return s.entries.Delete(ctx, userID, entryID)
}
