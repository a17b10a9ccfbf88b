package service

import (
	"context"
	"errors"

	"daily_companion/internal/models"
	"daily_companion/internal/repository"
)

// ErrNotFound signals an operation on a (user, id) pair that does not exist.
// Deletes never return it; they are idempotent.
var ErrNotFound = errors.New("not found")

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// Todos exposes the per-user task list.
type Todos interface {
	Add(ctx context.Context, userID int, task string) (int64, error)
	List(ctx context.Context, userID int) (TodoLists, error)
	ToggleComplete(ctx context.Context, userID int, todoID int64) (models.Todo, error)
	Delete(ctx context.Context, userID int, todoID int64) error
}

// Journal exposes the per-user mood-tracked journal.
type Journal interface {
	Create(ctx context.Context, userID int, in EntryInput) (int64, error)
	Update(ctx context.Context, userID int, entryID int64, in EntryInput) (models.JournalEntry, error)
	Get(ctx context.Context, userID int, entryID int64) (EntryView, error)
	List(ctx context.Context, userID int) ([]models.JournalEntry, error)
	Delete(ctx context.Context, userID int, entryID int64) error
}

// MoodReport builds the last-days mood summary and its chart image.
type MoodReport interface {
	DailyAverages(ctx context.Context, userID int) ([]models.DailyMood, error)
	RenderChart(days []models.DailyMood) ([]byte, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Todos
	Journal
	MoodReport
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Todos:         NewTodoService(repos.Todos),
		Journal:       NewJournalService(repos.Journal),
		MoodReport:    NewMoodReportService(repos.Journal),
	}
}
