package repository

import (
	"context"
	"database/sql"

	"daily_companion/internal/models"
	"daily_companion/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, name, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Todos interface {
	Insert(ctx context.Context, userID int, task string) (int64, error)
	ListByUser(ctx context.Context, userID int) ([]models.Todo, error)
	Get(ctx context.Context, userID int, todoID int64) (*models.Todo, error)
	SetComplete(ctx context.Context, userID int, todoID int64, complete bool) (int64, error)
	Delete(ctx context.Context, userID int, todoID int64) error
}

type JournalEntries interface {
	Insert(ctx context.Context, e models.JournalEntry) (int64, error)
	Update(ctx context.Context, e models.JournalEntry) (int64, error)
	Get(ctx context.Context, userID int, entryID int64) (*models.JournalEntry, error)
	ListByUser(ctx context.Context, userID int) ([]models.JournalEntry, error)
	Delete(ctx context.Context, userID int, entryID int64) error
	DailyAverages(ctx context.Context, userID, limit int) ([]models.DailyMood, error)
}

type Repository struct {
	Users   Users
	Todos   Todos
	Journal JournalEntries
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users:   NewUserRepository(sqlDB),
		Todos:   NewTodoSQLite(sqlDB),
		Journal: NewJournalSQLite(sqlDB),
	}
}

// InitDB opens the SQLite file and ensures the schema, forwarding to the db subpackage.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
