package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"daily_companion/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite { return &TodoSQLite{db: db} }

var _ Todos = (*TodoSQLite)(nil)

// Every statement filters by user_id; a todo is reachable only through its owner.
const (
	insertTodoSQL = `INSERT INTO todos (user_id, task) VALUES (?, ?)`

	selectTodosByUserSQL = `
		SELECT todo_id, user_id, task, complete
		FROM todos WHERE user_id = ? ORDER BY todo_id ASC
	`

	selectTodoSQL = `
		SELECT todo_id, user_id, task, complete
		FROM todos WHERE user_id = ? AND todo_id = ?
	`

	updateTodoCompleteSQL = `UPDATE todos SET complete = ? WHERE user_id = ? AND todo_id = ?`

	deleteTodoSQL = `DELETE FROM todos WHERE user_id = ? AND todo_id = ?`
)

// Insert adds a task for the user, incomplete by default, and returns its id.
func (r *TodoSQLite) Insert(ctx context.Context, userID int, task string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertTodoSQL, userID, task)
	if err != nil {
		return 0, fmt.Errorf("insert todo for user %d: %w", userID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for todo: %w", err)
	}
	return id, nil
}

// ListByUser returns all of the user's todos in insertion order.
func (r *TodoSQLite) ListByUser(ctx context.Context, userID int) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, selectTodosByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select todos for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, 16)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Task, &t.Complete); err != nil {
			return nil, fmt.Errorf("scan todo row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todo rows: %w", err)
	}
	return out, nil
}

// Get fetches one (user, todo) pair. Returns (nil, nil) if not found.
func (r *TodoSQLite) Get(ctx context.Context, userID int, todoID int64) (*models.Todo, error) {
	var t models.Todo
	err := r.db.QueryRowContext(ctx, selectTodoSQL, userID, todoID).
		Scan(&t.ID, &t.UserID, &t.Task, &t.Complete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select todo %d for user %d: %w", todoID, userID, err)
	}
	return &t, nil
}

// SetComplete flips the completion flag and reports how many rows matched,
// so callers can distinguish "updated" from "no such todo for this user".
func (r *TodoSQLite) SetComplete(ctx context.Context, userID int, todoID int64, complete bool) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateTodoCompleteSQL, complete, userID, todoID)
	if err != nil {
		return 0, fmt.Errorf("update todo %d for user %d: %w", todoID, userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for todo %d: %w", todoID, err)
	}
	return n, nil
}

// Delete removes the (user, todo) pair. Deleting an absent todo is a no-op.
func (r *TodoSQLite) Delete(ctx context.Context, userID int, todoID int64) error {
	if _, err := r.db.ExecContext(ctx, deleteTodoSQL, userID, todoID); err != nil {
		return fmt.Errorf("delete todo %d for user %d: %w", todoID, userID, err)
	}
	return nil
}
