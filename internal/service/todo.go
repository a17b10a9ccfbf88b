package service

import (
	"context"
	"errors"
	"strings"

	"daily_companion/internal/models"
	"daily_companion/internal/repository"
)

var errEmptyTask = errors.New("task text is empty")

// TodoLists is a user's list partitioned by completion, insertion order kept.
type TodoLists struct {
	Incomplete []models.Todo
	Complete   []models.Todo
}

type TodoService struct {
	todos repository.Todos
}

func NewTodoService(todos repository.Todos) *TodoService {
	return &TodoService{todos: todos}
}

// Add creates an incomplete task for the user and returns its id.
func (s *TodoService) Add(ctx context.Context, userID int, task string) (int64, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return 0, errEmptyTask
	}
	return s.todos.Insert(ctx, userID, task)
}

// List fetches the user's todos and partitions them by the complete flag.
func (s *TodoService) List(ctx context.Context, userID int) (TodoLists, error) {
	all, err := s.todos.ListByUser(ctx, userID)
	if err != nil {
		return TodoLists{}, err
	}

	lists := TodoLists{
		Incomplete: make([]models.Todo, 0, len(all)),
		Complete:   make([]models.Todo, 0, len(all)),
	}
	for _, t := range all {
		if t.Complete {
			lists.Complete = append(lists.Complete, t)
		} else {
			lists.Incomplete = append(lists.Incomplete, t)
		}
	}
	return lists, nil
}

// ToggleComplete flips the completion flag of one (user, todo) pair and
// returns the updated record. Toggling twice restores the original state.
func (s *TodoService) ToggleComplete(ctx context.Context, userID int, todoID int64) (models.Todo, error) {
	t, err := s.todos.Get(ctx, userID, todoID)
	if err != nil {
		return models.Todo{}, err
	}
	if t == nil {
		return models.Todo{}, ErrNotFound
	}

	flipped := !t.Complete
	n, err := s.todos.SetComplete(ctx, userID, todoID, flipped)
	if err != nil {
		return models.Todo{}, err
	}
	if n == 0 {
		// deleted between read and write
		return models.Todo{}, ErrNotFound
	}

	t.Complete = flipped
	return *t, nil
}

// Delete removes the (user, todo) pair; absent todos are a silent no-op.
func (s *TodoService) Delete(ctx context.Context, userID int, todoID int64) error {
	return s.todos.Delete(ctx, userID, todoID)
}
