package service

import (
	"context"
	"errors"
	"testing"

	"daily_companion/internal/models"
)

// mockTodoRepo is a lightweight in-test mock for repository.Todos.
type mockTodoRepo struct {
	InsertFn      func(userID int, task string) (int64, error)
	ListByUserFn  func(userID int) ([]models.Todo, error)
	GetFn         func(userID int, todoID int64) (*models.Todo, error)
	SetCompleteFn func(userID int, todoID int64, complete bool) (int64, error)
	DeleteFn      func(userID int, todoID int64) error

	setCompleteCalls []bool
	deleteCalls      []int64
}

func (m *mockTodoRepo) Insert(ctx context.Context, userID int, task string) (int64, error) {
	return m.InsertFn(userID, task)
}

func (m *mockTodoRepo) ListByUser(ctx context.Context, userID int) ([]models.Todo, error) {
	return m.ListByUserFn(userID)
}

func (m *mockTodoRepo) Get(ctx context.Context, userID int, todoID int64) (*models.Todo, error) {
	return m.GetFn(userID, todoID)
}

func (m *mockTodoRepo) SetComplete(ctx context.Context, userID int, todoID int64, complete bool) (int64, error) {
	m.setCompleteCalls = append(m.setCompleteCalls, complete)
	return m.SetCompleteFn(userID, todoID, complete)
}

func (m *mockTodoRepo) Delete(ctx context.Context, userID int, todoID int64) error {
	m.deleteCalls = append(m.deleteCalls, todoID)
	return m.DeleteFn(userID, todoID)
}

func TestTodoService_Add(t *testing.T) {
	mock := &mockTodoRepo{
		InsertFn: func(userID int, task string) (int64, error) {
			if userID != 3 || task != "buy milk" {
				t.Fatalf("unexpected insert args: %d %q", userID, task)
			}
			return 11, nil
		},
	}
	svc := NewTodoService(mock)

	id, err := svc.Add(context.Background(), 3, "  buy milk  ")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}

	if _, err := svc.Add(context.Background(), 3, "   "); err == nil {
		t.Fatal("expected error for blank task")
	}
}

func TestTodoService_List_PartitionsByCompletion(t *testing.T) {
	mock := &mockTodoRepo{
		ListByUserFn: func(userID int) ([]models.Todo, error) {
			return []models.Todo{
				{ID: 1, UserID: 3, Task: "a", Complete: false},
				{ID: 2, UserID: 3, Task: "b", Complete: true},
				{ID: 3, UserID: 3, Task: "c", Complete: false},
			}, nil
		},
	}
	svc := NewTodoService(mock)

	lists, err := svc.List(context.Background(), 3)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(lists.Incomplete) != 2 || len(lists.Complete) != 1 {
		t.Fatalf("unexpected partition: %d incomplete, %d complete",
			len(lists.Incomplete), len(lists.Complete))
	}
	// insertion order preserved inside each partition
	if lists.Incomplete[0].ID != 1 || lists.Incomplete[1].ID != 3 {
		t.Fatalf("incomplete order wrong: %+v", lists.Incomplete)
	}
}

func TestTodoService_ToggleComplete_Involution(t *testing.T) {
	state := models.Todo{ID: 5, UserID: 3, Task: "a", Complete: false}
	mock := &mockTodoRepo{
		GetFn: func(userID int, todoID int64) (*models.Todo, error) {
			copy := state
			return &copy, nil
		},
		SetCompleteFn: func(userID int, todoID int64, complete bool) (int64, error) {
			state.Complete = complete
			return 1, nil
		},
	}
	svc := NewTodoService(mock)

	first, err := svc.ToggleComplete(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Complete {
		t.Fatal("expected todo complete after first toggle")
	}

	second, err := svc.ToggleComplete(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Complete {
		t.Fatal("expected todo back to incomplete after second toggle")
	}
}

func TestTodoService_ToggleComplete_NotFound(t *testing.T) {
	mock := &mockTodoRepo{
		GetFn: func(userID int, todoID int64) (*models.Todo, error) { return nil, nil },
	}
	svc := NewTodoService(mock)

	if _, err := svc.ToggleComplete(context.Background(), 3, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTodoService_Delete_Idempotent(t *testing.T) {
	mock := &mockTodoRepo{
		DeleteFn: func(userID int, todoID int64) error { return nil },
	}
	svc := NewTodoService(mock)

	if err := svc.Delete(context.Background(), 3, 404); err != nil {
		t.Fatalf("Delete of absent todo should be a no-op, got %v", err)
	}
	if len(mock.deleteCalls) != 1 {
		t.Fatalf("expected 1 delete call, got %d", len(mock.deleteCalls))
	}
}
