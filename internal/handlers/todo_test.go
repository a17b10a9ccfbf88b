package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"daily_companion/internal/models"
	"daily_companion/internal/service"
)

func TestTodo_HomepagePartitions(t *testing.T) {
	todos := &mockTodos{lists: service.TodoLists{
		Incomplete: []models.Todo{{ID: 1, Task: "a"}, {ID: 3, Task: "c"}},
		Complete:   []models.Todo{{ID: 2, Task: "b"}},
	}}
	s := &service.Service{Authorization: &mockAuth{loginUser: testUser()}, Todos: todos}
	r := newTestRouter(t, s)
	cookies := signIn(t, r)

	w := get(r, "/homepage", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("homepage status=%d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Alice A.") || !strings.Contains(body, "inc=2") || !strings.Contains(body, "done=1") {
		t.Fatalf("unexpected homepage body: %q", body)
	}
}

func TestTodo_AddRedirects(t *testing.T) {
	todos := &mockTodos{addID: 11}
	s := &service.Service{Authorization: &mockAuth{loginUser: testUser()}, Todos: todos}
	r := newTestRouter(t, s)
	cookies := signIn(t, r)

	w := postForm(r, "/add", url.Values{"todoitem": {"buy milk"}}, cookies)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/homepage" {
		t.Fatalf("add: status=%d location=%q", w.Code, w.Header().Get("Location"))
	}
	if todos.lastAddUser != 7 || todos.lastAddTask != "buy milk" {
		t.Fatalf("unexpected add call: user=%d task=%q", todos.lastAddUser, todos.lastAddTask)
	}
}

func TestTodo_AddBlankTaskFlashes(t *testing.T) {
	todos := &mockTodos{}
	s := &service.Service{Authorization: &mockAuth{loginUser: testUser()}, Todos: todos}
	r := newTestRouter(t, s)
	cookies := signIn(t, r)

	w := postForm(r, "/add", url.Values{"todoitem": {"   "}}, cookies)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("blank add status=%d", w.Code)
	}
	if todos.lastAddTask != "" {
		t.Fatal("service must not be called for a blank task")
	}

	// the flash shows up on the followup page
	w2 := get(r, "/homepage", append(cookies, w.Result().Cookies()...))
	if !strings.Contains(w2.Body.String(), "Please provide a task.") {
		t.Fatalf("expected flash on homepage, body=%q", w2.Body.String())
	}
}

func TestTodo_CompleteToggleAndNotFound(t *testing.T) {
	todos := &mockTodos{toggled: models.Todo{ID: 5, Complete: true}}
	s := &service.Service{Authorization: &mockAuth{loginUser: testUser()}, Todos: todos}
	r := newTestRouter(t, s)
	cookies := signIn(t, r)

	w := get(r, "/complete/5", cookies)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/homepage" {
		t.Fatalf("complete: status=%d location=%q", w.Code, w.Header().Get("Location"))
	}
	if todos.toggleCalls != 1 {
		t.Fatalf("expected 1 toggle call, got %d", todos.toggleCalls)
	}

	todos.toggleErr = service.ErrNotFound
	w = get(r, "/complete/404", cookies)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing todo, got %d", w.Code)
	}

	// non-numeric id never reaches the service
	before := todos.toggleCalls
	w = get(r, "/complete/abc", cookies)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for garbled id, got %d", w.Code)
	}
	if todos.toggleCalls != before {
		t.Fatal("service must not be called for a garbled id")
	}
}

func TestTodo_DeleteIsIdempotent(t *testing.T) {
	todos := &mockTodos{}
	s := &service.Service{Authorization: &mockAuth{loginUser: testUser()}, Todos: todos}
	r := newTestRouter(t, s)
	cookies := signIn(t, r)

	w := get(r, "/delete/5", cookies)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/homepage" {
		t.Fatalf("delete: status=%d location=%q", w.Code, w.Header().Get("Location"))
	}
	if len(todos.deleteCalls) != 1 || todos.deleteCalls[0] != 5 {
		t.Fatalf("unexpected delete calls: %v", todos.deleteCalls)
	}
	if todos.lastDeleteUser != 7 {
		t.Fatalf("delete must be scoped to the session user, got %d", todos.lastDeleteUser)
	}
}

func TestTodo_RoutesRequireSession(t *testing.T) {
	s := &service.Service{Todos: &mockTodos{}}
	r := newTestRouter(t, s)

	for _, path := range []string{"/homepage", "/delete/1", "/complete/1"} {
		w := get(r, path, nil)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Errorf("%s: expected login redirect, got %d -> %q",
				path, w.Code, w.Header().Get("Location"))
		}
	}

	w := postForm(r, "/add", url.Values{"todoitem": {"x"}}, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Errorf("/add: expected login redirect, got %d -> %q", w.Code, w.Header().Get("Location"))
	}
}
