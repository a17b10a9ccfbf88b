package handlers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"daily_companion/internal/models"
	"daily_companion/internal/service"
	"daily_companion/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginUser    *models.User
	loginErr     error

	lastRegister  service.RegisterInput
	lastLoginUser string
	lastLoginPass string
}

func (m *mockAuth) Register(ctx context.Context, in service.RegisterInput) (*models.User, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (*models.User, error) {
	m.lastLoginUser = username
	m.lastLoginPass = password
	return m.loginUser, m.loginErr
}

type mockTodos struct {
	lists   service.TodoLists
	listErr error

	addID       int64
	addErr      error
	lastAddUser int
	lastAddTask string

	toggled     models.Todo
	toggleErr   error
	toggleCalls int

	deleteErr      error
	deleteCalls    []int64
	lastDeleteUser int
}

func (m *mockTodos) Add(ctx context.Context, userID int, task string) (int64, error) {
	m.lastAddUser = userID
	m.lastAddTask = task
	return m.addID, m.addErr
}

func (m *mockTodos) List(ctx context.Context, userID int) (service.TodoLists, error) {
	return m.lists, m.listErr
}

func (m *mockTodos) ToggleComplete(ctx context.Context, userID int, todoID int64) (models.Todo, error) {
	m.toggleCalls++
	return m.toggled, m.toggleErr
}

func (m *mockTodos) Delete(ctx context.Context, userID int, todoID int64) error {
	m.lastDeleteUser = userID
	m.deleteCalls = append(m.deleteCalls, todoID)
	return m.deleteErr
}

type mockJournal struct {
	createID  int64
	createErr error
	lastInput service.EntryInput

	updated   models.JournalEntry
	updateErr error

	view    service.EntryView
	getErr  error
	entries []models.JournalEntry
	listErr error

	deleteErr   error
	deleteCalls []int64
}

func (m *mockJournal) Create(ctx context.Context, userID int, in service.EntryInput) (int64, error) {
	m.lastInput = in
	return m.createID, m.createErr
}

func (m *mockJournal) Update(ctx context.Context, userID int, entryID int64, in service.EntryInput) (models.JournalEntry, error) {
	m.lastInput = in
	return m.updated, m.updateErr
}

func (m *mockJournal) Get(ctx context.Context, userID int, entryID int64) (service.EntryView, error) {
	return m.view, m.getErr
}

func (m *mockJournal) List(ctx context.Context, userID int) ([]models.JournalEntry, error) {
	return m.entries, m.listErr
}

func (m *mockJournal) Delete(ctx context.Context, userID int, entryID int64) error {
	m.deleteCalls = append(m.deleteCalls, entryID)
	return m.deleteErr
}

type mockMoodReport struct {
	days    []models.DailyMood
	daysErr error

	png       []byte
	renderErr error

	lastRendered []models.DailyMood
}

func (m *mockMoodReport) DailyAverages(ctx context.Context, userID int) ([]models.DailyMood, error) {
	return m.days, m.daysErr
}

func (m *mockMoodReport) RenderChart(days []models.DailyMood) ([]byte, error) {
	m.lastRendered = days
	return m.png, m.renderErr
}

// ---- Shared Test Helpers ----

// stub templates matching the real template names; pages render a compact
// summary the assertions can grep for.
func testTemplates() *template.Template {
	const defs = `
{{define "welcome.html"}}welcome{{end}}
{{define "register.html"}}register{{range .Flashes}}[{{.}}]{{end}}{{end}}
{{define "login.html"}}login{{range .Flashes}}[{{.}}]{{end}}{{end}}
{{define "home.html"}}home:{{.Name}} inc={{len .Incomplete}} done={{len .Complete}}{{range .Flashes}}[{{.}}]{{end}}{{end}}
{{define "journal.html"}}journal:{{len .Entries}}{{end}}
{{define "new_entry.html"}}new_entry{{range .Flashes}}[{{.}}]{{end}}{{end}}
{{define "open_entry.html"}}open:{{.Entry.SliderValue}}{{end}}
{{define "mood_tracker.html"}}tracker:{{.HasData}}{{end}}
`
	return template.Must(template.New("t").Parse(defs))
}

func newTestRouter(t *testing.T, s *service.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sm := session.NewManager(t.TempDir(), "test-secret")
	h := NewHandler(s, sm, nil)
	r := h.InitRoutes()
	r.SetHTMLTemplate(testTemplates())
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

// signIn performs a real login round trip and returns the session cookies.
// The service's Authorization mock must be set up to succeed.
func signIn(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"pw"}}, nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie after login")
	}
	return cookies
}

func testUser() *models.User {
	return &models.User{ID: 7, Username: "alice", Name: "Alice A."}
}
