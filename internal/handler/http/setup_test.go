package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/memory"
	authService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/auth"
	calendarService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/calendar"
	dashboardService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/employee"
	taskService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/task"
	timelineService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/timeline"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestPassword   = "password123"
	handlerTestFrontend   = "http://localhost:3000"
	handlerTestSpace      = "space-1"
)

var handlerTestNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

type testServer struct {
	handler     http.Handler
	jwt         jwt.Service
	accessToken string
}

func strPtr(s string) *string { return &s }

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

// newTestServer wires the full router over in-memory repositories with a
// fixed clock. google may be nil.
func newTestServer(t *testing.T, google oauth.GoogleService) testServer {
	t.Helper()
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashed)

	users := memory.NewUserRepository()
	andi, err := users.Create(ctx, user.User{Email: "andi@example.com", PasswordHash: &hash, EmailVerified: true})
	require.NoError(t, err)

	employees := memory.NewEmployeeRepository(
		employee.Employee{ID: "emp-1", UserID: &andi.ID, FullName: "Andi Wijaya", Email: strPtr("andi@example.com")},
		employee.Employee{ID: "emp-2", FullName: "Budi Santoso"},
	)
	tasks := memory.NewTaskRepository(
		task.Task{ID: 1, SpaceID: handlerTestSpace, Title: "Fix login", Status: task.StatusTodo, Priority: task.PriorityHigh, DueDate: "2024-01-08", CreatedAt: ts("2024-01-02T08:00:00Z"), AssigneeID: strPtr("emp-1")},
		task.Task{ID: 2, SpaceID: handlerTestSpace, Title: "Outage", Status: task.StatusInProgress, Priority: task.PriorityUrgent, DueDate: "2024-01-12", CreatedAt: ts("2024-01-09T08:00:00Z"), AssigneeID: strPtr("emp-2")},
		task.Task{ID: 3, SpaceID: handlerTestSpace, Title: "Docs", Status: task.StatusDone, Priority: task.PriorityLow, DueDate: "2024-01-10", AssigneeID: strPtr("emp-1"), CompletedAt: ts("2024-01-09T12:00:00Z")},
		task.Task{ID: 4, SpaceID: handlerTestSpace, Title: "Backlog", Status: task.StatusTodo, Priority: task.PriorityMedium},
	)

	jwtSvc, err := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp, false)
	require.NoError(t, err)

	clk := clock.Fixed(handlerTestNow)
	authSvc := authService.NewAuthService(memory.NewTransactor(), users, employees, jwtSvc, memory.NewRefreshTokenRepository())

	handlers := Handlers{
		Auth:      NewAuthHandler(jwtSvc, authSvc, google, handlerTestFrontend),
		Employee:  NewEmployeeHandler(employeeService.NewEmployeeService(employees)),
		Task:      NewTaskHandler(taskService.NewTaskService(tasks, employees, clk)),
		Calendar:  NewCalendarHandler(calendarService.NewCalendarService(tasks, clk, "sunday")),
		Timeline:  NewTimelineHandler(timelineService.NewTimelineService(tasks, employees, clk)),
		Dashboard: NewDashboardHandler(dashboardService.NewDashboardService(tasks, employees, clk)),
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	access, _, err := jwtSvc.GenerateAccessToken(andi.ID, andi.Email, strPtr("emp-1"))
	require.NoError(t, err)

	return testServer{
		handler:     NewRouter(logger, []string{handlerTestFrontend}, jwtSvc, handlers),
		jwt:         jwtSvc,
		accessToken: access,
	}
}

// do sends a request, authenticated unless token is empty.
func (s testServer) do(t *testing.T, method, path string, body interface{}, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
