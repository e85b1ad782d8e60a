package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dormportal/internal/auth"
	httpapi "dormportal/internal/http"
	"dormportal/internal/repository"
	"dormportal/internal/service"
	"dormportal/internal/store"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	usersRepo := repository.NewMemoryUsersRepository()
	sessions := auth.NewSessions(store.NewMemoryKV(), time.Hour)

	api := httpapi.NewAPI(
		service.NewUserService(usersRepo, sessions, logger),
		service.NewAnnouncementService(repository.NewMemoryAnnouncementsRepository(), usersRepo, logger),
		service.NewTaskService(repository.NewMemoryTasksRepository(), usersRepo, logger),
		service.NewDutyService(repository.NewMemoryDutiesRepository(), usersRepo, logger),
		service.NewWorkShiftService(repository.NewMemoryWorkShiftsRepository(), usersRepo, logger),
		service.NewNotificationService(repository.NewMemoryNotificationsRepository(), usersRepo, logger),
		service.NewLogService(repository.NewMemoryLogsRepository(), usersRepo, logger),
		sessions,
		logger,
	)
	return api.Routes(httpapi.NewLimiter(1000, time.Minute))
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerViaAPI(t *testing.T, h http.Handler, email, name string) map[string]any {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/users", map[string]any{
		"action":   "register",
		"email":    email,
		"password": "secret1",
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	user, ok := decodeBody(t, rec)["user"].(map[string]any)
	require.True(t, ok)
	return user
}

func TestRegisterEndpoint(t *testing.T) {
	h := newTestHandler(t)

	user := registerViaAPI(t, h, "anna@dorm.example", "Anna")
	require.Equal(t, "anna@dorm.example", user["email"])
	require.Equal(t, "member", user["role"])
	require.NotEmpty(t, user["id"])
	// The digest never appears in responses.
	require.NotContains(t, user, "passwordDigest")
	require.NotContains(t, user, "password_digest")
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	h := newTestHandler(t)
	registerViaAPI(t, h, "anna@dorm.example", "Anna")

	rec := doJSON(t, h, http.MethodPost, "/users", map[string]any{
		"action":   "register",
		"email":    "anna@dorm.example",
		"password": "secret1",
		"name":     "Other",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email already exists", decodeBody(t, rec)["error"])
}

func TestLoginEndpoint(t *testing.T) {
	h := newTestHandler(t)
	registerViaAPI(t, h, "anna@dorm.example", "Anna")

	rec := doJSON(t, h, http.MethodPost, "/users", map[string]any{
		"action":   "login",
		"email":    "anna@dorm.example",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.NotEmpty(t, body["token"])
	require.NotNil(t, body["user"])
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	h := newTestHandler(t)
	registerViaAPI(t, h, "anna@dorm.example", "Anna")

	rec := doJSON(t, h, http.MethodPost, "/users", map[string]any{
		"action":   "login",
		"email":    "anna@dorm.example",
		"password": "wrong-pass",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", decodeBody(t, rec)["error"])
}

func TestCurrentUserEndpoint(t *testing.T) {
	h := newTestHandler(t)
	registerViaAPI(t, h, "anna@dorm.example", "Anna")

	rec := doJSON(t, h, http.MethodPost, "/users", map[string]any{
		"action":   "login",
		"email":    "anna@dorm.example",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody(t, rec)["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("X-Auth-Token", token)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	user := decodeBody(t, rec2)["user"].(map[string]any)
	require.Equal(t, "anna@dorm.example", user["email"])
}

func TestCurrentUserEndpoint_MissingToken(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Authentication required", decodeBody(t, rec)["error"])
}

func TestDeleteUserEndpoint(t *testing.T) {
	h := newTestHandler(t)
	user := registerViaAPI(t, h, "anna@dorm.example", "Anna")

	rec := doJSON(t, h, http.MethodDelete, "/users?userId="+user["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["success"])
}

func TestInvalidJSONBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid JSON in request body", decodeBody(t, rec)["error"])
}

func TestUnknownEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Endpoint not found", decodeBody(t, rec)["error"])
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodDelete, "/announcements", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "Method not allowed", decodeBody(t, rec)["error"])
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, "Content-Type, X-User-Id, X-Auth-Token", rec.Header().Get("Access-Control-Allow-Headers"))
	require.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}

func TestSecurityHeadersOnEveryResponse(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/nope", nil)
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitExceeded(t *testing.T) {
	logger := zap.NewNop()
	usersRepo := repository.NewMemoryUsersRepository()
	sessions := auth.NewSessions(store.NewMemoryKV(), time.Hour)
	api := httpapi.NewAPI(
		service.NewUserService(usersRepo, sessions, logger),
		service.NewAnnouncementService(repository.NewMemoryAnnouncementsRepository(), usersRepo, logger),
		service.NewTaskService(repository.NewMemoryTasksRepository(), usersRepo, logger),
		service.NewDutyService(repository.NewMemoryDutiesRepository(), usersRepo, logger),
		service.NewWorkShiftService(repository.NewMemoryWorkShiftsRepository(), usersRepo, logger),
		service.NewNotificationService(repository.NewMemoryNotificationsRepository(), usersRepo, logger),
		service.NewLogService(repository.NewMemoryLogsRepository(), usersRepo, logger),
		sessions,
		logger,
	)
	h := api.Routes(httpapi.NewLimiter(2, time.Minute))

	for i := 0; i < 2; i++ {
		rec := doJSON(t, h, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "Rate limit exceeded", decodeBody(t, rec)["error"])
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	h := newTestHandler(t)
	user := registerViaAPI(t, h, "anna@dorm.example", "Anna")

	rec := doJSON(t, h, http.MethodPost, "/tasks", map[string]any{
		"title":      "Clean kitchen",
		"assignedTo": user["id"],
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeBody(t, rec)["task"].(map[string]any)
	require.Equal(t, "pending", task["status"])
	require.Equal(t, "medium", task["priority"])
	require.Equal(t, "Anna", task["assigneeName"])

	rec = doJSON(t, h, http.MethodPut, "/tasks", map[string]any{
		"taskId": task["id"],
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)["task"].(map[string]any)
	require.Equal(t, "completed", updated["status"])

	rec = doJSON(t, h, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decodeBody(t, rec)["tasks"].([]any)
	require.Len(t, tasks, 1)
}

func TestWorkShiftArchiveOverHTTP(t *testing.T) {
	h := newTestHandler(t)
	member := registerViaAPI(t, h, "anna@dorm.example", "Anna")
	manager := registerViaAPI(t, h, "boss@dorm.example", "Boss")

	rec := doJSON(t, h, http.MethodPost, "/work-shifts", map[string]any{
		"userId":     member["id"],
		"days":       2,
		"assignedBy": manager["id"],
		"reason":     "skipped duty",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	shift := decodeBody(t, rec)["workShift"].(map[string]any)

	rec = doJSON(t, h, http.MethodPut, "/work-shifts", map[string]any{
		"action":  "archive",
		"shiftId": shift["id"],
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["success"])

	rec = doJSON(t, h, http.MethodGet, "/work-shifts?archived=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	archived := decodeBody(t, rec)["archivedShifts"].([]any)
	require.Len(t, archived, 1)

	rec = doJSON(t, h, http.MethodGet, "/work-shifts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["workShifts"])
}

func TestDutyExportEndpoint(t *testing.T) {
	h := newTestHandler(t)
	user := registerViaAPI(t, h, "anna@dorm.example", "Anna")

	rec := doJSON(t, h, http.MethodPost, "/duty-schedule", map[string]any{
		"userId": user["id"],
		"date":   "2026-09-01",
		"zone":   "kitchen",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/duty-schedule/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "duty-schedule-")
	// xlsx files are zip archives.
	require.Equal(t, []byte("PK"), rec.Body.Bytes()[:2])
}

func TestLogsPurgeEndpoint(t *testing.T) {
	h := newTestHandler(t)
	user := registerViaAPI(t, h, "anna@dorm.example", "Anna")

	rec := doJSON(t, h, http.MethodPost, "/logs", map[string]any{
		"userId": user["id"],
		"action": "user.login",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(1), body["deleted"])

	rec = doJSON(t, h, http.MethodGet, "/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["logs"])
}
