package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"dormportal/internal/auth"
	"dormportal/internal/service"
)

// API holds the service dependencies behind the HTTP surface.
type API struct {
	users         service.UserService
	announcements service.AnnouncementService
	tasks         service.TaskService
	duties        service.DutyService
	shifts        service.WorkShiftService
	notifications service.NotificationService
	logs          service.LogService
	sessions      *auth.Sessions
	logger        *zap.Logger
}

func NewAPI(
	users service.UserService,
	announcements service.AnnouncementService,
	tasks service.TaskService,
	duties service.DutyService,
	shifts service.WorkShiftService,
	notifications service.NotificationService,
	logs service.LogService,
	sessions *auth.Sessions,
	logger *zap.Logger,
) *API {
	return &API{
		users:         users,
		announcements: announcements,
		tasks:         tasks,
		duties:        duties,
		shifts:        shifts,
		notifications: notifications,
		logs:          logs,
		sessions:      sessions,
		logger:        logger,
	}
}

// Routes builds the full handler: one route per resource collection, with
// the middleware chain wrapped around the mux.
func (a *API) Routes(limiter *Limiter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", a.handleUsers)
	mux.HandleFunc("/users/me", a.handleCurrentUser)
	mux.HandleFunc("/announcements", a.handleAnnouncements)
	mux.HandleFunc("/tasks", a.handleTasks)
	mux.HandleFunc("/duty-schedule", a.handleDuties)
	mux.HandleFunc("/duty-schedule/export", a.handleDutyExport)
	mux.HandleFunc("/work-shifts", a.handleWorkShifts)
	mux.HandleFunc("/notifications", a.handleNotifications)
	mux.HandleFunc("/logs", a.handleLogs)
	mux.HandleFunc("/health", a.handleHealth)
	mux.HandleFunc("/", a.handleNotFound)
	return chain(limiter, a.logger, mux)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}
