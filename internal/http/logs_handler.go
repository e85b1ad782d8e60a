package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dormportal/internal/service"
)

type logCreateBody struct {
	UserID  string          `json:"userId"`
	Action  string          `json:"action"`
	Details json.RawMessage `json:"details"`
}

func (a *API) handleLogs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			limit = n
		}
		logs, err := a.logs.ListLogs(r.Context(), limit)
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"logs": logs})

	case http.MethodPost:
		var body logCreateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		entry, err := a.logs.AppendLog(r.Context(), service.AppendLogRequest{
			UserID:  body.UserID,
			Action:  body.Action,
			Details: body.Details,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"log": entry})

	case http.MethodDelete:
		deleted, err := a.logs.PurgeLogs(r.Context())
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": deleted})

	default:
		a.methodNotAllowed(w)
	}
}
