package httpapi

import (
	"net/http"

	"dormportal/internal/service"
)

type workShiftCreateBody struct {
	UserID     string `json:"userId"`
	Days       int    `json:"days"`
	AssignedBy string `json:"assignedBy"`
	Reason     string `json:"reason"`
}

type workShiftActionBody struct {
	Action         string `json:"action"`
	ShiftID        string `json:"shiftId"`
	DaysToComplete int    `json:"daysToComplete"`
	CompletedBy    string `json:"completedBy"`
}

func (a *API) handleWorkShifts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Get("archived") == "true" {
			archived, err := a.shifts.ListArchivedWorkShifts(r.Context())
			if err != nil {
				a.writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"archivedShifts": archived})
			return
		}
		shifts, err := a.shifts.ListWorkShifts(r.Context(), r.URL.Query().Get("userId"))
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"workShifts": shifts})

	case http.MethodPost:
		var body workShiftCreateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		shift, err := a.shifts.CreateWorkShift(r.Context(), service.CreateWorkShiftRequest{
			UserID:     body.UserID,
			Days:       body.Days,
			AssignedBy: body.AssignedBy,
			Reason:     body.Reason,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"workShift": shift})

	case http.MethodPut:
		var body workShiftActionBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		switch body.Action {
		case "complete":
			shift, err := a.shifts.CompleteWorkShift(r.Context(), service.CompleteWorkShiftRequest{
				ShiftID:        body.ShiftID,
				DaysToComplete: body.DaysToComplete,
				CompletedBy:    body.CompletedBy,
			})
			if err != nil {
				a.writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"workShift": shift})
		case "archive":
			if err := a.shifts.ArchiveWorkShift(r.Context(), body.ShiftID); err != nil {
				a.writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
		default:
			writeError(w, http.StatusBadRequest, "Invalid action")
		}

	default:
		a.methodNotAllowed(w)
	}
}
