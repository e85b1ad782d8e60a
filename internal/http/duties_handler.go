package httpapi

import (
	"net/http"

	"dormportal/internal/service"
)

type dutyCreateBody struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
	Zone   string `json:"zone"`
}

type dutyUpdateBody struct {
	DutyID string `json:"dutyId"`
	Status string `json:"status"`
}

func (a *API) handleDuties(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		duties, err := a.duties.ListDuties(r.Context())
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"duties": duties})

	case http.MethodPost:
		var body dutyCreateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		duty, err := a.duties.CreateDuty(r.Context(), service.CreateDutyRequest{
			UserID: body.UserID,
			Date:   body.Date,
			Zone:   body.Zone,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"duty": duty})

	case http.MethodPut:
		var body dutyUpdateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		duty, err := a.duties.UpdateDutyStatus(r.Context(), service.UpdateDutyStatusRequest{
			DutyID: body.DutyID,
			Status: body.Status,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"duty": duty})

	default:
		a.methodNotAllowed(w)
	}
}
