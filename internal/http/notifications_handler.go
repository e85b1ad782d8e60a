package httpapi

import (
	"net/http"

	"dormportal/internal/service"
)

type notificationCreateBody struct {
	UserID  string `json:"userId"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type notificationReadBody struct {
	NotificationID string `json:"notificationId"`
}

func (a *API) handleNotifications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		notifications, err := a.notifications.ListNotifications(r.Context(), r.URL.Query().Get("userId"))
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})

	case http.MethodPost:
		var body notificationCreateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		notification, err := a.notifications.CreateNotification(r.Context(), service.CreateNotificationRequest{
			UserID:  body.UserID,
			Type:    body.Type,
			Title:   body.Title,
			Message: body.Message,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"notification": notification})

	case http.MethodPut:
		var body notificationReadBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		notification, err := a.notifications.MarkNotificationRead(r.Context(), body.NotificationID)
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"notification": notification})

	default:
		a.methodNotAllowed(w)
	}
}
