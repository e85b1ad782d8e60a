package httpapi

import (
	"net/http"

	"dormportal/internal/service"
)

type announcementCreateBody struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"authorId"`
}

func (a *API) handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		announcements, err := a.announcements.ListAnnouncements(r.Context())
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"announcements": announcements})

	case http.MethodPost:
		var body announcementCreateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		announcement, err := a.announcements.CreateAnnouncement(r.Context(), service.CreateAnnouncementRequest{
			Title:    body.Title,
			Content:  body.Content,
			AuthorID: body.AuthorID,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"announcement": announcement})

	default:
		a.methodNotAllowed(w)
	}
}
