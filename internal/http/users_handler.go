package httpapi

import (
	"net/http"

	"dormportal/internal/domain"
	"dormportal/internal/service"
)

type userActionBody struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Room     string `json:"room"`
	Group    string `json:"group"`
}

type userUpdateBody struct {
	UserID    string    `json:"userId"`
	Name      *string   `json:"name"`
	Room      *string   `json:"room"`
	Group     *string   `json:"group"`
	Role      *string   `json:"role"`
	Positions *[]string `json:"positions"`
}

func (a *API) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		users, err := a.users.ListUsers(r.Context())
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"users": users})

	case http.MethodPost:
		var body userActionBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		switch body.Action {
		case "login":
			user, token, err := a.users.Login(r.Context(), service.LoginRequest{
				Email:    body.Email,
				Password: body.Password,
			})
			if err != nil {
				a.writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"user": user, "token": token})
		case "register":
			user, err := a.users.Register(r.Context(), service.RegisterRequest{
				Email:    body.Email,
				Password: body.Password,
				Name:     body.Name,
				Room:     body.Room,
				Group:    body.Group,
			})
			if err != nil {
				a.writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, map[string]any{"user": user})
		default:
			writeError(w, http.StatusBadRequest, "Invalid action")
		}

	case http.MethodPut:
		var body userUpdateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		user, err := a.users.UpdateUser(r.Context(), service.UpdateUserRequest{
			UserID:    body.UserID,
			Name:      body.Name,
			Room:      body.Room,
			Group:     body.Group,
			Role:      body.Role,
			Positions: body.Positions,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": user})

	case http.MethodDelete:
		if err := a.users.DeleteUser(r.Context(), r.URL.Query().Get("userId")); err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		a.methodNotAllowed(w)
	}
}

// handleCurrentUser resolves the session token from X-Auth-Token and
// returns the authenticated user.
func (a *API) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.methodNotAllowed(w)
		return
	}
	token := r.Header.Get("X-Auth-Token")
	if token == "" {
		a.writeServiceError(w, domain.Unauthorized("Authentication required"))
		return
	}
	userID, err := a.sessions.Resolve(r.Context(), token)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	user, err := a.users.GetUser(r.Context(), userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
