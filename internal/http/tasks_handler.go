package httpapi

import (
	"net/http"

	"dormportal/internal/service"
)

type taskCreateBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
}

type taskUpdateBody struct {
	TaskID      string  `json:"taskId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssignedTo  *string `json:"assignedTo"`
	DueDate     *string `json:"dueDate"`
}

func (a *API) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		tasks, err := a.tasks.ListTasks(r.Context())
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})

	case http.MethodPost:
		var body taskCreateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		task, err := a.tasks.CreateTask(r.Context(), service.CreateTaskRequest{
			Title:       body.Title,
			Description: body.Description,
			Status:      body.Status,
			Priority:    body.Priority,
			AssignedTo:  body.AssignedTo,
			DueDate:     body.DueDate,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"task": task})

	case http.MethodPut:
		var body taskUpdateBody
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			a.invalidBody(w)
			return
		}
		task, err := a.tasks.UpdateTask(r.Context(), service.UpdateTaskRequest{
			TaskID:      body.TaskID,
			Title:       body.Title,
			Description: body.Description,
			Status:      body.Status,
			Priority:    body.Priority,
			AssignedTo:  body.AssignedTo,
			DueDate:     body.DueDate,
		})
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"task": task})

	default:
		a.methodNotAllowed(w)
	}
}
