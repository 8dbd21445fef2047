package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cirocosta/timerclock/internal/model"
)

// CreateTodo handles POST /todos
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTodoRequest
	if !decode(w, r, &req) {
		return
	}

	todo, err := h.svc.AddTodo(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "creating todo")
		return
	}

	writeJSON(w, todo, http.StatusCreated)
}

// CompleteTodo handles POST /todos/{id}/complete
func (h *Handler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := h.svc.CompleteTodo(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "completing todo")
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// ResumeTodo handles POST /todos/{id}/resume
func (h *Handler) ResumeTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := h.svc.ResumeTodo(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "resuming todo")
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// DeleteTodo handles DELETE /todos/{id}
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTodo(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, "deleting todo")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Calendar handles GET /calendar?year=&month=. Omitting either shows the
// remembered month.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	year, err := intQuery(r, "year")
	if err != nil {
		writeError(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := intQuery(r, "month")
	if err != nil {
		writeError(w, "invalid month", http.StatusBadRequest)
		return
	}

	cal, err := h.svc.Calendar(r.Context(), year, time.Month(month))
	if err != nil {
		writeServiceError(w, err, "building calendar")
		return
	}

	writeJSON(w, cal, http.StatusOK)
}

func intQuery(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
