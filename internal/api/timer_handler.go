package api

import (
	"net/http"

	"github.com/cirocosta/timerclock/internal/model"
)

// CreateTimer handles POST /timers
func (h *Handler) CreateTimer(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTimerRequest
	if !decode(w, r, &req) {
		return
	}

	timer, err := h.svc.AddTimer(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "creating timer")
		return
	}

	writeJSON(w, timer, http.StatusCreated)
}

// StopTimer handles POST /timers/{id}/stop
func (h *Handler) StopTimer(w http.ResponseWriter, r *http.Request) {
	timer, err := h.svc.StopTimer(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "stopping timer")
		return
	}

	writeJSON(w, timer, http.StatusOK)
}

// ReactivateTimer handles POST /timers/{id}/reactivate
func (h *Handler) ReactivateTimer(w http.ResponseWriter, r *http.Request) {
	timer, err := h.svc.ReactivateTimer(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "reactivating timer")
		return
	}

	writeJSON(w, timer, http.StatusOK)
}

// DeleteTimer handles DELETE /timers/{id}
func (h *Handler) DeleteTimer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTimer(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, "deleting timer")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateAlarm handles POST /alarms
func (h *Handler) CreateAlarm(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAlarmRequest
	if !decode(w, r, &req) {
		return
	}

	alarm, err := h.svc.AddAlarm(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "creating alarm")
		return
	}

	writeJSON(w, alarm, http.StatusCreated)
}

// ReactivateAlarm handles POST /alarms/{id}/reactivate
func (h *Handler) ReactivateAlarm(w http.ResponseWriter, r *http.Request) {
	alarm, err := h.svc.ReactivateAlarm(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "reactivating alarm")
		return
	}

	writeJSON(w, alarm, http.StatusOK)
}

// DeleteAlarm handles DELETE /alarms/{id}
func (h *Handler) DeleteAlarm(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAlarm(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, "deleting alarm")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCountdown handles POST /countdowns
func (h *Handler) CreateCountdown(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCountdownRequest
	if !decode(w, r, &req) {
		return
	}

	cd, err := h.svc.AddCountdown(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "creating countdown")
		return
	}

	writeJSON(w, cd, http.StatusCreated)
}

// DeleteCountdown handles DELETE /countdowns/{id}
func (h *Handler) DeleteCountdown(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCountdown(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, "deleting countdown")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
