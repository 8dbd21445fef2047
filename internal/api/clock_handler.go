package api

import (
	"net/http"

	"github.com/cirocosta/timerclock/internal/clock"
	"github.com/cirocosta/timerclock/internal/model"
)

// EventsResponse lists recently fired events, oldest first
type EventsResponse struct {
	Events []model.Event `json:"events"`
}

// ZonesResponse lists the zones offered by the world clock
type ZonesResponse struct {
	Zones []clock.Zone `json:"zones"`
}

// State handles GET /state
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.State(r.Context()), http.StatusOK)
}

// Events handles GET /events
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	events := h.svc.RecentEvents(r.Context())
	if events == nil {
		events = []model.Event{}
	}

	writeJSON(w, EventsResponse{Events: events}, http.StatusOK)
}

// StartStopwatch handles POST /stopwatch/start
func (h *Handler) StartStopwatch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.StartStopwatch(r.Context()), http.StatusOK)
}

// PauseStopwatch handles POST /stopwatch/pause
func (h *Handler) PauseStopwatch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.PauseStopwatch(r.Context()), http.StatusOK)
}

// ResetStopwatch handles POST /stopwatch/reset
func (h *Handler) ResetStopwatch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.ResetStopwatch(r.Context()), http.StatusOK)
}

// WorldClock handles GET /clock?zone=
func (h *Handler) WorldClock(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	if zone == "" {
		zone = "UTC"
	}

	zt, err := h.svc.WorldClock(r.Context(), zone)
	if err != nil {
		writeError(w, "unknown zone "+zone, http.StatusBadRequest)
		return
	}

	writeJSON(w, zt, http.StatusOK)
}

// Zones handles GET /zones
func (h *Handler) Zones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ZonesResponse{Zones: clock.CommonZones}, http.StatusOK)
}
