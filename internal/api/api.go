// package api provides the HTTP API for the clock service
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cirocosta/timerclock/internal/model"
	"github.com/cirocosta/timerclock/internal/service"
	"github.com/cirocosta/timerclock/pkg/router"
)

// ClockService defines the minimal interface needed by the API
type ClockService interface {
	State(ctx context.Context) service.View
	RecentEvents(ctx context.Context) []model.Event

	AddTimer(ctx context.Context, req model.CreateTimerRequest) (service.TimerView, error)
	StopTimer(ctx context.Context, id string) (service.TimerView, error)
	ReactivateTimer(ctx context.Context, id string) (service.TimerView, error)
	DeleteTimer(ctx context.Context, id string) error

	AddAlarm(ctx context.Context, req model.CreateAlarmRequest) (service.AlarmView, error)
	ReactivateAlarm(ctx context.Context, id string) (service.AlarmView, error)
	DeleteAlarm(ctx context.Context, id string) error

	AddCountdown(ctx context.Context, req model.CreateCountdownRequest) (service.CountdownView, error)
	DeleteCountdown(ctx context.Context, id string) error

	StartStopwatch(ctx context.Context) service.StopwatchView
	PauseStopwatch(ctx context.Context) service.StopwatchView
	ResetStopwatch(ctx context.Context) service.StopwatchView

	AddTodo(ctx context.Context, req model.CreateTodoRequest) (service.TodoView, error)
	CompleteTodo(ctx context.Context, id string) (service.TodoView, error)
	ResumeTodo(ctx context.Context, id string) (service.TodoView, error)
	DeleteTodo(ctx context.Context, id string) error

	Calendar(ctx context.Context, year int, month time.Month) (service.CalendarMonth, error)
	WorldClock(ctx context.Context, zone string) (service.ZoneTime, error)
}

var _ ClockService = (*service.Service)(nil)

// API holds the documented router and the handlers behind it
type API struct {
	router  *router.DocRouter
	handler *Handler
}

// NewRouter creates a new router with all routes configured
func NewRouter(svc ClockService) *router.DocRouter {
	r := router.NewDocRouter("timerclock API",
		"Timers, alarms, date countdowns, a stopwatch and todos driven by a shared clock",
		"1.0.0",
	)

	// outermost first
	r.Use(requestIDMiddleware, loggerMiddleware, recovererMiddleware)

	api := &API{router: r, handler: NewHandler(svc)}
	api.registerRoutes()

	return r
}

// registerRoutes configures all API routes with documentation
func (api *API) registerRoutes() {
	h := api.handler
	errSchema := model.ErrorResponse{}

	badRequest := router.Example{
		ContentType: "application/json",
		Value:       `{"error":"invalid request format"}`,
	}

	api.router.
		WithServer("http://127.0.0.1:8080", "Local daemon").
		WithTag("Core", "Health, state and the API document").
		WithTag("Timers", "Countdown timers").
		WithTag("Alarms", "Time of day alarms").
		WithTag("Countdowns", "Days until a calendar date").
		WithTag("Stopwatch", "The single stopwatch").
		WithTag("Todos", "Scheduled todo items").
		WithTag("Clock", "Calendar and world clock")

	api.router.Route("GET", "/health", healthHandler).
		WithName("Health Check").
		WithDescription("API health check endpoint").
		WithTags("Core").
		Register()

	api.router.Route("GET", "/openapi.json", api.openAPIHandler).
		WithName("OpenAPI Document").
		WithDescription("This document").
		WithTags("Core").
		Register()

	api.router.Route("GET", "/state", h.State).
		WithName("State").
		WithDescription("Every entity with its derived display values").
		WithResponse(service.View{}).
		WithTags("Core").
		Register()

	api.router.Route("GET", "/events", h.Events).
		WithName("Recent Events").
		WithDescription("Notifications produced by recent ticks, oldest first").
		WithResponse(EventsResponse{}).
		WithTags("Core").
		Register()

	// timers
	api.router.Route("POST", "/timers", h.CreateTimer).
		WithName("Create Timer").
		WithDescription("Start a countdown timer").
		WithRequest(model.CreateTimerRequest{}).
		WithResponse(service.TimerView{}).
		WithSuccessStatus("201").
		WithErrorResponse("400", "Bad Request", errSchema, badRequest).
		WithErrorResponse("422", "Unprocessable Entity", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error":"invalid duration: duration must be positive"}`,
			}).
		WithTags("Timers").
		Register()

	api.router.Route("POST", "/timers/{id}/stop", h.StopTimer).
		WithName("Stop Timer").
		WithDescription("Deactivate a running timer without firing it").
		WithResponse(service.TimerView{}).
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Timers").
		Register()

	api.router.Route("POST", "/timers/{id}/reactivate", h.ReactivateTimer).
		WithName("Reactivate Timer").
		WithDescription("Restart a timer with its original duration").
		WithResponse(service.TimerView{}).
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Timers").
		Register()

	api.router.Route("DELETE", "/timers/{id}", h.DeleteTimer).
		WithName("Delete Timer").
		WithSuccessStatus("204").
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Timers").
		Register()

	// alarms
	api.router.Route("POST", "/alarms", h.CreateAlarm).
		WithName("Create Alarm").
		WithDescription("Schedule an alarm at the next occurrence of a time of day").
		WithRequest(model.CreateAlarmRequest{}).
		WithResponse(service.AlarmView{}).
		WithSuccessStatus("201").
		WithErrorResponse("400", "Bad Request", errSchema, badRequest).
		WithErrorResponse("422", "Unprocessable Entity", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error":"invalid time of day: 24:00 is not a time of day"}`,
			}).
		WithTags("Alarms").
		Register()

	api.router.Route("POST", "/alarms/{id}/reactivate", h.ReactivateAlarm).
		WithName("Reactivate Alarm").
		WithDescription("Reschedule an alarm for the next occurrence of its time of day").
		WithResponse(service.AlarmView{}).
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Alarms").
		Register()

	api.router.Route("DELETE", "/alarms/{id}", h.DeleteAlarm).
		WithName("Delete Alarm").
		WithSuccessStatus("204").
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Alarms").
		Register()

	// countdowns
	api.router.Route("POST", "/countdowns", h.CreateCountdown).
		WithName("Create Countdown").
		WithDescription("Count the days until a calendar date").
		WithRequest(model.CreateCountdownRequest{}).
		WithResponse(service.CountdownView{}).
		WithSuccessStatus("201").
		WithErrorResponse("400", "Bad Request", errSchema, badRequest).
		WithErrorResponse("422", "Unprocessable Entity", errSchema).
		WithTags("Countdowns").
		Register()

	api.router.Route("DELETE", "/countdowns/{id}", h.DeleteCountdown).
		WithName("Delete Countdown").
		WithSuccessStatus("204").
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Countdowns").
		Register()

	// stopwatch
	api.router.Route("POST", "/stopwatch/start", h.StartStopwatch).
		WithName("Start Stopwatch").
		WithResponse(service.StopwatchView{}).
		WithTags("Stopwatch").
		Register()

	api.router.Route("POST", "/stopwatch/pause", h.PauseStopwatch).
		WithName("Pause Stopwatch").
		WithResponse(service.StopwatchView{}).
		WithTags("Stopwatch").
		Register()

	api.router.Route("POST", "/stopwatch/reset", h.ResetStopwatch).
		WithName("Reset Stopwatch").
		WithResponse(service.StopwatchView{}).
		WithTags("Stopwatch").
		Register()

	// todos
	api.router.Route("POST", "/todos", h.CreateTodo).
		WithName("Create Todo").
		WithDescription("Create a todo item with an optional schedule").
		WithRequest(model.CreateTodoRequest{}).
		WithResponse(service.TodoView{}).
		WithSuccessStatus("201").
		WithErrorResponse("400", "Bad Request", errSchema, badRequest).
		WithErrorResponse("422", "Unprocessable Entity", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error":"empty title: title is required"}`,
			}).
		WithTags("Todos").
		Register()

	api.router.Route("POST", "/todos/{id}/complete", h.CompleteTodo).
		WithName("Complete Todo").
		WithResponse(service.TodoView{}).
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Todos").
		Register()

	api.router.Route("POST", "/todos/{id}/resume", h.ResumeTodo).
		WithName("Resume Todo").
		WithResponse(service.TodoView{}).
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Todos").
		Register()

	api.router.Route("DELETE", "/todos/{id}", h.DeleteTodo).
		WithName("Delete Todo").
		WithSuccessStatus("204").
		WithErrorResponse("404", "Not Found", errSchema).
		WithTags("Todos").
		Register()

	// calendar and clocks
	api.router.Route("GET", "/calendar", h.Calendar).
		WithName("Calendar").
		WithDescription("Month grid; a missing year or month keeps the current cursor").
		WithQueryParam("year", "integer", "Four digit year").
		WithQueryParam("month", "integer", "Month, 1 to 12").
		WithResponse(service.CalendarMonth{}).
		WithErrorResponse("400", "Bad Request", errSchema).
		WithErrorResponse("422", "Unprocessable Entity", errSchema).
		WithTags("Clock").
		Register()

	api.router.Route("GET", "/clock", h.WorldClock).
		WithName("World Clock").
		WithDescription("Current time in an IANA zone").
		WithQueryParam("zone", "string", "IANA zone name, UTC when empty").
		WithResponse(service.ZoneTime{}).
		WithErrorResponse("400", "Bad Request", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error":"unknown zone Mars/Olympus"}`,
			}).
		WithTags("Clock").
		Register()

	api.router.Route("GET", "/zones", h.Zones).
		WithName("Zones").
		WithDescription("Zones offered by the world clock").
		WithResponse(ZonesResponse{}).
		WithTags("Clock").
		Register()
}

// openAPIHandler serves the document generated from the registered routes
func (api *API) openAPIHandler(w http.ResponseWriter, r *http.Request) {
	data, err := api.router.OpenAPIJSON()
	if err != nil {
		writeError(w, "error generating openapi document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// healthHandler handles the health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
