package model

// CreateTimerRequest is used when creating a countdown timer
type CreateTimerRequest struct {
	Name    string `json:"name" doc:"Label shown when the timer fires" example:"Tea"`
	Minutes int    `json:"minutes" doc:"Whole minutes of the duration" example:"3"`
	Seconds int    `json:"seconds" doc:"Seconds added to the minutes" example:"30"`
}

// CreateAlarmRequest is used when creating an alarm
type CreateAlarmRequest struct {
	Name   string `json:"name" doc:"Label shown when the alarm fires" example:"Wake up"`
	Hour   int    `json:"hour" doc:"Hour of day, 0 to 23" example:"7"`
	Minute int    `json:"minute" doc:"Minute of hour, 0 to 59" example:"30"`
	// Repeat is one of "once", "daily" or "weekend"; empty means once
	Repeat string `json:"repeat,omitempty" doc:"Recurrence policy" enum:"once,daily,weekend"`
}

// CreateCountdownRequest is used when creating a date countdown
type CreateCountdownRequest struct {
	Name       string `json:"name" doc:"Event name" example:"Vacation"`
	TargetDate string `json:"target_date" doc:"Target calendar date, YYYY-MM-DD" example:"2027-07-01"`
}

// CreateTodoRequest is used when creating a todo item. Times are
// "YYYY-MM-DD HH:MM" or "YYYY-MM-DD HH:MM:SS" in local time; empty means
// unset.
type CreateTodoRequest struct {
	Title       string `json:"title" doc:"Title of the todo item" example:"Pay rent"`
	Description string `json:"description,omitempty" doc:"Free text details"`
	StartTime   string `json:"start_time,omitempty" doc:"Scheduled start, local time" example:"2026-10-20 09:00"`
	EndTime     string `json:"end_time,omitempty" doc:"Deadline, local time" example:"2026-10-20 17:30"`
}

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error string `json:"error" doc:"Error message" example:"timer with id 42 not found"`
}
