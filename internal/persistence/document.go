// package persistence saves and restores the entity store as a JSON document
package persistence

// Record type tags, kept for compatibility with documents that mix records
const (
	typeTimer     = "timer"
	typeAlarm     = "alarm"
	typeCountdown = "countdown"
	typeStopwatch = "stopwatch"
	typeTodo      = "todo"
)

// Document is the persisted form of the whole entity set. Instants use
// model.DateTimeLayout and dates model.DateLayout, both in the codec's
// location. Every collection is optional on load.
type Document struct {
	Timers     []TimerRecord     `json:"timers"`
	Alarms     []AlarmRecord     `json:"alarms"`
	Countdowns []CountdownRecord `json:"countdowns"`
	Stopwatch  *StopwatchRecord  `json:"stopwatch,omitempty"`
	Todos      []TodoRecord      `json:"todos"`

	// host calendar cursor
	CurrentMonth int `json:"current_month,omitempty"`
	CurrentYear  int `json:"current_year,omitempty"`
}

// TimerRecord persists a model.CountdownTimer
type TimerRecord struct {
	Type         string `json:"type"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	TotalSeconds uint32 `json:"total_seconds"`
	EndTime      string `json:"end_time"`
	Running      bool   `json:"running"`
}

// AlarmRecord persists a model.Alarm
type AlarmRecord struct {
	Type      string `json:"type"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Repeat    string `json:"repeat"`
	AlarmTime string `json:"alarm_time"`
	Active    bool   `json:"active"`
}

// CountdownRecord persists a model.DateCountdown
type CountdownRecord struct {
	Type       string `json:"type"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	TargetDate string `json:"target_date"`
}

// StopwatchRecord persists the stopwatch as an elapsed snapshot. The
// reference start is not stored; RestoreStopwatch re-derives it on load.
type StopwatchRecord struct {
	Type        string  `json:"type"`
	ElapsedTime float64 `json:"elapsed_time"`
	Running     bool    `json:"running"`
}

// TodoRecord persists a model.TodoItem
type TodoRecord struct {
	Type          string  `json:"type"`
	ID            string  `json:"id,omitempty"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Completed     bool    `json:"completed"`
	NotifiedStart bool    `json:"notified_start"`
	NotifiedEnd   bool    `json:"notified_end"`
}
