package service

import (
	"time"

	"github.com/cirocosta/timerclock/internal/model"
	"github.com/cirocosta/timerclock/internal/repository"
)

// TimerView is the display form of a countdown timer
type TimerView struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TotalSeconds     uint32    `json:"total_seconds"`
	EndTime          time.Time `json:"end_time"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	Running          bool      `json:"running"`
}

// AlarmView is the display form of an alarm
type AlarmView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	Repeat    string    `json:"repeat"`
	AlarmTime time.Time `json:"alarm_time"`
	Active    bool      `json:"active"`
}

// CountdownView is the display form of a date countdown
type CountdownView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TargetDate string `json:"target_date"`
	Days       int    `json:"days"`
	Overdue    bool   `json:"overdue"`
}

// StopwatchView is the display form of the stopwatch
type StopwatchView struct {
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Running        bool    `json:"running"`
}

// TodoView is the display form of a todo item
type TodoView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Status      string     `json:"status"`
	Completed   bool       `json:"completed"`
}

// View is the display-ready state of every entity at one instant
type View struct {
	Now        time.Time       `json:"now"`
	Timers     []TimerView     `json:"timers"`
	Alarms     []AlarmView     `json:"alarms"`
	Countdowns []CountdownView `json:"countdowns"`
	Stopwatch  StopwatchView   `json:"stopwatch"`
	Todos      []TodoView      `json:"todos"`
}

// BuildView derives the display state of s at now without mutating it
func BuildView(s *repository.Store, now time.Time) View {
	v := View{
		Now:        now,
		Timers:     []TimerView{},
		Alarms:     []AlarmView{},
		Countdowns: []CountdownView{},
		Stopwatch:  stopwatchView(s.Stopwatch, now),
		Todos:      []TodoView{},
	}

	for _, t := range s.Timers() {
		v.Timers = append(v.Timers, timerView(t, now))
	}
	for _, a := range s.Alarms() {
		v.Alarms = append(v.Alarms, alarmView(a))
	}
	for _, c := range s.Countdowns() {
		v.Countdowns = append(v.Countdowns, countdownView(c, now))
	}
	for _, t := range s.Todos() {
		v.Todos = append(v.Todos, todoView(t, now))
	}
	return v
}

func timerView(t model.CountdownTimer, now time.Time) TimerView {
	remaining := t.Remaining(now)
	// round up so a timer shows 1s until it actually finishes
	secs := int64((remaining + time.Second - 1) / time.Second)
	return TimerView{
		ID:               t.ID,
		Name:             t.Name,
		TotalSeconds:     t.TotalSeconds,
		EndTime:          t.EndTime,
		RemainingSeconds: secs,
		Running:          t.Running,
	}
}

func alarmView(a model.Alarm) AlarmView {
	return AlarmView{
		ID:        a.ID,
		Name:      a.Name,
		Hour:      a.Hour,
		Minute:    a.Minute,
		Repeat:    a.Repeat.String(),
		AlarmTime: a.AlarmTime,
		Active:    a.Active,
	}
}

func countdownView(c model.DateCountdown, now time.Time) CountdownView {
	st := c.Status(now)
	return CountdownView{
		ID:         c.ID,
		Name:       c.Name,
		TargetDate: c.TargetDate.Format(model.DateLayout),
		Days:       st.Days,
		Overdue:    st.Overdue,
	}
}

func stopwatchView(sw model.Stopwatch, now time.Time) StopwatchView {
	return StopwatchView{ElapsedSeconds: sw.Read(now).Seconds(), Running: sw.Running()}
}

func todoView(t model.TodoItem, now time.Time) TodoView {
	return TodoView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Status:      t.Status(now).String(),
		Completed:   t.Completed,
	}
}
