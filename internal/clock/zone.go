package clock

import (
	"fmt"
	"time"
	_ "time/tzdata" // zones must resolve on hosts without a zoneinfo database
)

// Zone is a named IANA location offered for the world clock
type Zone struct {
	Label string `json:"label"`
	Name  string `json:"name"`
}

// CommonZones are the locations offered by default
var CommonZones = []Zone{
	{Label: "UTC", Name: "UTC"},
	{Label: "London", Name: "Europe/London"},
	{Label: "New York", Name: "America/New_York"},
	{Label: "Los Angeles", Name: "America/Los_Angeles"},
	{Label: "Tokyo", Name: "Asia/Tokyo"},
	{Label: "Sydney", Name: "Australia/Sydney"},
	{Label: "Paris", Name: "Europe/Paris"},
	{Label: "Berlin", Name: "Europe/Berlin"},
	{Label: "Moscow", Name: "Europe/Moscow"},
	{Label: "Beijing", Name: "Asia/Shanghai"},
	{Label: "Singapore", Name: "Asia/Singapore"},
	{Label: "Dubai", Name: "Asia/Dubai"},
	{Label: "Mumbai", Name: "Asia/Kolkata"},
}

// InZone returns now expressed in the named zone
func InZone(now time.Time, name string) (time.Time, error) {
	if name == "" {
		return time.Time{}, fmt.Errorf("zone name is required")
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("load zone %q: %w", name, err)
	}

	return now.In(loc), nil
}
