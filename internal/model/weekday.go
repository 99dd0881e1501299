package model

import (
	"errors"
	"fmt"
)

// ErrUnknownWeekday is returned for day names outside the seven weekdays
var ErrUnknownWeekday = errors.New("unknown weekday")

// Weekday is a day slot of the weekly meal plan
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays returns the seven days in week order
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// String returns the string representation of Weekday
func (d Weekday) String() string {
	return string(d)
}

// Short returns the three-letter abbreviation ("Mon")
func (d Weekday) Short() string {
	if len(d) < 3 {
		return string(d)
	}
	return string(d[:3])
}

// IsValid returns true if d is one of the seven weekdays
func (d Weekday) IsValid() bool {
	for _, day := range Weekdays() {
		if d == day {
			return true
		}
	}
	return false
}

// ParseWeekday converts a full day name into a Weekday
func ParseWeekday(name string) (Weekday, error) {
	day := Weekday(name)
	if !day.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
	}
	return day, nil
}
