package drag

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// CellsPerTimeUnit is the pointer travel for one minute or one day.
const CellsPerTimeUnit = 1.0

// TimePrecisionSensitivity applies to time drags while the precision
// modifier is held.
const TimePrecisionSensitivity = 0.25

const minutesPerDay = 24 * 60

// TimeKind selects the value format of a time input.
type TimeKind int

const (
	KindTime     TimeKind = iota // HH:MM, one unit is a minute
	KindDate                     // YYYY-MM-DD, one unit is a day
	KindDateTime                 // YYYY-MM-DDTHH:MM, one unit is a minute
)

// Layout returns the time layout of values of this kind.
func (k TimeKind) Layout() string {
	switch k {
	case KindDate:
		return time.DateOnly
	case KindDateTime:
		return "2006-01-02T15:04"
	default:
		return "15:04"
	}
}

func (k TimeKind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	default:
		return "time"
	}
}

// ParseTimeKind parses "time", "date" or "datetime".
func ParseTimeKind(s string) (TimeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time":
		return KindTime, nil
	case "date":
		return KindDate, nil
	case "datetime", "datetime-local":
		return KindDateTime, nil
	default:
		return KindTime, fmt.Errorf("unknown time kind %q", s)
	}
}

// Format formats t as a value of this kind.
func (k TimeKind) Format(t time.Time) string {
	return t.Format(k.Layout())
}

// Valid reports whether s parses as a value of this kind.
func (k TimeKind) Valid(s string) bool {
	_, err := time.Parse(k.Layout(), s)
	return err == nil
}

// Adjust shifts s by units minutes or days, depending on the kind.
func (k TimeKind) Adjust(s string, units int) (string, error) {
	switch k {
	case KindDate:
		return AdjustDate(s, units)
	case KindDateTime:
		return AdjustDateTime(s, units)
	default:
		return AdjustClock(s, units)
	}
}

// TimeUnits converts deltaX cells of travel into whole time units.
func TimeUnits(deltaX int, precise bool) int {
	s := 1.0
	if precise {
		s = TimePrecisionSensitivity
	}
	return int(math.Round(float64(deltaX) / CellsPerTimeUnit * s))
}

// AdjustClock shifts an "HH:MM" time of day by minutes, wrapping around
// midnight in both directions.
func AdjustClock(s string, minutes int) (string, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("parse time %q: %w", s, err)
	}
	total := t.Hour()*60 + t.Minute() + minutes
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// AdjustDate shifts a "YYYY-MM-DD" date by days.
func AdjustDate(s string, days int) (string, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.AddDate(0, 0, days).Format(time.DateOnly), nil
}

// AdjustDateTime shifts a "YYYY-MM-DDTHH:MM" timestamp by minutes.
func AdjustDateTime(s string, minutes int) (string, error) {
	layout := KindDateTime.Layout()
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("parse datetime %q: %w", s, err)
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format(layout), nil
}
