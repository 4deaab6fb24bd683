package booking

import (
	"fmt"
	"time"
)

// Bookable hours run 08:00 to 18:00 in 15-minute steps.
const (
	firstBookable = "08:00"
	lastBookable  = "18:00"
)

// Slot is a preset time range.
type Slot string

const (
	SlotMorning   Slot = "morning"   // 08:00-12:00
	SlotAfternoon Slot = "afternoon" // 12:00-18:00
	SlotFullDay   Slot = "full-day"  // 08:00-18:00
)

// SlotTimes returns the fixed start/end pair for a preset.
func SlotTimes(slot Slot) (from, to string, ok bool) {
	switch slot {
	case SlotMorning:
		return "08:00", "12:00", true
	case SlotAfternoon:
		return "12:00", "18:00", true
	case SlotFullDay:
		return "08:00", "18:00", true
	}
	return "", "", false
}

// TimeOptions returns every selectable HH:MM value.
func TimeOptions() []string {
	options := make([]string, 0, 41)
	for hour := 8; hour <= 18; hour++ {
		for _, minute := range []int{0, 15, 30, 45} {
			if hour == 18 && minute > 0 {
				break
			}
			options = append(options, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return options
}

// EndTimeOptions returns the values selectable as an end time: everything
// strictly after the chosen start. HH:MM strings compare lexicographically.
func EndTimeOptions(from string) []string {
	if from == "" {
		return TimeOptions()
	}
	var options []string
	for _, option := range TimeOptions() {
		if option > from {
			options = append(options, option)
		}
	}
	return options
}

// StartTimeOptions returns the values selectable as a start time for date.
// On the current date, past times are excluded; once the clock is beyond the
// last bookable slot the date rolls forward to the next day and the full grid
// opens up again. The possibly-adjusted date is returned alongside.
func StartTimeOptions(date, now time.Time) ([]string, time.Time) {
	if !sameDay(date, now) {
		return TimeOptions(), date
	}

	current := clockString(now)
	if current > lastBookable {
		return TimeOptions(), date.AddDate(0, 0, 1)
	}

	var options []string
	for _, option := range TimeOptions() {
		if option >= current {
			options = append(options, option)
		}
	}
	return options, date
}

// WithSeconds widens HH:MM to the HH:MM:SS the backend expects.
func WithSeconds(hhmm string) string {
	if len(hhmm) == 5 {
		return hhmm + ":00"
	}
	return hhmm
}

// FormatDate renders a date as the backend's YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func clockString(t time.Time) string {
	return t.Format("15:04")
}
