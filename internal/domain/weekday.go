package domain

import "time"

// DayNames are the Turkish day names shown in user-facing messages,
// indexed by the Monday-origin day index (0=Pazartesi … 6=Pazar)
var DayNames = [7]string{
	"Pazartesi",
	"Salı",
	"Çarşamba",
	"Perşembe",
	"Cuma",
	"Cumartesi",
	"Pazar",
}

// DayIndex converts a calendar date's weekday into the Monday-origin
// index used by availability windows: Monday=0 … Sunday=6.
// Go's time.Weekday starts at Sunday=0, hence the +6 shift.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayName returns the Turkish name for a Monday-origin day index
func DayName(dayIndex int) string {
	if dayIndex < 0 || dayIndex > 6 {
		return ""
	}
	return DayNames[dayIndex]
}
