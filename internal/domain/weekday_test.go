package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayIndex(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "monday", date: time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "tuesday", date: time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "wednesday", date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), want: 2},
		{name: "thursday", date: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), want: 3},
		{name: "friday", date: time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), want: 4},
		{name: "saturday", date: time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), want: 5},
		{name: "sunday", date: time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayIndex(tt.date))
		})
	}
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Pazartesi", DayName(0))
	assert.Equal(t, "Çarşamba", DayName(2))
	assert.Equal(t, "Pazar", DayName(6))
	assert.Equal(t, "", DayName(-1))
	assert.Equal(t, "", DayName(7))
}

func TestDayNameMatchesDayIndex(t *testing.T) {
	// 2025-10-19 is a Sunday
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Pazar", DayName(DayIndex(sunday)))
}
