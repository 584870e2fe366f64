package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{name: "pending to approved", from: StatusPending, to: StatusApproved, want: true},
		{name: "pending to rejected", from: StatusPending, to: StatusRejected, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "approved to cancelled", from: StatusApproved, to: StatusCancelled, want: true},
		{name: "approved to rejected", from: StatusApproved, to: StatusRejected, want: false},
		{name: "approved to pending", from: StatusApproved, to: StatusPending, want: false},
		{name: "rejected to approved", from: StatusRejected, to: StatusApproved, want: false},
		{name: "rejected to cancelled", from: StatusRejected, to: StatusCancelled, want: false},
		{name: "cancelled to pending", from: StatusCancelled, to: StatusPending, want: false},
		{name: "cancelled to approved", from: StatusCancelled, to: StatusApproved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusApproved}).IsActive())
	assert.False(t, (&Appointment{Status: StatusRejected}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2025, 10, 15, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{name: "partial overlap", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(10, 15), bEnd: at(10, 45), want: true},
		{name: "contained", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(10, 15), bEnd: at(10, 45), want: true},
		{name: "identical", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(10, 0), bEnd: at(10, 30), want: true},
		{name: "back to back", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(10, 30), bEnd: at(11, 0), want: false},
		{name: "disjoint", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(12, 0), bEnd: at(12, 30), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
