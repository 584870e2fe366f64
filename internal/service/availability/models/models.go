package models

import (
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// Request models

// CreateAvailabilityRequest creates a weekly working window for a trainer
type CreateAvailabilityRequest struct {
	TrainerID int64            `json:"trainerId"`
	DayOfWeek int              `json:"dayOfWeek"` // 0 = Monday .. 6 = Sunday
	StartTime types.TimeString `json:"startTime"` // "09:00"
	EndTime   types.TimeString `json:"endTime"`   // "17:00"
}

// UpdateAvailabilityRequest replaces the fields of a window
type UpdateAvailabilityRequest struct {
	TrainerID int64            `json:"trainerId"`
	DayOfWeek int              `json:"dayOfWeek"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Response models

// AvailabilityResponse availability window data returned to clients
type AvailabilityResponse struct {
	ID        int64            `json:"id"`
	TrainerID int64            `json:"trainerId"`
	DayOfWeek int              `json:"dayOfWeek"`
	DayName   string           `json:"dayName"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// AvailabilityListResponse list of availability windows
type AvailabilityListResponse struct {
	Availabilities []*AvailabilityResponse `json:"availabilities"`
	Total          int                     `json:"total"`
}

// FromDomainAvailability converts a domain window into a response
func FromDomainAvailability(a *domain.TrainerAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:        a.ID,
		TrainerID: a.TrainerID,
		DayOfWeek: a.DayOfWeek,
		DayName:   domain.DayName(a.DayOfWeek),
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAvailabilityList converts a slice of domain windows
func FromDomainAvailabilityList(items []*domain.TrainerAvailability) *AvailabilityListResponse {
	resp := &AvailabilityListResponse{
		Availabilities: make([]*AvailabilityResponse, 0, len(items)),
		Total:          len(items),
	}
	for _, a := range items {
		resp.Availabilities = append(resp.Availabilities, FromDomainAvailability(a))
	}
	return resp
}
