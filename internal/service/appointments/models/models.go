package models

import (
	"errors"
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// GetUserAppointmentsRequest lists appointments of one user
type GetUserAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ListAppointmentsRequest lists all appointments with an optional status filter
type ListAppointmentsRequest struct {
	Status *string `json:"status,omitempty"`
}

// Response models

// AppointmentResponse appointment data returned to clients
type AppointmentResponse struct {
	ID                    int64     `json:"id"`
	TrainerID             int64     `json:"trainerId"`
	ServiceID             int64     `json:"serviceId"`
	UserID                int64     `json:"userId"`
	StartAt               time.Time `json:"startAt"`
	EndAt                 time.Time `json:"endAt"`
	Status                string    `json:"status"`
	StoredPrice           float64   `json:"storedPrice"`
	StoredDurationMinutes int       `json:"storedDurationMinutes"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// AppointmentListResponse list of appointments
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// ToDomainAppointmentStatus converts a string status into the domain type
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainAppointment converts a domain appointment into a response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                    a.ID,
		TrainerID:             a.TrainerID,
		ServiceID:             a.ServiceID,
		UserID:                a.UserID,
		StartAt:               a.StartAt,
		EndAt:                 a.EndAt,
		Status:                string(a.Status),
		StoredPrice:           a.StoredPrice,
		StoredDurationMinutes: a.StoredDurationMinutes,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a slice of domain appointments
func FromDomainAppointmentList(items []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]*AppointmentResponse, 0, len(items)),
		Total:        len(items),
	}
	for _, a := range items {
		resp.Appointments = append(resp.Appointments, FromDomainAppointment(a))
	}
	return resp
}
