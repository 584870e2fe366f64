package models

import (
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
)

// Request models

// CreateTrainerRequest creates a new trainer profile
type CreateTrainerRequest struct {
	FullName   string  `json:"fullName"`
	Bio        *string `json:"bio,omitempty"`
	ServiceIDs []int64 `json:"serviceIds"`
}

// UpdateTrainerRequest replaces the editable fields of a trainer
type UpdateTrainerRequest struct {
	FullName   string  `json:"fullName"`
	Bio        *string `json:"bio,omitempty"`
	ServiceIDs []int64 `json:"serviceIds"`
}

// Response models

// TrainerResponse trainer data returned to clients
type TrainerResponse struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"fullName"`
	Bio        *string   `json:"bio,omitempty"`
	ServiceIDs []int64   `json:"serviceIds"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TrainerListResponse list of trainers
type TrainerListResponse struct {
	Trainers []*TrainerResponse `json:"trainers"`
	Total    int                `json:"total"`
}

// FromDomainTrainer converts a domain trainer into a response
func FromDomainTrainer(t *domain.Trainer, serviceIDs []int64) *TrainerResponse {
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}
	return &TrainerResponse{
		ID:         t.ID,
		FullName:   t.FullName,
		Bio:        t.Bio,
		ServiceIDs: serviceIDs,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
