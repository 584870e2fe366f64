package models

import (
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
)

// Request models

// CreateServiceRequest creates a new training service
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// UpdateServiceRequest replaces the editable fields of a service
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// Response models

// ServiceResponse service data returned to clients
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse list of services
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// FromDomainService converts a domain service into a response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList converts a slice of domain services
func FromDomainServiceList(items []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]*ServiceResponse, 0, len(items)),
		Total:    len(items),
	}
	for _, s := range items {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}
