package create_appointment

import (
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	createAppointment "github.com/sportclub/SC-AppointmentService/internal/usecase/create_appointment"
	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	TrainerID int64  `json:"trainerId"`
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"` // "2025-10-15"
	StartTime string `json:"time"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                    int64   `json:"id"`
	TrainerID             int64   `json:"trainerId"`
	ServiceID             int64   `json:"serviceId"`
	UserID                int64   `json:"userId"`
	StartAt               string  `json:"startAt"`
	EndAt                 string  `json:"endAt"`
	Status                string  `json:"status"`
	StoredPrice           float64 `json:"storedPrice"`
	StoredDurationMinutes int     `json:"storedDurationMinutes"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
}

// ToUseCaseRequest parses the date and time fields and builds the use case request
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		TrainerID: r.TrainerID,
		ServiceID: r.ServiceID,
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                    resp.ID,
		TrainerID:             resp.TrainerID,
		ServiceID:             resp.ServiceID,
		UserID:                resp.UserID,
		StartAt:               resp.StartAt.Format(time.RFC3339),
		EndAt:                 resp.EndAt.Format(time.RFC3339),
		Status:                resp.Status,
		StoredPrice:           resp.StoredPrice,
		StoredDurationMinutes: resp.StoredDurationMinutes,
		CreatedAt:             resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             resp.UpdatedAt.Format(time.RFC3339),
	}
}
