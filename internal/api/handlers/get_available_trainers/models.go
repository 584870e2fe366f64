package get_available_trainers

import (
	findAvailableTrainers "github.com/sportclub/SC-AppointmentService/internal/usecase/find_available_trainers"
)

// TrainerResponse one bookable trainer
type TrainerResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *findAvailableTrainers.Response) []TrainerResponse {
	out := make([]TrainerResponse, 0, len(resp.Trainers))
	for _, t := range resp.Trainers {
		out = append(out, TrainerResponse{ID: t.ID, FullName: t.FullName})
	}
	return out
}
