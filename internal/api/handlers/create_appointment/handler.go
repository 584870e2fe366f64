package create_appointment

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/api/handlers"
	"github.com/sportclub/SC-AppointmentService/internal/api/middleware"
	"github.com/sportclub/SC-AppointmentService/internal/domain"
	createAppointment "github.com/sportclub/SC-AppointmentService/internal/usecase/create_appointment"
)

// User-facing messages are Turkish, matching the member-facing frontend
const (
	msgInvalidRequestBody  = "geçersiz istek gövdesi"
	msgInvalidDate         = "tarih formatı YYYY-MM-DD olmalı (örnek: 2025-10-15)"
	msgInvalidTime         = "time format should be HH:mm (example: 09:30)"
	msgMissingUserID       = "kullanıcı kimliği eksik"
	msgServiceNotFound     = "Service not found."
	msgInvalidInterval     = "geçersiz zaman aralığı"
	msgTrainerNotAvailable = "Antrenör bu gün/saat aralığında müsait değil. (Gün: %s)"
	msgSlotConflict        = "Bu antrenör için seçilen saatte randevu var. Lütfen başka saat seç."
	msgInvalidInput        = "geçersiz istek verisi"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if _, dateErr := time.Parse(domain.DateFormat, req.Date); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var notAvailable *createAppointment.NotAvailableError
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInterval):
			h.logger.Warn("POST /appointments - Invalid interval: user_id=%d, trainer_id=%d", userID, req.TrainerID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.As(err, &notAvailable):
			h.logger.Warn("POST /appointments - Trainer not available: trainer_id=%d, day=%s",
				req.TrainerID, notAvailable.DayName)
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(msgTrainerNotAvailable, notAvailable.DayName))

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: trainer_id=%d, user_id=%d", req.TrainerID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, trainer_id=%d, error=%v",
				userID, req.TrainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, user_id=%d, trainer_id=%d",
		result.ID, userID, req.TrainerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
