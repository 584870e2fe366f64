package availabilities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sportclub/SC-AppointmentService/internal/api/handlers"
	availabilityService "github.com/sportclub/SC-AppointmentService/internal/service/availability"
	"github.com/sportclub/SC-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidAvailabilityID = "invalid availability id"
	msgNotFound              = "availability not found"
	msgTrainerNotFound       = "trainer not found"
	msgInvalidTimeRange      = "endTime must be after startTime"
)

// Handler serves the weekly availability windows CRUD
type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/availabilities
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availabilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrTrainerNotFound):
			h.logger.Warn("POST /availabilities - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, availabilityService.ErrInvalidTimeRange):
			h.logger.Warn("POST /availabilities - Invalid time range: trainer_id=%d", req.TrainerID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("POST /availabilities - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /availabilities - Failed to create availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availabilities - Availability created: availability_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/availabilities/{availabilityId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	availabilityID, ok := h.availabilityID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), availabilityID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrAvailabilityNotFound) {
			h.logger.Warn("GET /availabilities/{id} - Not found: availability_id=%d", availabilityID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /availabilities/{id} - Failed to get availability: availability_id=%d, error=%v",
			availabilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/availabilities
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /availabilities - Failed to list availabilities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/availabilities/{availabilityId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	availabilityID, ok := h.availabilityID(w, r)
	if !ok {
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availabilities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), availabilityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrAvailabilityNotFound):
			h.logger.Warn("PUT /availabilities/{id} - Not found: availability_id=%d", availabilityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availabilityService.ErrTrainerNotFound):
			h.logger.Warn("PUT /availabilities/{id} - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, availabilityService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /availabilities/{id} - Invalid time range: availability_id=%d", availabilityID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /availabilities/{id} - Invalid input: availability_id=%d: %v", availabilityID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /availabilities/{id} - Failed to update availability: availability_id=%d, error=%v",
				availabilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availabilities/{id} - Availability updated: availability_id=%d", availabilityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/availabilities/{availabilityId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	availabilityID, ok := h.availabilityID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), availabilityID); err != nil {
		if errors.Is(err, availabilityService.ErrAvailabilityNotFound) {
			h.logger.Warn("DELETE /availabilities/{id} - Not found: availability_id=%d", availabilityID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /availabilities/{id} - Failed to delete availability: availability_id=%d, error=%v",
			availabilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /availabilities/{id} - Availability deleted: availability_id=%d", availabilityID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) availabilityID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["availabilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s %s - Invalid availability ID: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidAvailabilityID)
		return 0, false
	}
	return id, true
}
