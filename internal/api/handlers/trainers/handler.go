package trainers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sportclub/SC-AppointmentService/internal/api/handlers"
	trainersService "github.com/sportclub/SC-AppointmentService/internal/service/trainers"
	"github.com/sportclub/SC-AppointmentService/internal/service/trainers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTrainerID   = "invalid trainer id"
	msgNotFound           = "trainer not found"
	msgServiceNotFound    = "Service not found."
)

// Handler serves the trainer profiles CRUD
type Handler struct {
	service TrainerService
	logger  Logger
}

func NewHandler(service TrainerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/trainers
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTrainerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trainers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, trainersService.ErrServiceNotFound):
			h.logger.Warn("POST /trainers - Assigned service not found")
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, trainersService.ErrInvalidInput):
			h.logger.Warn("POST /trainers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /trainers - Failed to create trainer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trainers - Trainer created: trainer_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/trainers/{trainerId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := h.trainerID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), trainerID)
	if err != nil {
		if errors.Is(err, trainersService.ErrTrainerNotFound) {
			h.logger.Warn("GET /trainers/{id} - Not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /trainers/{id} - Failed to get trainer: trainer_id=%d, error=%v", trainerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/trainers
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /trainers - Failed to list trainers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/trainers/{trainerId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := h.trainerID(w, r)
	if !ok {
		return
	}

	var req models.UpdateTrainerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /trainers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), trainerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, trainersService.ErrTrainerNotFound):
			h.logger.Warn("PUT /trainers/{id} - Not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, trainersService.ErrServiceNotFound):
			h.logger.Warn("PUT /trainers/{id} - Assigned service not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, trainersService.ErrInvalidInput):
			h.logger.Warn("PUT /trainers/{id} - Invalid input: trainer_id=%d: %v", trainerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /trainers/{id} - Failed to update trainer: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /trainers/{id} - Trainer updated: trainer_id=%d", trainerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/trainers/{trainerId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := h.trainerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), trainerID); err != nil {
		if errors.Is(err, trainersService.ErrTrainerNotFound) {
			h.logger.Warn("DELETE /trainers/{id} - Not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /trainers/{id} - Failed to delete trainer: trainer_id=%d, error=%v", trainerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /trainers/{id} - Trainer deleted: trainer_id=%d", trainerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) trainerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s %s - Invalid trainer ID: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return 0, false
	}
	return id, true
}
