package get_available_trainers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/api/handlers"
	"github.com/sportclub/SC-AppointmentService/internal/domain"
	findAvailableTrainers "github.com/sportclub/SC-AppointmentService/internal/usecase/find_available_trainers"
	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

const (
	msgInvalidServiceID = "invalid serviceId"
	msgInvalidDate      = "date format should be YYYY-MM-DD (example: 2025-10-15)"
	msgInvalidTime      = "time format should be HH:mm (example: 09:30)"
	msgServiceNotFound  = "Service not found."
	msgInvalidInterval  = "invalid time interval"
	msgInvalidInput     = "invalid request data"
)

type Handler struct {
	useCase FindAvailableTrainersUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableTrainersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/available?serviceId=&date=&time=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /trainers/available - Invalid serviceId: %q", query.Get("serviceId"))
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /trainers/available - Invalid date: %q", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /trainers/available - Invalid time: %q", query.Get("time"))
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &findAvailableTrainers.Request{
		ServiceID: serviceID,
		Date:      date,
		StartTime: startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, findAvailableTrainers.ErrServiceNotFound):
			h.logger.Warn("GET /trainers/available - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, findAvailableTrainers.ErrInvalidInterval):
			h.logger.Warn("GET /trainers/available - Invalid interval: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, findAvailableTrainers.ErrInvalidInput):
			h.logger.Warn("GET /trainers/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /trainers/available - Failed to find trainers: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/available - Found %d trainers: service_id=%d", len(result.Trainers), serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
