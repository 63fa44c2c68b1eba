package select_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/handlers"
	selectDate "github.com/m04kA/SMC-RentalCalendar/internal/usecase/select_date"
)

const (
	msgInvalidVehicleID    = "некорректный ID автомобиля"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректная дата или текущий выбор"
	msgVehicleNotFound     = "автомобиль не найден"
	msgBookingsUnavailable = "список бронирований временно недоступен"
)

type Handler struct {
	useCase SelectDateUseCase
	logger  Logger
}

func NewHandler(useCase SelectDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/calendar/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("POST /vehicles/{id}/calendar/select - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{id}/calendar/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(vehicleID))
	if err != nil {
		switch {
		case errors.Is(err, selectDate.ErrInvalidInput):
			h.logger.Warn("POST /vehicles/{id}/calendar/select - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, selectDate.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, selectDate.ErrBookingsUnavailable):
			h.logger.Error("POST /vehicles/{id}/calendar/select - Bookings unavailable: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadGateway(w, msgBookingsUnavailable)

		default:
			h.logger.Error("POST /vehicles/{id}/calendar/select - Failed: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Клик по недоступному дню: 200 без изменения выбора
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
