package confirm_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/handlers"
	confirmDates "github.com/m04kA/SMC-RentalCalendar/internal/usecase/confirm_dates"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase ConfirmDatesUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/confirm-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("POST /vehicles/{id}/confirm-dates - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req ConfirmDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{id}/confirm-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmDates.Request{
		VehicleID:  vehicleID,
		PickupDate: req.PickupDate,
		ReturnDate: req.ReturnDate,
	})
	if err != nil {
		if errors.Is(err, confirmDates.ErrInvalidInput) {
			h.logger.Warn("POST /vehicles/{id}/confirm-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("POST /vehicles/{id}/confirm-dates - Failed: vehicle_id=%d, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /vehicles/{id}/confirm-dates - vehicle_id=%d, proceed=%t, degraded=%t",
		vehicleID, result.Proceed, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
