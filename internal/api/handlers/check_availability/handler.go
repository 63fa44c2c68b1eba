package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-RentalCalendar/internal/usecase/check_availability"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgMissingDates     = "параметры pickup_date и return_date обязательны"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата возврата раньше даты получения"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/availability
// Query params: pickup_date, return_date (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	query := r.URL.Query()
	pickup, ret := query.Get("pickup_date"), query.Get("return_date")
	if pickup == "" || ret == "" {
		h.logger.Warn("GET /vehicles/{id}/availability - Missing dates: vehicle_id=%d", vehicleID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		VehicleID:  vehicleID,
		PickupDate: pickup,
		ReturnDate: ret,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/availability - Invalid input: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /vehicles/{id}/availability - Failed to check: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/availability - vehicle_id=%d, %s..%s, available=%t",
		vehicleID, pickup, ret, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
