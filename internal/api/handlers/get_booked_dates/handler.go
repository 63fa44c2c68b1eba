package get_booked_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-RentalCalendar/internal/service/blockeddates"
)

const (
	msgInvalidVehicleID    = "некорректный ID автомобиля"
	msgInvalidMinDate      = "некорректный формат min_date, ожидается YYYY-MM-DD"
	msgVehicleNotFound     = "автомобиль не найден"
	msgBookingsUnavailable = "список бронирований временно недоступен"
)

type Handler struct {
	blocked BlockedDates
	logger  Logger
}

func NewHandler(blocked BlockedDates, logger Logger) *Handler {
	return &Handler{
		blocked: blocked,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/booked-dates
// Query params: min_date (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/booked-dates - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	minDate, err := h.blocked.ResolveMinDate(r.URL.Query().Get("min_date"))
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/booked-dates - Invalid min_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMinDate)
		return
	}

	set, err := h.blocked.Build(r.Context(), vehicleID, minDate)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /vehicles/{id}/booked-dates - Failed to build: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadGateway(w, msgBookingsUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &BookedDatesResponse{
		MinDate: set.MinDate().Key(),
		Dates:   set.Keys(),
	})
}
