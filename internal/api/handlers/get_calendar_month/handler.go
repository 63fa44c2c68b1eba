package get_calendar_month

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/handlers"
	getCalendarMonth "github.com/m04kA/SMC-RentalCalendar/internal/usecase/get_calendar_month"
)

const (
	msgInvalidVehicleID    = "некорректный ID автомобиля"
	msgInvalidInput        = "некорректные параметры календаря"
	msgVehicleNotFound     = "автомобиль не найден"
	msgBookingsUnavailable = "список бронирований временно недоступен"
)

type Handler struct {
	useCase GetCalendarMonthUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarMonthUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/calendar
// Query params: month, mode, selected_date, range_start, range_end, hovered, min_date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/calendar - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	q := r.URL.Query()
	result, err := h.useCase.Execute(r.Context(), &getCalendarMonth.Request{
		VehicleID:    vehicleID,
		Month:        q.Get("month"),
		Mode:         q.Get("mode"),
		SelectedDate: q.Get("selected_date"),
		RangeStart:   q.Get("range_start"),
		RangeEnd:     q.Get("range_end"),
		Hovered:      q.Get("hovered"),
		MinDate:      q.Get("min_date"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendarMonth.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getCalendarMonth.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, getCalendarMonth.ErrBookingsUnavailable):
			h.logger.Error("GET /vehicles/{id}/calendar - Bookings unavailable: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadGateway(w, msgBookingsUnavailable)

		default:
			h.logger.Error("GET /vehicles/{id}/calendar - Failed: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
