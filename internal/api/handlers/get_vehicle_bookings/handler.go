package get_vehicle_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/handlers"
)

const msgInvalidVehicleID = "некорректный ID автомобиля"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/bookings - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.service.ListVehicleBookings(r.Context(), vehicleID)
	if err != nil {
		h.logger.Error("GET /vehicles/{id}/bookings - Failed to list bookings: vehicle_id=%d, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles/{id}/bookings - Bookings retrieved: vehicle_id=%d, count=%d", vehicleID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
