package export_vehicle_bookings_ics

import (
	"fmt"
	"io"
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

// Handle GET /api/v1/vehicles/{vehicleId}/bookings.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/bookings.ics - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	body, err := h.service.ExportICS(r.Context(), vehicleID)
	if err != nil {
		h.logger.Error("GET /vehicles/{id}/bookings.ics - Failed to export: vehicle_id=%d, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="vehicle-%d.ics"`, vehicleID))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)

	h.logger.Info("GET /vehicles/{id}/bookings.ics - Exported: vehicle_id=%d", vehicleID)
}
