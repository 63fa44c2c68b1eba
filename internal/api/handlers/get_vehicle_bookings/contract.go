package get_vehicle_bookings

import (
	"context"

	"github.com/m04kA/SMC-RentalCalendar/internal/service/bookings/models"
)

type BookingService interface {
	ListVehicleBookings(ctx context.Context, vehicleID int64) ([]models.VehicleBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
