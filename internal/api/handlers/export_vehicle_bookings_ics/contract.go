package export_vehicle_bookings_ics

import "context"

type BookingService interface {
	ExportICS(ctx context.Context, vehicleID int64) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
