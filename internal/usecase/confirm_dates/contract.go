package confirm_dates

import (
	"context"

	"github.com/m04kA/SMC-RentalCalendar/internal/integrations/rentalapi"
)

// AvailabilityClient авторитетная проверка доступности
type AvailabilityClient interface {
	CheckAvailability(ctx context.Context, vehicleID int64, pickupDate, returnDate string) (*rentalapi.Availability, error)
}

// Metrics учёт исходов проверки
type Metrics interface {
	RecordAvailabilityCheck(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
