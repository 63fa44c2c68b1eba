package blockeddates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalCalendar/internal/integrations/rentalapi"
)

// BookingsClient источник списка бронирований автомобиля
type BookingsClient interface {
	GetVehicleBookings(ctx context.Context, vehicleID int64) ([]rentalapi.Booking, error)
}

// Metrics счётчик отброшенных записей
type Metrics interface {
	RecordRejectedBookingRecords(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
