package select_date

import (
	"context"

	"github.com/m04kA/SMC-RentalCalendar/internal/calendar"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// BlockedDates источник множества недоступных дат
type BlockedDates interface {
	ResolveMinDate(raw string) (calendardate.Date, error)
	Build(ctx context.Context, vehicleID int64, minDate calendardate.Date) (calendar.DisabledSet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
