package get_calendar_month

import (
	"context"

	getCalendarMonth "github.com/m04kA/SMC-RentalCalendar/internal/usecase/get_calendar_month"
)

type GetCalendarMonthUseCase interface {
	Execute(ctx context.Context, req *getCalendarMonth.Request) (*getCalendarMonth.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
