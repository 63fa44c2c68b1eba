package confirm_dates

import (
	"context"

	confirmDates "github.com/m04kA/SMC-RentalCalendar/internal/usecase/confirm_dates"
)

type ConfirmDatesUseCase interface {
	Execute(ctx context.Context, req *confirmDates.Request) (*confirmDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
