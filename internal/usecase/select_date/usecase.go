package select_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalCalendar/internal/calendar"
	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/internal/service/blockeddates"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// UseCase применяет клик по дню к выбору пользователя
type UseCase struct {
	blocked BlockedDates
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(blocked BlockedDates, logger Logger) *UseCase {
	return &UseCase{
		blocked: blocked,
		logger:  logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDate: vehicle=%d, mode=%s, date=%s", req.VehicleID, req.Mode, req.Date)

	// 1. Валидация входных данных
	if req.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	mode := domain.DefaultSelectionMode
	if req.Mode != "" {
		mode = domain.SelectionMode(req.Mode)
		if !mode.IsValid() {
			return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
		}
	}

	clicked, err := calendardate.Parse(req.Date)
	if err != nil {
		uc.logger.Warn("SelectDate: validation failed: %v", err)
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	current, err := calendar.SelectionFromInputs(mode, req.SelectedDate, req.RangeStart, req.RangeEnd)
	if err != nil {
		uc.logger.Warn("SelectDate: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	minDate, err := uc.blocked.ResolveMinDate(req.MinDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Множество недоступных дат
	disabled, err := uc.blocked.Build(ctx, req.VehicleID, minDate)
	if err != nil {
		if errors.Is(err, blockeddates.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrBookingsUnavailable, err)
	}

	// 3. Переход автомата выбора
	next, value, ok := calendar.Click(mode, current, clicked, disabled)
	if !ok {
		uc.logger.Info("SelectDate: vehicle=%d, date %s is disabled, selection unchanged", req.VehicleID, clicked)
	}

	return &Response{
		Mode:      mode,
		Changed:   ok,
		Value:     value,
		Selection: next,
	}, nil
}
