package get_calendar_month

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalCalendar/internal/calendar"
	"github.com/m04kA/SMC-RentalCalendar/internal/service/blockeddates"
)

// UseCase строит сетку месяца календаря автомобиля
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
	uc.logger.Info("GetCalendarMonth: vehicle=%d, month=%s, mode=%s", req.VehicleID, req.Month, req.Mode)

	// 1. Валидация входных данных
	parsed, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("GetCalendarMonth: validation failed: %v", err)
		return nil, err
	}

	minDate, err := uc.blocked.ResolveMinDate(req.MinDate)
	if err != nil {
		uc.logger.Warn("GetCalendarMonth: validation failed: %v", err)
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

	// 3. Отображаемый месяц: явный, иначе месяц выбора, иначе месяц минимальной даты
	month := parsed.month
	if month.IsZero() {
		month = minDate
		if parsed.selection.Kind != calendar.KindEmpty {
			month = parsed.selection.Start
		}
	}

	view := calendar.NewView(month)
	if parsed.hovered != nil {
		view = view.Hover(*parsed.hovered)
	}

	// 4. Сетка
	grid := calendar.RenderMonth(view, disabled, parsed.selection, parsed.mode)

	return &Response{
		Mode:      parsed.mode,
		MinDate:   minDate,
		Selection: parsed.selection,
		Grid:      grid,
	}, nil
}
