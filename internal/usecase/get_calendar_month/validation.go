package get_calendar_month

import (
	"fmt"

	"github.com/m04kA/SMC-RentalCalendar/internal/calendar"
	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// parsedRequest разобранные входные данные
type parsedRequest struct {
	mode      domain.SelectionMode
	month     calendardate.Date // нулевое значение: не задан
	hovered   *calendardate.Date
	selection calendar.Selection
}

func parseRequest(req *Request) (*parsedRequest, error) {
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

	parsed := &parsedRequest{mode: mode}

	if req.Month != "" {
		month, err := calendardate.ParseMonth(req.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: month: %v", ErrInvalidInput, err)
		}
		parsed.month = month
	}

	if req.Hovered != "" {
		hovered, err := calendardate.Parse(req.Hovered)
		if err != nil {
			return nil, fmt.Errorf("%w: hovered: %v", ErrInvalidInput, err)
		}
		parsed.hovered = &hovered
	}

	sel, err := calendar.SelectionFromInputs(mode, req.SelectedDate, req.RangeStart, req.RangeEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	parsed.selection = sel

	return parsed, nil
}
