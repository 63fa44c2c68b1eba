package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// validateRequest валидирует запрос и возвращает разобранные даты
func validateRequest(req *Request) (pickup, ret calendardate.Date, err error) {
	if req.VehicleID <= 0 {
		return pickup, ret, fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.PickupDate == "" || req.ReturnDate == "" {
		return pickup, ret, fmt.Errorf("%w: pickup_date and return_date are required", ErrInvalidInput)
	}

	pickup, err = calendardate.Parse(req.PickupDate)
	if err != nil {
		return pickup, ret, fmt.Errorf("%w: pickup_date: %v", ErrInvalidInput, err)
	}

	ret, err = calendardate.Parse(req.ReturnDate)
	if err != nil {
		return pickup, ret, fmt.Errorf("%w: return_date: %v", ErrInvalidInput, err)
	}

	if ret.Before(pickup) {
		return pickup, ret, fmt.Errorf("%w: %s < %s", ErrInvalidDateRange, ret, pickup)
	}

	return pickup, ret, nil
}
