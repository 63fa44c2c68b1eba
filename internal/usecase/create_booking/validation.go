package create_booking

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// validateRequest валидирует входные данные запроса и возвращает разобранные даты
func validateRequest(req *Request) (pickup, ret calendardate.Date, err error) {
	if req.UserID <= 0 {
		return pickup, ret, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return pickup, ret, fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.PricePerDay <= 0 {
		return pickup, ret, fmt.Errorf("%w: price_per_day must be positive", ErrInvalidInput)
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

	if len(req.UserName) > domain.MaxUserNameLength {
		return pickup, ret, fmt.Errorf("%w: user_name longer than %d", ErrInvalidInput, domain.MaxUserNameLength)
	}

	if len(req.PickupLocation) > domain.MaxLocationLength || len(req.ReturnLocation) > domain.MaxLocationLength {
		return pickup, ret, fmt.Errorf("%w: location longer than %d", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return pickup, ret, fmt.Errorf("%w: notes longer than %d", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := validateEnhancements(req.Enhancements); err != nil {
		return pickup, ret, err
	}

	return pickup, ret, nil
}

// validateEnhancements проверяет, что все услуги есть в каталоге и не повторяются
func validateEnhancements(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := domain.FindEnhancement(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEnhancement, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate enhancement %q", ErrInvalidInput, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// validateDates проверяет даты относительно сегодняшнего дня
func validateDates(pickup, ret, today calendardate.Date) error {
	if pickup.Before(today) {
		return fmt.Errorf("%w: pickup date %s is in the past", ErrInvalidDate, pickup)
	}

	if today.DaysUntil(pickup) > domain.MaxBookingHorizonDays {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxBookingHorizonDays)
	}

	if domain.RentalDays(pickup, ret) > domain.MaxRentalDays {
		return fmt.Errorf("%w: at most %d days", ErrRentalTooLong, domain.MaxRentalDays)
	}

	return nil
}

// hasOverlap true, если хотя бы одно активное бронирование занимает дни [pickup, ret]
func hasOverlap(bookings []*domain.Booking, pickup, ret calendardate.Date) bool {
	for _, b := range bookings {
		if b.IsActive() && b.Overlaps(pickup, ret) {
			return true
		}
	}
	return false
}

// isConflictError распознаёт ошибки PostgreSQL, означающие гонку за те же даты:
// срабатывание exclusion constraint и сбой сериализации транзакции.
func isConflictError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch string(pqErr.Code) {
	case pgerrcode.ExclusionViolation, pgerrcode.SerializationFailure:
		return true
	default:
		return false
	}
}
