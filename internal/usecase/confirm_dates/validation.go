package confirm_dates

import (
	"fmt"

	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// validateRequest возвращает сообщение для пользователя, если шаг нельзя завершить.
// Ошибка означает некорректный запрос, а не выбор пользователя.
func validateRequest(req *Request) (string, error) {
	if req.VehicleID <= 0 {
		return "", fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.PickupDate == "" {
		return MessagePickupRequired, nil
	}
	if req.ReturnDate == "" {
		return MessageReturnRequired, nil
	}

	pickup, err := calendardate.Parse(req.PickupDate)
	if err != nil {
		return "", fmt.Errorf("%w: pickup_date: %v", ErrInvalidInput, err)
	}
	ret, err := calendardate.Parse(req.ReturnDate)
	if err != nil {
		return "", fmt.Errorf("%w: return_date: %v", ErrInvalidInput, err)
	}

	// Возврат в день получения допустим
	if ret.Before(pickup) {
		return MessageReturnBefore, nil
	}

	return "", nil
}
