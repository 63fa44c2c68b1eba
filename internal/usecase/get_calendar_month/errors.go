package get_calendar_month

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar_month: invalid input data")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("get_calendar_month: vehicle not found")

	// ErrBookingsUnavailable список бронирований недоступен
	ErrBookingsUnavailable = errors.New("get_calendar_month: bookings unavailable")
)
