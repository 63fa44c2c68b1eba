package select_date

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_date: invalid input data")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("select_date: vehicle not found")

	// ErrBookingsUnavailable список бронирований недоступен
	ErrBookingsUnavailable = errors.New("select_date: bookings unavailable")
)
