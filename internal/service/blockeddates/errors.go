package blockeddates

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда источник бронирований не знает автомобиль
	ErrVehicleNotFound = errors.New("blockeddates: vehicle not found")

	// ErrBookingsUnavailable список бронирований получить не удалось
	ErrBookingsUnavailable = errors.New("blockeddates: bookings source unavailable")

	// ErrInvalidMinDate некорректная нижняя граница
	ErrInvalidMinDate = errors.New("blockeddates: invalid min date")
)
