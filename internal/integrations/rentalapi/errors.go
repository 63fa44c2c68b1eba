package rentalapi

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда бэкенд не знает автомобиль
	ErrVehicleNotFound = errors.New("rentalapi client: vehicle not found")

	// ErrBadRequest бэкенд отклонил параметры запроса
	ErrBadRequest = errors.New("rentalapi client: bad request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("rentalapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("rentalapi client: invalid response")
)
