package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата получения в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidDateRange возвращается, когда дата возврата раньше даты получения
	ErrInvalidDateRange = errors.New("create_booking: return date must not be before pickup date")

	// ErrDateTooFarInFuture возвращается, когда дата дальше горизонта бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrRentalTooLong возвращается, когда аренда длиннее допустимой
	ErrRentalTooLong = errors.New("create_booking: rental period is too long")

	// ErrUnknownEnhancement возвращается для услуги не из каталога
	ErrUnknownEnhancement = errors.New("create_booking: unknown enhancement")

	// ErrDatesUnavailable возвращается, когда даты уже заняты другим бронированием
	ErrDatesUnavailable = errors.New("create_booking: vehicle is not available for the selected dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
