package confirm_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_dates: invalid input data")

	errEmptyAvailability = errors.New("confirm_dates: empty availability response")
)
