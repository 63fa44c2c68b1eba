package calendar

import "errors"

var (
	// ErrInvalidSelection возвращается, когда входы выбора не образуют корректное состояние
	ErrInvalidSelection = errors.New("calendar: invalid selection")

	// ErrMalformedRecord возвращается для записи бронирования с неразбираемой датой
	ErrMalformedRecord = errors.New("calendar: malformed booking record")

	// ErrInvertedInterval возвращается, когда дата возврата раньше даты получения
	ErrInvertedInterval = errors.New("calendar: return date before pickup date")

	// ErrIntervalTooLong возвращается для записи длиннее максимального срока аренды
	ErrIntervalTooLong = errors.New("calendar: booking interval too long")
)
