package calendardate

import "errors"

var (
	// ErrMalformedKey возвращается, когда строка не является датой YYYY-MM-DD
	ErrMalformedKey = errors.New("calendardate: malformed date key")

	// ErrMalformedMonth возвращается, когда строка не является месяцем YYYY-MM
	ErrMalformedMonth = errors.New("calendardate: malformed month")

	// ErrMalformedDateTime возвращается, когда ISO datetime не удаётся разобрать
	ErrMalformedDateTime = errors.New("calendardate: malformed datetime")

	// ErrMalformedSelection возвращается при некорректной строке выбора ("S" или "S to E")
	ErrMalformedSelection = errors.New("calendardate: malformed selection")
)
