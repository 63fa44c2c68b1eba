package calendardate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RangeSeparator разделитель начала и конца диапазона в строке выбора
const RangeSeparator = " to "

// dateTimeLayouts форматы ISO datetime, которые присылает бэкенд
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
}

// Parse разбирает строку строго в формате YYYY-MM-DD
func Parse(key string) (Date, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q: expected 3 segments, got %d", ErrMalformedKey, key, len(parts))
	}

	year, err := parseDigits(parts[0], 4)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: year: %v", ErrMalformedKey, key, err)
	}
	month, err := parseDigits(parts[1], 2)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: month: %v", ErrMalformedKey, key, err)
	}
	day, err := parseDigits(parts[2], 2)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: day: %v", ErrMalformedKey, key, err)
	}

	if year < 1 || month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: %q: out of range", ErrMalformedKey, key)
	}

	d := Date{year: year, month: time.Month(month), day: 1}
	if day < 1 || day > d.DaysInMonth() {
		return Date{}, fmt.Errorf("%w: %q: day out of range", ErrMalformedKey, key)
	}
	d.day = day

	return d, nil
}

// ParseMonth разбирает YYYY-MM и возвращает первое число месяца
func ParseMonth(value string) (Date, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedMonth, value)
	}

	year, err := parseDigits(parts[0], 4)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: year: %v", ErrMalformedMonth, value, err)
	}
	month, err := parseDigits(parts[1], 2)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: month: %v", ErrMalformedMonth, value, err)
	}
	if year < 1 || month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: %q: out of range", ErrMalformedMonth, value)
	}

	return Date{year: year, month: time.Month(month), day: 1}, nil
}

// Normalize приводит значение даты из записи бронирования к календарной дате.
// Принимает YYYY-MM-DD или ISO datetime; датой считается буквальная часть
// YYYY-MM-DD, без перевода между часовыми поясами.
func Normalize(raw string) (Date, error) {
	value := strings.TrimSpace(raw)
	if len(value) <= len(KeyLayout) {
		return Parse(value)
	}

	sep := value[len(KeyLayout)]
	if sep != 'T' && sep != ' ' {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedKey, raw)
	}

	d, err := Parse(value[:len(KeyLayout)])
	if err != nil {
		return Date{}, err
	}

	iso := value[:len(KeyLayout)] + "T" + value[len(KeyLayout)+1:]
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, iso); err == nil {
			return d, nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrMalformedDateTime, raw)
}

// FormatRange формирует строку выбора диапазона "S to E"
func FormatRange(start, end Date) string {
	return start.Key() + RangeSeparator + end.Key()
}

// ParseSelection разбирает строку, которую календарь отдаёт при выборе:
// одиночную дату "S" или диапазон "S to E".
func ParseSelection(value string) (start, end Date, isRange bool, err error) {
	if !strings.Contains(value, RangeSeparator) {
		start, err = Parse(strings.TrimSpace(value))
		if err != nil {
			return Date{}, Date{}, false, fmt.Errorf("%w: %v", ErrMalformedSelection, err)
		}
		return start, Date{}, false, nil
	}

	parts := strings.Split(value, RangeSeparator)
	if len(parts) != 2 {
		return Date{}, Date{}, false, fmt.Errorf("%w: %q", ErrMalformedSelection, value)
	}

	start, err = Parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return Date{}, Date{}, false, fmt.Errorf("%w: start: %v", ErrMalformedSelection, err)
	}
	end, err = Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return Date{}, Date{}, false, fmt.Errorf("%w: end: %v", ErrMalformedSelection, err)
	}
	if end.Before(start) {
		return Date{}, Date{}, false, fmt.Errorf("%w: end %s before start %s", ErrMalformedSelection, end, start)
	}

	return start, end, true, nil
}

func parseDigits(s string, width int) (int, error) {
	if len(s) != width {
		return 0, fmt.Errorf("expected %d digits, got %q", width, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-numeric %q", s)
		}
	}
	return strconv.Atoi(s)
}
