// Package calendar ядро календаря бронирования: множество недоступных дат,
// конечный автомат выбора и сетка месяца. Пакет не делает I/O.
package calendar

import (
	"sort"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// DisabledSet неизменяемое множество дат, которые нельзя выбрать
type DisabledSet struct {
	booked  map[string]struct{}
	minDate calendardate.Date
}

// BuildDisabledSet объединяет дни всех бронирований (включительно с обеих сторон)
// и нижнюю границу minDate. Нулевой minDate означает отсутствие границы.
// Дни раньше minDate и так недоступны, поэтому в множество не попадают.
func BuildDisabledSet(intervals []domain.BookingInterval, minDate calendardate.Date) DisabledSet {
	booked := make(map[string]struct{})
	for _, interval := range intervals {
		start := interval.PickupDate
		if start.Before(minDate) {
			start = minDate
		}
		// по одному дню, без вычисления разницы дат
		for d := start; !d.After(interval.ReturnDate); d = d.AddDays(1) {
			booked[d.Key()] = struct{}{}
		}
	}

	return DisabledSet{booked: booked, minDate: minDate}
}

// IsDisabled true, если дата забронирована или раньше minDate
func (s DisabledSet) IsDisabled(d calendardate.Date) bool {
	if d.Before(s.minDate) {
		return true
	}
	return s.IsBooked(d)
}

// IsBooked true, если дата не раньше minDate и попадает в одно из бронирований
func (s DisabledSet) IsBooked(d calendardate.Date) bool {
	_, ok := s.booked[d.Key()]
	return ok
}

func (s DisabledSet) MinDate() calendardate.Date {
	return s.minDate
}

// Len количество забронированных дат
func (s DisabledSet) Len() int {
	return len(s.booked)
}

// Keys забронированные даты в порядке возрастания
func (s DisabledSet) Keys() []string {
	keys := make([]string, 0, len(s.booked))
	for k := range s.booked {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
