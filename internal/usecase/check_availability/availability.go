package check_availability

import (
	"sort"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// findConflict возвращает первое (по дате получения) активное бронирование,
// пересекающееся с [pickup, ret]. Обе границы включительно.
func findConflict(bookings []*domain.Booking, pickup, ret calendardate.Date) *domain.Booking {
	var first *domain.Booking
	for _, b := range bookings {
		if !b.IsActive() || !b.Overlaps(pickup, ret) {
			continue
		}
		if first == nil || b.PickupDate.Before(first.PickupDate) {
			first = b
		}
	}
	return first
}

// nextAvailableDate ищет самую раннюю дату начала >= pickup, с которой аренда
// той же длины не пересекается ни с одним активным бронированием.
func nextAvailableDate(bookings []*domain.Booking, pickup, ret calendardate.Date) calendardate.Date {
	length := pickup.DaysUntil(ret)

	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].PickupDate.Before(active[j].PickupDate)
	})

	candidate := pickup
	for _, b := range active {
		end := candidate.AddDays(length)
		if b.PickupDate.After(end) {
			// дальше бронирования начинаются ещё позже
			break
		}
		if b.Overlaps(candidate, end) {
			candidate = b.ReturnDate.AddDays(1)
		}
	}

	return candidate
}
