package calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// RawBooking запись бронирования в том виде, в котором её отдаёт бэкенд:
// даты в формате YYYY-MM-DD или ISO datetime.
type RawBooking struct {
	ID         int64
	PickupDate string
	ReturnDate string
	Status     string
	UserName   string
}

// RejectedRecord запись, исключённая из множества недоступных дат
type RejectedRecord struct {
	ID     int64
	Reason error
}

// NormalizeBookings превращает записи бэкенда в интервалы.
// Записи с неразбираемыми или перевёрнутыми датами, а также записи длиннее
// domain.MaxRentalDays отбрасываются и возвращаются
// отдельно, чтобы вызывающая сторона их залогировала. Отменённые бронирования
// даты не блокируют и пропускаются молча.
func NormalizeBookings(records []RawBooking) ([]domain.BookingInterval, []RejectedRecord) {
	intervals := make([]domain.BookingInterval, 0, len(records))
	var rejected []RejectedRecord

	for _, rec := range records {
		status := domain.BookingStatus(strings.ToUpper(strings.TrimSpace(rec.Status)))
		if status == domain.StatusCancelled {
			continue
		}

		interval, err := normalizeRecord(rec, status)
		if err != nil {
			rejected = append(rejected, RejectedRecord{ID: rec.ID, Reason: err})
			continue
		}
		intervals = append(intervals, interval)
	}

	return intervals, rejected
}

func normalizeRecord(rec RawBooking, status domain.BookingStatus) (domain.BookingInterval, error) {
	pickup, err := calendardate.Normalize(rec.PickupDate)
	if err != nil {
		return domain.BookingInterval{}, fmt.Errorf("%w: id=%d pickup_date=%q: %v", ErrMalformedRecord, rec.ID, rec.PickupDate, err)
	}

	ret, err := calendardate.Normalize(rec.ReturnDate)
	if err != nil {
		return domain.BookingInterval{}, fmt.Errorf("%w: id=%d return_date=%q: %v", ErrMalformedRecord, rec.ID, rec.ReturnDate, err)
	}

	if ret.Before(pickup) {
		return domain.BookingInterval{}, fmt.Errorf("%w: id=%d %s..%s", ErrInvertedInterval, rec.ID, pickup, ret)
	}

	if pickup.DaysUntil(ret) > domain.MaxRentalDays {
		return domain.BookingInterval{}, fmt.Errorf("%w: id=%d %s..%s exceeds %d days", ErrIntervalTooLong, rec.ID, pickup, ret, domain.MaxRentalDays)
	}

	return domain.BookingInterval{
		ID:          rec.ID,
		PickupDate:  pickup,
		ReturnDate:  ret,
		Status:      status,
		RenterLabel: rec.UserName,
	}, nil
}
