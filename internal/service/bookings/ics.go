package bookings

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
)

const icsProductID = "-//SMC//Rental Calendar//EN"

// buildCalendar собирает iCalendar с событием на весь день для каждого бронирования.
// DTEND в iCalendar не включается в событие, поэтому это день после возврата.
func buildCalendar(vehicleID int64, bookings []*domain.Booking, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(fmt.Sprintf("Vehicle %d bookings", vehicleID))

	for _, b := range bookings {
		event := cal.AddEvent(fmt.Sprintf("vehicle-%d-booking-%d@rental-calendar", vehicleID, b.ID))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(b.PickupDate.In(time.UTC))
		event.SetAllDayEndAt(b.ReturnDate.AddDays(1).In(time.UTC))
		event.SetSummary("Booked")
		if b.PickupLocation != "" {
			event.SetLocation(b.PickupLocation)
		}
		event.SetStatus(icsStatus(b.Status))
	}

	return cal.Serialize()
}

func icsStatus(status domain.BookingStatus) ics.ObjectStatus {
	switch status {
	case domain.StatusPending:
		return ics.ObjectStatusTentative
	case domain.StatusCancelled:
		return ics.ObjectStatusCancelled
	default:
		return ics.ObjectStatusConfirmed
	}
}
