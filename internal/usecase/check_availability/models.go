package check_availability

import "github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"

// Request модель запроса проверки доступности
type Request struct {
	VehicleID  int64
	PickupDate string // YYYY-MM-DD
	ReturnDate string // YYYY-MM-DD
}

// Response модель ответа. Message и NextAvailableDate заполняются только
// для занятых дат.
type Response struct {
	Available         bool
	Message           *string
	NextAvailableDate *calendardate.Date
}
