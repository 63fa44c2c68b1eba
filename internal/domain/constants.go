package domain

// Business validation constants
const (
	MaxRentalDays         = 90
	MaxBookingHorizonDays = 365 // 1 year
	MaxNotesLength        = 500
	MaxLocationLength     = 200
	MaxUserNameLength     = 200
	MinRentalDaysForPrice = 1
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// InactiveStatuses статусы, которые не блокируют даты автомобиля
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, которые блокируют даты автомобиля
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusActive,
	StatusCompleted,
}
