package domain

import (
	"time"

	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// BookingStatus represents the status of a vehicle booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusActive    BookingStatus = "ACTIVE"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// IsValid returns true for statuses known to the backend
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a vehicle reservation stored by the service
type Booking struct {
	ID        int64
	VehicleID int64
	UserID    int64
	UserName  string

	// Both dates are inclusive: the vehicle is blocked from pickup day through return day
	PickupDate calendardate.Date
	ReturnDate calendardate.Date

	PickupLocation string
	ReturnLocation string
	Enhancements   []string

	BasePrice         float64
	EnhancementsPrice float64
	TotalPrice        float64

	Status BookingStatus
	Notes  *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking still blocks its dates
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps returns true if the booking shares at least one day with [pickup, ret]
func (b *Booking) Overlaps(pickup, ret calendardate.Date) bool {
	return !b.PickupDate.After(ret) && !b.ReturnDate.Before(pickup)
}

// Interval converts the booking into the calendar's blocking interval
func (b *Booking) Interval() BookingInterval {
	return BookingInterval{
		ID:          b.ID,
		PickupDate:  b.PickupDate,
		ReturnDate:  b.ReturnDate,
		Status:      b.Status,
		RenterLabel: b.UserName,
	}
}

// BookingInterval is an existing reservation's inclusive pickup-to-return span
type BookingInterval struct {
	ID          int64
	PickupDate  calendardate.Date
	ReturnDate  calendardate.Date
	Status      BookingStatus
	RenterLabel string
}

// Days returns the number of calendar days covered, both ends included
func (i BookingInterval) Days() int {
	return i.PickupDate.DaysUntil(i.ReturnDate) + 1
}

// VehicleBookingsFilter фильтр для получения бронирований автомобиля
type VehicleBookingsFilter struct {
	VehicleID       int64              // Обязательный параметр
	From            *calendardate.Date // Бронирования, заканчивающиеся не раньше From
	To              *calendardate.Date // Бронирования, начинающиеся не позже To
	IncludeInactive bool               // Включать ли отменённые бронирования
}
