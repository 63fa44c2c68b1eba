package models

import (
	"time"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
)

// VehicleBooking запись списка бронирований автомобиля.
// Этот формат читает календарь через API бронирований.
type VehicleBooking struct {
	ID         int64  `json:"id"`
	PickupDate string `json:"pickup_date"` // "2024-06-10"
	ReturnDate string `json:"return_date"` // включительно
	Status     string `json:"status"`
	UserName   string `json:"user_name,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64    `json:"id"`
	VehicleID      int64    `json:"vehicle_id"`
	UserID         int64    `json:"user_id"`
	UserName       string   `json:"user_name"`
	PickupDate     string   `json:"pickup_date"`
	ReturnDate     string   `json:"return_date"`
	PickupLocation string   `json:"pickup_location"`
	ReturnLocation string   `json:"return_location"`
	Enhancements   []string `json:"enhancements"`
	Status         string   `json:"status"`

	BasePrice         float64 `json:"base_price"`
	EnhancementsPrice float64 `json:"enhancements_price"`
	TotalPrice        float64 `json:"total_price"`

	Notes       *string `json:"notes,omitempty"`
	CancelledAt *string `json:"cancelled_at,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	enhancements := b.Enhancements
	if enhancements == nil {
		enhancements = []string{}
	}

	resp := &BookingResponse{
		ID:                b.ID,
		VehicleID:         b.VehicleID,
		UserID:            b.UserID,
		UserName:          b.UserName,
		PickupDate:        b.PickupDate.Key(),
		ReturnDate:        b.ReturnDate.Key(),
		PickupLocation:    b.PickupLocation,
		ReturnLocation:    b.ReturnLocation,
		Enhancements:      enhancements,
		Status:            string(b.Status),
		BasePrice:         b.BasePrice,
		EnhancementsPrice: b.EnhancementsPrice,
		TotalPrice:        b.TotalPrice,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainVehicleBookings конвертирует бронирования в формат списка
func FromDomainVehicleBookings(bookings []*domain.Booking) []VehicleBooking {
	result := make([]VehicleBooking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, VehicleBooking{
			ID:         b.ID,
			PickupDate: b.PickupDate.Key(),
			ReturnDate: b.ReturnDate.Key(),
			Status:     string(b.Status),
			UserName:   b.UserName,
		})
	}
	return result
}
