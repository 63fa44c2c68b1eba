package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-RentalCalendar/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VehicleID      int64    `json:"vehicle_id" validate:"required,gt=0"`
	UserName       string   `json:"user_name" validate:"required,max=200"`
	PickupDate     string   `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	ReturnDate     string   `json:"return_date" validate:"required,datetime=2006-01-02"`
	PickupLocation string   `json:"pickup_location" validate:"required,max=255"`
	ReturnLocation string   `json:"return_location" validate:"required,max=255"`
	Enhancements   []string `json:"enhancements" validate:"omitempty,dive,required"`
	PricePerDay    float64  `json:"price_per_day" validate:"required,gt=0"`
	Notes          *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64    `json:"id"`
	UserID            int64    `json:"user_id"`
	UserName          string   `json:"user_name"`
	VehicleID         int64    `json:"vehicle_id"`
	PickupDate        string   `json:"pickup_date"`
	ReturnDate        string   `json:"return_date"`
	PickupLocation    string   `json:"pickup_location"`
	ReturnLocation    string   `json:"return_location"`
	Enhancements      []string `json:"enhancements"`
	Status            string   `json:"status"`
	RentalDays        int      `json:"rental_days"`
	BasePrice         float64  `json:"base_price"`
	EnhancementsPrice float64  `json:"enhancements_price"`
	TotalPrice        float64  `json:"total_price"`
	Notes             *string  `json:"notes,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:         userID,
		UserName:       r.UserName,
		VehicleID:      r.VehicleID,
		PickupDate:     r.PickupDate,
		ReturnDate:     r.ReturnDate,
		PickupLocation: r.PickupLocation,
		ReturnLocation: r.ReturnLocation,
		Enhancements:   r.Enhancements,
		PricePerDay:    r.PricePerDay,
		Notes:          r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	enhancements := resp.Enhancements
	if enhancements == nil {
		enhancements = []string{}
	}

	return &BookingResponse{
		ID:                resp.ID,
		UserID:            resp.UserID,
		UserName:          resp.UserName,
		VehicleID:         resp.VehicleID,
		PickupDate:        resp.PickupDate.Key(),
		ReturnDate:        resp.ReturnDate.Key(),
		PickupLocation:    resp.PickupLocation,
		ReturnLocation:    resp.ReturnLocation,
		Enhancements:      enhancements,
		Status:            resp.Status,
		RentalDays:        resp.RentalDays,
		BasePrice:         resp.BasePrice,
		EnhancementsPrice: resp.EnhancementsPrice,
		TotalPrice:        resp.TotalPrice,
		Notes:             resp.Notes,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
