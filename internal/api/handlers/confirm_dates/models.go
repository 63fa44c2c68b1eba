package confirm_dates

import (
	confirmDates "github.com/m04kA/SMC-RentalCalendar/internal/usecase/confirm_dates"
)

// ConfirmDatesRequest HTTP request model. Пустые даты допустимы: ответ подскажет, что выбрать.
type ConfirmDatesRequest struct {
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
}

// ConfirmDatesResponse HTTP response model
type ConfirmDatesResponse struct {
	Proceed           bool    `json:"proceed"`
	Message           string  `json:"message,omitempty"`
	NextAvailableDate *string `json:"next_available_date,omitempty"`
	Degraded          bool    `json:"degraded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmDates.Response) *ConfirmDatesResponse {
	return &ConfirmDatesResponse{
		Proceed:           resp.Proceed,
		Message:           resp.Message,
		NextAvailableDate: resp.NextAvailableDate,
		Degraded:          resp.Degraded,
	}
}
