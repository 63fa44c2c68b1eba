package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-RentalCalendar/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available         bool    `json:"available"`
	Message           *string `json:"message,omitempty"`
	NextAvailableDate *string `json:"next_available_date,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Available: resp.Available,
		Message:   resp.Message,
	}
	if resp.NextAvailableDate != nil {
		next := resp.NextAvailableDate.Key()
		out.NextAvailableDate = &next
	}
	return out
}
