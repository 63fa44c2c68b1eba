package select_date

import (
	"github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/get_calendar_month"
	selectDate "github.com/m04kA/SMC-RentalCalendar/internal/usecase/select_date"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Mode         string `json:"mode" validate:"omitempty,oneof=single range same-day"`
	Date         string `json:"date" validate:"required"`
	SelectedDate string `json:"selected_date,omitempty"`
	RangeStart   string `json:"range_start,omitempty"`
	RangeEnd     string `json:"range_end,omitempty"`
	MinDate      string `json:"min_date,omitempty"`
}

// SelectDateResponse HTTP response model. Value пустое, если клик был по недоступному дню.
type SelectDateResponse struct {
	Mode      string                               `json:"mode"`
	Changed   bool                                 `json:"changed"`
	Value     string                               `json:"value,omitempty"`
	Selection get_calendar_month.SelectionResponse `json:"selection"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDateRequest) ToUseCaseRequest(vehicleID int64) *selectDate.Request {
	return &selectDate.Request{
		VehicleID:    vehicleID,
		Mode:         r.Mode,
		Date:         r.Date,
		SelectedDate: r.SelectedDate,
		RangeStart:   r.RangeStart,
		RangeEnd:     r.RangeEnd,
		MinDate:      r.MinDate,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectDate.Response) *SelectDateResponse {
	return &SelectDateResponse{
		Mode:      string(resp.Mode),
		Changed:   resp.Changed,
		Value:     resp.Value,
		Selection: get_calendar_month.FromSelection(resp.Selection),
	}
}
