package select_date

import (
	"github.com/m04kA/SMC-RentalCalendar/internal/calendar"
	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
)

// Request клик по дню Date при текущем выборе вызывающей стороны
type Request struct {
	VehicleID    int64
	Mode         string
	Date         string
	SelectedDate string
	RangeStart   string
	RangeEnd     string
	MinDate      string
}

// Response новый выбор. Changed=false означает клик по недоступному дню:
// выбор не изменился и значение не отдаётся.
type Response struct {
	Mode      domain.SelectionMode
	Changed   bool
	Value     string
	Selection calendar.Selection
}
