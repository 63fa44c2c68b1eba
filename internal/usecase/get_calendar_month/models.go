package get_calendar_month

import (
	"github.com/m04kA/SMC-RentalCalendar/internal/calendar"
	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// Request модель запроса сетки месяца. Выбор передаётся вызывающей стороной
// через управляемые входы календаря.
type Request struct {
	VehicleID    int64
	Month        string // YYYY-MM; пустое значение: месяц выбора или минимальной даты
	Mode         string // single | range | same-day; пустое значение: range
	SelectedDate string
	RangeStart   string
	RangeEnd     string
	Hovered      string
	MinDate      string // YYYY-MM-DD; пустое значение: сегодня
}

// Response модель ответа
type Response struct {
	Mode      domain.SelectionMode
	MinDate   calendardate.Date
	Selection calendar.Selection
	Grid      calendar.Grid
}
