package get_calendar_month

import (
	"github.com/m04kA/SMC-RentalCalendar/internal/calendar"
	getCalendarMonth "github.com/m04kA/SMC-RentalCalendar/internal/usecase/get_calendar_month"
)

// CalendarMonthResponse HTTP response model
type CalendarMonthResponse struct {
	Mode      string            `json:"mode"`
	MinDate   string            `json:"min_date"`
	Month     string            `json:"month"` // YYYY-MM
	MonthName string            `json:"month_name"`
	Year      int               `json:"year"`
	PrevMonth string            `json:"prev_month"`
	NextMonth string            `json:"next_month"`
	DayNames  []string          `json:"day_names"`
	Cells     []Cell            `json:"cells"`
	Selection SelectionResponse `json:"selection"`
}

// Cell ячейка сетки; для пустых ячеек заполнено только blank
type Cell struct {
	Blank  bool   `json:"blank,omitempty"`
	Day    int    `json:"day,omitempty"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
}

// SelectionResponse текущий выбор и строковое значение календаря
type SelectionResponse struct {
	Kind  string `json:"kind"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Value string `json:"value,omitempty"`
}

// FromSelection конвертирует выбор календаря в HTTP модель
func FromSelection(sel calendar.Selection) SelectionResponse {
	out := SelectionResponse{Kind: string(sel.Kind), Value: sel.Value()}
	if !sel.Start.IsZero() {
		out.Start = sel.Start.Key()
	}
	if sel.Kind == calendar.KindRangeComplete {
		out.End = sel.End.Key()
	}
	return out
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarMonth.Response) *CalendarMonthResponse {
	g := resp.Grid
	cells := make([]Cell, len(g.Cells))
	for i, c := range g.Cells {
		if c.Blank {
			cells[i] = Cell{Blank: true}
			continue
		}
		cells[i] = Cell{
			Day:    c.Day,
			Date:   c.Date.Key(),
			Status: string(c.Status),
		}
	}

	return &CalendarMonthResponse{
		Mode:      string(resp.Mode),
		MinDate:   resp.MinDate.Key(),
		Month:     g.Month.MonthKey(),
		MonthName: g.MonthName,
		Year:      g.Year,
		PrevMonth: g.PrevMonth.MonthKey(),
		NextMonth: g.NextMonth.MonthKey(),
		DayNames:  g.DayNames,
		Cells:     cells,
		Selection: FromSelection(resp.Selection),
	}
}
