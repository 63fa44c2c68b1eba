package calendar

import (
	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// CellStatus отображаемый статус дня
type CellStatus string

const (
	StatusDisabled   CellStatus = "disabled"
	StatusSelected   CellStatus = "selected"
	StatusRangeStart CellStatus = "range-start"
	StatusRangeEnd   CellStatus = "range-end"
	StatusInRange    CellStatus = "in-range"
	StatusSameDay    CellStatus = "same-day"
	StatusNormal     CellStatus = "normal"
)

// DayNames заголовки колонок, неделя начинается с воскресенья
var DayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell ячейка сетки. Blank ячейки заполняют дни недели до 1-го числа.
type Cell struct {
	Blank  bool
	Day    int
	Date   calendardate.Date
	Status CellStatus
}

// Grid сетка месяца в 7 колонок
type Grid struct {
	Month     calendardate.Date // первое число месяца
	MonthName string
	Year      int
	DayNames  []string
	Cells     []Cell
	PrevMonth calendardate.Date
	NextMonth calendardate.Date
}

// RenderMonth строит сетку месяца view.Month. Наведение (view.Hovered) влияет
// только на подсветку и никогда не меняет выбор.
func RenderMonth(view View, disabled DisabledSet, sel Selection, mode domain.SelectionMode) Grid {
	first := view.Month.FirstOfMonth()
	blanks := int(first.Weekday())
	daysInMonth := first.DaysInMonth()

	cells := make([]Cell, 0, blanks+daysInMonth)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{Blank: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		d := calendardate.New(first.Year(), first.Month(), day)
		cells = append(cells, Cell{
			Day:    day,
			Date:   d,
			Status: cellStatus(d, disabled, sel, mode, view.Hovered),
		})
	}

	return Grid{
		Month:     first,
		MonthName: first.Month().String(),
		Year:      first.Year(),
		DayNames:  DayNames,
		Cells:     cells,
		PrevMonth: first.AddMonths(-1),
		NextMonth: first.AddMonths(1),
	}
}

// cellStatus приоритет: disabled, same-day, selected/range-start, range-end, in-range, normal
func cellStatus(d calendardate.Date, disabled DisabledSet, sel Selection, mode domain.SelectionMode, hovered *calendardate.Date) CellStatus {
	if disabled.IsDisabled(d) {
		return StatusDisabled
	}

	if !mode.IsRangeLike() {
		if sel.Kind == KindSingle && sel.Start.Equal(d) {
			return StatusSelected
		}
		return StatusNormal
	}

	switch sel.Kind {
	case KindRangeComplete:
		switch {
		case sel.IsSameDay() && sel.Start.Equal(d):
			return StatusSameDay
		case sel.Start.Equal(d):
			return StatusRangeStart
		case sel.End.Equal(d):
			return StatusRangeEnd
		case d.After(sel.Start) && d.Before(sel.End):
			return StatusInRange
		}

	case KindRangeStart:
		if sel.Start.Equal(d) {
			return StatusRangeStart
		}
		// предпросмотр диапазона: S < D <= hovered
		if hovered != nil && d.After(sel.Start) && !d.After(*hovered) {
			return StatusInRange
		}
	}

	return StatusNormal
}
