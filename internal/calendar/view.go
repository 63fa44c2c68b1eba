package calendar

import "github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"

// View собственное состояние календаря: отображаемый месяц и наведённый день.
// Хранится отдельно от Selection, навигация не трогает выбор.
type View struct {
	Month   calendardate.Date
	Hovered *calendardate.Date
}

// NewView открывает календарь на месяце даты month
func NewView(month calendardate.Date) View {
	return View{Month: month.FirstOfMonth()}
}

// Next следующий месяц
func (v View) Next() View {
	return View{Month: v.Month.AddMonths(1), Hovered: v.Hovered}
}

// Prev предыдущий месяц
func (v View) Prev() View {
	return View{Month: v.Month.AddMonths(-1), Hovered: v.Hovered}
}

// Hover запоминает день под курсором
func (v View) Hover(d calendardate.Date) View {
	return View{Month: v.Month, Hovered: &d}
}

// Leave сбрасывает наведение
func (v View) Leave() View {
	return View{Month: v.Month}
}
