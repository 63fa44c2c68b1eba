package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// SelectionKind состояние выбора
type SelectionKind string

const (
	KindEmpty         SelectionKind = "empty"
	KindSingle        SelectionKind = "single"
	KindRangeStart    SelectionKind = "range-start"
	KindRangeComplete SelectionKind = "range-complete"
)

// Selection выбор пользователя. Им владеет вызывающая сторона,
// календарь только вычисляет следующее состояние.
type Selection struct {
	Kind  SelectionKind
	Start calendardate.Date
	End   calendardate.Date
}

func Empty() Selection {
	return Selection{Kind: KindEmpty}
}

func SingleSelected(d calendardate.Date) Selection {
	return Selection{Kind: KindSingle, Start: d}
}

func RangeStart(d calendardate.Date) Selection {
	return Selection{Kind: KindRangeStart, Start: d}
}

// RangeComplete требует start <= end
func RangeComplete(start, end calendardate.Date) Selection {
	return Selection{Kind: KindRangeComplete, Start: start, End: end}
}

// Value строка, которую календарь отдаёт вызывающей стороне:
// дата "S" или диапазон "S to E".
func (s Selection) Value() string {
	switch s.Kind {
	case KindSingle, KindRangeStart:
		return s.Start.Key()
	case KindRangeComplete:
		return calendardate.FormatRange(s.Start, s.End)
	default:
		return ""
	}
}

// IsSameDay true для завершённого диапазона из одного дня
func (s Selection) IsSameDay() bool {
	return s.Kind == KindRangeComplete && s.Start.Equal(s.End)
}

// Click обрабатывает клик по дню d.
// Клик по недоступному дню ничего не меняет: возвращается текущее состояние и ok=false.
func Click(mode domain.SelectionMode, current Selection, d calendardate.Date, disabled DisabledSet) (next Selection, emitted string, ok bool) {
	if disabled.IsDisabled(d) {
		return current, "", false
	}

	next = transition(mode, current, d)
	return next, next.Value(), true
}

func transition(mode domain.SelectionMode, current Selection, d calendardate.Date) Selection {
	switch mode {
	case domain.ModeSingle:
		return SingleSelected(d)

	case domain.ModeSameDay:
		// повторный клик по той же дате означает аренду на один день
		if current.Kind == KindRangeStart && current.Start.Equal(d) {
			return RangeComplete(d, d)
		}
		return RangeStart(d)

	default:
		if current.Kind == KindRangeStart && !d.Before(current.Start) {
			return RangeComplete(current.Start, d)
		}
		// клик раньше начала перезапускает диапазон
		return RangeStart(d)
	}
}

// SelectionFromInputs восстанавливает выбор из управляемых входов календаря
// (selectedDate для single, rangeStart/rangeEnd для range и same-day).
func SelectionFromInputs(mode domain.SelectionMode, selectedDate, rangeStart, rangeEnd string) (Selection, error) {
	if !mode.IsRangeLike() {
		if selectedDate == "" {
			return Empty(), nil
		}
		d, err := calendardate.Parse(selectedDate)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: selected date: %v", ErrInvalidSelection, err)
		}
		return SingleSelected(d), nil
	}

	if rangeStart == "" {
		if rangeEnd != "" {
			return Selection{}, fmt.Errorf("%w: range end without range start", ErrInvalidSelection)
		}
		return Empty(), nil
	}

	start, err := calendardate.Parse(rangeStart)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: range start: %v", ErrInvalidSelection, err)
	}
	if rangeEnd == "" {
		return RangeStart(start), nil
	}

	end, err := calendardate.Parse(rangeEnd)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: range end: %v", ErrInvalidSelection, err)
	}
	if end.Before(start) {
		return Selection{}, fmt.Errorf("%w: range end %s before start %s", ErrInvalidSelection, end, start)
	}

	return RangeComplete(start, end), nil
}

// SelectionFromValue разбирает строку, ранее отданную Click
func SelectionFromValue(mode domain.SelectionMode, value string) (Selection, error) {
	if value == "" {
		return Empty(), nil
	}

	start, end, isRange, err := calendardate.ParseSelection(value)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	switch {
	case isRange:
		return RangeComplete(start, end), nil
	case mode.IsRangeLike():
		return RangeStart(start), nil
	default:
		return SingleSelected(start), nil
	}
}
