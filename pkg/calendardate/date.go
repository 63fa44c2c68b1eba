// Package calendardate работает с календарными датами без времени суток.
//
// Дата определяется тройкой (год, месяц, день) в локальном времени и никогда
// не приводится к UTC: полночь по местному времени при переводе в UTC может
// оказаться предыдущим или следующим днём.
package calendardate

import (
	"fmt"
	"time"
)

// KeyLayout канонический формат даты (YYYY-MM-DD)
const KeyLayout = "2006-01-02"

// MonthLayout формат месяца (YYYY-MM)
const MonthLayout = "2006-01"

// Date календарная дата без времени и часового пояса
type Date struct {
	year  int
	month time.Month
	day   int
}

// New создаёт дату, нормализуя переполнение (31 апреля -> 1 мая)
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime берёт год, месяц и день из t в его собственной локации
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today возвращает текущую дату в указанной локации
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(now.In(loc))
}

// ToKey форматирует локальную дату t как YYYY-MM-DD
func ToKey(t time.Time) string {
	return FromTime(t).Key()
}

// FromKey разбирает YYYY-MM-DD в полночь локации loc
func FromKey(key string, loc *time.Location) (time.Time, error) {
	d, err := Parse(key)
	if err != nil {
		return time.Time{}, err
	}
	return d.In(loc), nil
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() time.Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// IsZero true для нулевого значения Date{}
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Key возвращает каноническое представление YYYY-MM-DD
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) String() string {
	return d.Key()
}

// MonthKey возвращает месяц даты в формате YYYY-MM
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.year, int(d.month))
}

// In возвращает полночь этой даты в локации loc
func (d Date) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// utc используется только для арифметики: в UTC нет переходов на летнее время
func (d Date) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays сдвигает дату на n календарных дней
func (d Date) AddDays(n int) Date {
	return New(d.year, d.month, d.day+n)
}

// AddMonths возвращает первое число месяца, сдвинутого на n
func (d Date) AddMonths(n int) Date {
	return New(d.year, d.month+time.Month(n), 1)
}

// FirstOfMonth возвращает первое число месяца даты
func (d Date) FirstOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// DaysInMonth количество дней в месяце даты
func (d Date) DaysInMonth() int {
	return time.Date(d.year, d.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// DaysUntil количество дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int {
	return int(other.utc().Sub(d.utc()).Hours() / 24)
}

// Compare возвращает -1, 0 или 1
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
