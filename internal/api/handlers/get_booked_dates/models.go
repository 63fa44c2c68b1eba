package get_booked_dates

// BookedDatesResponse недоступные даты автомобиля.
// Всё раньше MinDate недоступно и в Dates не перечисляется.
type BookedDatesResponse struct {
	MinDate string   `json:"min_date"`
	Dates   []string `json:"dates"`
}
