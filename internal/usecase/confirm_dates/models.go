package confirm_dates

// Сообщения шага выбора дат
const (
	MessagePickupRequired = "Please select a pickup date."
	MessageReturnRequired = "Please select a return date."
	MessageReturnBefore   = "Return date must be after the pickup date."
	MessageUnavailable    = "This vehicle is not available for the selected dates."
)

// Request даты, выбранные в календаре
type Request struct {
	VehicleID  int64
	PickupDate string
	ReturnDate string
}

// Response решение о переходе к следующему шагу мастера бронирования.
// Degraded=true: проверка не выполнилась и переход разрешён без неё.
type Response struct {
	Proceed           bool
	Message           string
	NextAvailableDate *string
	Degraded          bool
}
