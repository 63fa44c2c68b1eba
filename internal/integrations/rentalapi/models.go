package rentalapi

// Booking запись бронирования в том виде, в котором её отдаёт бэкенд.
// Даты приходят как YYYY-MM-DD либо как ISO datetime.
type Booking struct {
	ID         int64  `json:"id"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
	Status     string `json:"status"`
	UserName   string `json:"user_name,omitempty"`
}

// Availability ответ проверки доступности
type Availability struct {
	Available         bool    `json:"available"`
	Message           *string `json:"message,omitempty"`
	NextAvailableDate *string `json:"next_available_date,omitempty"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
