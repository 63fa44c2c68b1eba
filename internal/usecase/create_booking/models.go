package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64    // ID пользователя из X-User-ID
	UserName       string   // Имя арендатора
	VehicleID      int64    // ID автомобиля
	PickupDate     string   // Дата получения, YYYY-MM-DD
	ReturnDate     string   // Дата возврата, YYYY-MM-DD (включительно)
	PickupLocation string   // Место получения
	ReturnLocation string   // Место возврата
	Enhancements   []string // Названия дополнительных услуг из каталога
	PricePerDay    float64  // Цена автомобиля за сутки
	Notes          *string  // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	UserID         int64
	UserName       string
	VehicleID      int64
	PickupDate     calendardate.Date
	ReturnDate     calendardate.Date
	PickupLocation string
	ReturnLocation string
	Enhancements   []string
	Status         string

	// Расчёт цены
	RentalDays        int
	BasePrice         float64
	EnhancementsPrice float64
	TotalPrice        float64

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
