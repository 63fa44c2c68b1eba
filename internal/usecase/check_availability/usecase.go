package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/ptr"
)

// UseCase авторитетная проверка доступности автомобиля на даты
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: vehicle=%d, pickup=%s, return=%s",
		req.VehicleID, req.PickupDate, req.ReturnDate)

	// 1. Валидация входных данных
	pickup, ret, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Активные бронирования, заканчивающиеся не раньше даты получения
	bookings, err := uc.bookingRepo.GetByVehicleWithFilter(ctx, domain.VehicleBookingsFilter{
		VehicleID: req.VehicleID,
		From:      &pickup,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for vehicle=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Ищем пересечение
	conflict := findConflict(bookings, pickup, ret)
	if conflict == nil {
		return &Response{Available: true}, nil
	}

	// 4. Ближайшая свободная дата той же длительности
	next := nextAvailableDate(bookings, pickup, ret)

	uc.logger.Info("CheckAvailability: vehicle=%d unavailable, conflict booking id=%d (%s..%s), next available %s",
		req.VehicleID, conflict.ID, conflict.PickupDate, conflict.ReturnDate, next)

	return &Response{
		Available:         false,
		Message:           ptr.Ptr(fmt.Sprintf("Vehicle is already booked from %s to %s.", conflict.PickupDate, conflict.ReturnDate)),
		NextAvailableDate: &next,
	}, nil
}
