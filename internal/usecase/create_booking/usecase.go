package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// UseCase use case для создания бронирования автомобиля
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location задаёт зону, в которой считается "сегодня".
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка выполняются в сериализуемой транзакции,
// exclusion constraint в БД страхует от гонки между транзакциями.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, vehicle=%d, pickup=%s, return=%s",
		req.UserID, req.VehicleID, req.PickupDate, req.ReturnDate)

	// 1. Валидация входных данных
	pickup, ret, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем даты относительно сегодняшнего дня
	today := calendardate.Today(uc.timeProvider.Now(), uc.location)
	if err := validateDates(pickup, ret, today); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Считаем цену
	quote := domain.QuotePrice(req.PricePerDay, pickup, ret, req.Enhancements)

	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Активные бронирования автомобиля, пересекающиеся с периодом (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByVehicleWithFilter(txCtx, domain.VehicleBookingsFilter{
			VehicleID: req.VehicleID,
			From:      &pickup,
			To:        &ret,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.2. Проверяем пересечение
		if hasOverlap(bookings, pickup, ret) {
			uc.logger.Warn("CreateBooking: vehicle=%d already booked within %s..%s", req.VehicleID, pickup, ret)
			return ErrDatesUnavailable
		}

		// 4.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			VehicleID:         req.VehicleID,
			UserID:            req.UserID,
			UserName:          req.UserName,
			PickupDate:        pickup,
			ReturnDate:        ret,
			PickupLocation:    req.PickupLocation,
			ReturnLocation:    req.ReturnLocation,
			Enhancements:      req.Enhancements,
			BasePrice:         quote.BasePrice,
			EnhancementsPrice: quote.EnhancementsPrice,
			TotalPrice:        quote.Total,
			Status:            domain.StatusPending,
			Notes:             req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конкурентная транзакция заняла те же даты
		if isConflictError(err) {
			uc.logger.Warn("CreateBooking: concurrent booking for vehicle=%d %s..%s: %v", req.VehicleID, pickup, ret, err)
			return nil, fmt.Errorf("%w: %s..%s", ErrDatesUnavailable, pickup, ret)
		}
		if err != ErrDatesUnavailable {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)

	return &Response{
		ID:                result.ID,
		UserID:            result.UserID,
		UserName:          result.UserName,
		VehicleID:         result.VehicleID,
		PickupDate:        result.PickupDate,
		ReturnDate:        result.ReturnDate,
		PickupLocation:    result.PickupLocation,
		ReturnLocation:    result.ReturnLocation,
		Enhancements:      result.Enhancements,
		Status:            string(result.Status),
		RentalDays:        quote.Days,
		BasePrice:         result.BasePrice,
		EnhancementsPrice: result.EnhancementsPrice,
		TotalPrice:        result.TotalPrice,
		Notes:             result.Notes,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}
