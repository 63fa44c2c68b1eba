package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalCalendar/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalCalendar/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями автомобилей
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	now         func() time.Time
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		now:         time.Now,
		logger:      logger,
	}
}

// ListVehicleBookings возвращает активные бронирования автомобиля
func (s *Service) ListVehicleBookings(ctx context.Context, vehicleID int64) ([]models.VehicleBooking, error) {
	bookings, err := s.activeBookings(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListVehicleBookings: fetched %d bookings for vehicle=%d", len(bookings), vehicleID)
	return models.FromDomainVehicleBookings(bookings), nil
}

// ExportICS возвращает активные бронирования автомобиля в формате iCalendar
func (s *Service) ExportICS(ctx context.Context, vehicleID int64) (string, error) {
	bookings, err := s.activeBookings(ctx, vehicleID)
	if err != nil {
		return "", err
	}

	s.logger.Info("ExportICS: exporting %d bookings for vehicle=%d", len(bookings), vehicleID)
	return buildCalendar(vehicleID, bookings, s.now().UTC()), nil
}

func (s *Service) activeBookings(ctx context.Context, vehicleID int64) ([]*domain.Booking, error) {
	if vehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByVehicleWithFilter(ctx, domain.VehicleBookingsFilter{VehicleID: vehicleID})
	if err != nil {
		s.logger.Error("activeBookings: repository error for vehicle=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: activeBookings - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// GetByID получает бронирование по ID.
// Пользователь может видеть только своё бронирование.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование владельца; даты автомобиля освобождаются
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getOwned(txCtx, bookingID, userID)
		if err != nil {
			return err
		}

		// Проверяем, можно ли отменить бронирование
		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// getOwned получает бронирование и проверяет, что оно принадлежит пользователю
func (s *Service) getOwned(ctx context.Context, id int64, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getOwned: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getOwned: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwned - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("getOwned: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
