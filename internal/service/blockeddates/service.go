// Package blockeddates строит множество недоступных дат автомобиля
// из списка бронирований, полученного от API бронирований.
package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalCalendar/internal/calendar"
	"github.com/m04kA/SMC-RentalCalendar/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

// Service сервис недоступных дат
type Service struct {
	client       BookingsClient
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса.
// location задаёт зону, в которой считается "сегодня" для нижней границы.
func NewService(client BookingsClient, metrics Metrics, location *time.Location, logger Logger) *Service {
	return &Service{
		client:       client,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Today сегодняшняя дата в зоне календаря
func (s *Service) Today() calendardate.Date {
	return calendardate.Today(s.timeProvider.Now(), s.location)
}

// ResolveMinDate разбирает нижнюю границу; пустая строка означает "сегодня"
func (s *Service) ResolveMinDate(raw string) (calendardate.Date, error) {
	if raw == "" {
		return s.Today(), nil
	}

	minDate, err := calendardate.Parse(raw)
	if err != nil {
		return calendardate.Date{}, fmt.Errorf("%w: %v", ErrInvalidMinDate, err)
	}
	return minDate, nil
}

// Build загружает бронирования автомобиля и строит множество недоступных дат.
// Записи с некорректными датами пропускаются и логируются, остальные применяются.
func (s *Service) Build(ctx context.Context, vehicleID int64, minDate calendardate.Date) (calendar.DisabledSet, error) {
	records, err := s.client.GetVehicleBookings(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, rentalapi.ErrVehicleNotFound) {
			s.logger.Warn("Build: vehicle id=%d not found", vehicleID)
			return calendar.DisabledSet{}, ErrVehicleNotFound
		}
		s.logger.Error("Build: failed to fetch bookings for vehicle id=%d: %v", vehicleID, err)
		return calendar.DisabledSet{}, fmt.Errorf("%w: vehicle id=%d: %v", ErrBookingsUnavailable, vehicleID, err)
	}

	raw := make([]calendar.RawBooking, 0, len(records))
	for _, rec := range records {
		raw = append(raw, calendar.RawBooking{
			ID:         rec.ID,
			PickupDate: rec.PickupDate,
			ReturnDate: rec.ReturnDate,
			Status:     rec.Status,
			UserName:   rec.UserName,
		})
	}

	intervals, rejected := calendar.NormalizeBookings(raw)
	for _, r := range rejected {
		s.logger.Warn("Build: skipping booking id=%d of vehicle id=%d: %v", r.ID, vehicleID, r.Reason)
	}
	if len(rejected) > 0 {
		s.metrics.RecordRejectedBookingRecords(len(rejected))
	}

	set := calendar.BuildDisabledSet(intervals, minDate)

	s.logger.Info("Build: vehicle id=%d, %d bookings, %d booked dates, min date %s",
		vehicleID, len(intervals), set.Len(), minDate)

	return set, nil
}
