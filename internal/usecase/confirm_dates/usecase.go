package confirm_dates

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-RentalCalendar/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-RentalCalendar/pkg/metrics"
)

// UseCase сверяет выбранные даты с API бронирований перед переходом
// к следующему шагу мастера
type UseCase struct {
	client   AvailabilityClient
	metrics  Metrics
	inFlight singleflight.Group
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AvailabilityClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет проверку. Одновременные проверки одних и тех же дат
// одного автомобиля выполняют один запрос.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmDates: vehicle=%d, pickup=%s, return=%s", req.VehicleID, req.PickupDate, req.ReturnDate)

	// 1. Валидация выбора
	message, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ConfirmDates: validation failed: %v", err)
		return nil, err
	}
	if message != "" {
		return &Response{Proceed: false, Message: message}, nil
	}

	// 2. Один запрос на ключ; отключение первого клиента не отменяет общую проверку
	key := fmt.Sprintf("%d|%s|%s", req.VehicleID, req.PickupDate, req.ReturnDate)
	checkCtx := context.WithoutCancel(ctx)
	v, err, shared := uc.inFlight.Do(key, func() (interface{}, error) {
		return uc.client.CheckAvailability(checkCtx, req.VehicleID, req.PickupDate, req.ReturnDate)
	})
	if shared {
		uc.logger.Info("ConfirmDates: vehicle=%d joined in-flight check %s", req.VehicleID, key)
	}

	availability, ok := v.(*rentalapi.Availability)
	if err == nil && (!ok || availability == nil) {
		err = errEmptyAvailability
	}

	// 3. Ошибка проверки не блокирует бронирование
	if err != nil {
		uc.logger.Error("ConfirmDates: availability check failed for vehicle=%d, proceeding without it: %v", req.VehicleID, err)
		uc.metrics.RecordAvailabilityCheck(metrics.AvailabilityFailedOpen)
		return &Response{Proceed: true, Degraded: true}, nil
	}

	if availability.Available {
		uc.metrics.RecordAvailabilityCheck(metrics.AvailabilityAvailable)
		return &Response{Proceed: true}, nil
	}

	// 4. Даты заняты
	uc.metrics.RecordAvailabilityCheck(metrics.AvailabilityUnavailable)

	message = MessageUnavailable
	if availability.Message != nil && *availability.Message != "" {
		message = *availability.Message
	}
	if availability.NextAvailableDate != nil && *availability.NextAvailableDate != "" {
		message += " Next available: " + *availability.NextAvailableDate
	}

	uc.logger.Info("ConfirmDates: vehicle=%d not available: %s", req.VehicleID, message)

	return &Response{
		Proceed:           false,
		Message:           message,
		NextAvailableDate: availability.NextAvailableDate,
	}, nil
}
