package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-RentalCalendar/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RentalCalendar/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDate        = "дата получения не может быть в прошлом"
	msgInvalidDateRange   = "дата возврата раньше даты получения"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgRentalTooLong      = "слишком длинный срок аренды"
	msgUnknownEnhancement = "неизвестная дополнительная услуга"
	msgDatesUnavailable   = "автомобиль недоступен на выбранные даты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDatesUnavailable):
			h.logger.Warn("POST /bookings - Dates unavailable: user_id=%d, vehicle_id=%d, %s..%s",
				userID, req.VehicleID, req.PickupDate, req.ReturnDate)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrRentalTooLong):
			handlers.RespondBadRequest(w, msgRentalTooLong)

		case errors.Is(err, createBooking.ErrUnknownEnhancement):
			handlers.RespondBadRequest(w, msgUnknownEnhancement)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, vehicle_id=%d, error=%v",
				userID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, vehicle_id=%d",
		result.ID, userID, result.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
