package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-RentalCalendar/internal/service/bookings"
	"github.com/m04kA/SMC-RentalCalendar/pkg/logger"
)

type fakeService struct {
	err       error
	bookingID int64
	userID    int64
}

func (f *fakeService) Cancel(ctx context.Context, bookingID int64, userID int64) error {
	f.bookingID, f.userID = bookingID, userID
	return f.err
}

func serve(svc BookingService, target, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodPatch, target, nil)
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/bookings/15/cancel", "42")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(15), svc.bookingID)
	assert.Equal(t, int64(42), svc.userID)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		userID string
		err    error
		status int
	}{
		{name: "no user", target: "/bookings/15/cancel", status: http.StatusUnauthorized},
		{name: "bad id", target: "/bookings/abc/cancel", userID: "42", status: http.StatusBadRequest},
		{name: "not found", target: "/bookings/15/cancel", userID: "42", err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "other owner", target: "/bookings/15/cancel", userID: "42", err: bookings.ErrAccessDenied, status: http.StatusForbidden},
		{name: "wrong status", target: "/bookings/15/cancel", userID: "42", err: bookings.ErrCannotCancel, status: http.StatusConflict},
		{name: "internal", target: "/bookings/15/cancel", userID: "42", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.target, tt.userID)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
