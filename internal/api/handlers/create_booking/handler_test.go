package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalCalendar/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RentalCalendar/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
	"github.com/m04kA/SMC-RentalCalendar/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*createBooking.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{
	"vehicle_id": 7,
	"user_name": "Alice",
	"pickup_date": "2024-06-10",
	"return_date": "2024-06-13",
	"pickup_location": "Airport",
	"return_location": "Downtown",
	"enhancements": ["GPS Navigation Pro"],
	"price_per_day": 1200
}`

func serve(t *testing.T, uc CreateBookingUseCase, body string, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &mockUseCase{}
	pickup, _ := calendardate.Parse("2024-06-10")
	ret, _ := calendardate.Parse("2024-06-13")
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.UserID == 42 && r.VehicleID == 7 && r.PickupDate == "2024-06-10" && len(r.Enhancements) == 1
	})).Return(&createBooking.Response{
		ID: 100, UserID: 42, VehicleID: 7, PickupDate: pickup, ReturnDate: ret,
		Status: "PENDING", RentalDays: 3, BasePrice: 3600, EnhancementsPrice: 75, TotalPrice: 3675,
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	rec := serve(t, uc, validBody, 42)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "2024-06-13", resp.ReturnDate)
	assert.Equal(t, 3675.0, resp.TotalPrice)
	assert.Equal(t, []string{}, resp.Enhancements)
	uc.AssertExpectations(t)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "conflict", err: fmt.Errorf("%w: overlap", createBooking.ErrDatesUnavailable), status: http.StatusConflict},
		{name: "past date", err: createBooking.ErrInvalidDate, status: http.StatusBadRequest},
		{name: "unknown enhancement", err: createBooking.ErrUnknownEnhancement, status: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(t, uc, validBody, 42)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandleRejectsBeforeUseCase(t *testing.T) {
	uc := &mockUseCase{}

	assert.Equal(t, http.StatusUnauthorized, serve(t, uc, validBody, 0).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, uc, `{"vehicle_id": 7}`, 42).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, uc, strings.Replace(validBody, "2024-06-13", "13.06.2024", 1), 42).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, uc, `not json`, 42).Code)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
