package rentalapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalCalendar/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, logger.NewNop())
}

func TestGetVehicleBookings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/vehicles/7/bookings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "pickup_date": "2024-06-10", "return_date": "2024-06-12", "status": "CONFIRMED", "user_name": "Ann"},
			{"id": 2, "pickup_date": "2024-06-20T00:00:00Z", "return_date": "2024-06-21T00:00:00Z", "status": "PENDING"}
		]`))
	})

	bookings, err := client.GetVehicleBookings(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, Booking{ID: 1, PickupDate: "2024-06-10", ReturnDate: "2024-06-12", Status: "CONFIRMED", UserName: "Ann"}, bookings[0])
	assert.Equal(t, "2024-06-20T00:00:00Z", bookings[1].PickupDate)
}

func TestCheckAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehicles/7/availability", r.URL.Path)
		assert.Equal(t, "2024-06-10", r.URL.Query().Get("pickup_date"))
		assert.Equal(t, "2024-06-12", r.URL.Query().Get("return_date"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"available":           false,
			"message":             "Vehicle is already booked from 2024-06-11 to 2024-06-13.",
			"next_available_date": "2024-06-14",
		})
	})

	availability, err := client.CheckAvailability(context.Background(), 7, "2024-06-10", "2024-06-12")
	require.NoError(t, err)
	assert.False(t, availability.Available)
	require.NotNil(t, availability.Message)
	require.NotNil(t, availability.NextAvailableDate)
	assert.Equal(t, "2024-06-14", *availability.NextAvailableDate)
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"return_date is required"}`, wantErr: ErrBadRequest, wantMsg: "return_date is required"},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"vehicle not found"}`, wantErr: ErrVehicleNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: ErrInvalidResponse, wantMsg: "oops"},
		{name: "broken json", status: http.StatusOK, body: `{"available":`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.CheckAvailability(context.Background(), 1, "2024-06-10", "2024-06-12")
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := NewClient(baseURL, time.Second, logger.NewNop())
	_, err := client.GetVehicleBookings(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
