package confirm_dates

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalCalendar/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-RentalCalendar/pkg/logger"
	"github.com/m04kA/SMC-RentalCalendar/pkg/metrics"
	"github.com/m04kA/SMC-RentalCalendar/pkg/ptr"
)

type fakeClient struct {
	calls        atomic.Int32
	availability *rentalapi.Availability
	err          error
	started      chan struct{}
	release      chan struct{}
}

func (f *fakeClient) CheckAvailability(ctx context.Context, vehicleID int64, pickupDate, returnDate string) (*rentalapi.Availability, error) {
	if f.calls.Add(1) == 1 && f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.availability, f.err
}

type fakeMetrics struct {
	mu      sync.Mutex
	results []string
}

func (f *fakeMetrics) RecordAvailabilityCheck(result string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, result)
}

func TestExecuteSelectionMessages(t *testing.T) {
	tests := []struct {
		name        string
		pickup, ret string
		wantMessage string
	}{
		{name: "no pickup", wantMessage: MessagePickupRequired},
		{name: "no return", pickup: "2024-06-10", wantMessage: MessageReturnRequired},
		{name: "return before pickup", pickup: "2024-06-10", ret: "2024-06-09", wantMessage: MessageReturnBefore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			uc := NewUseCase(client, &fakeMetrics{}, logger.NewNop())

			resp, err := uc.Execute(context.Background(), &Request{VehicleID: 7, PickupDate: tt.pickup, ReturnDate: tt.ret})
			require.NoError(t, err)
			assert.False(t, resp.Proceed)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Zero(t, client.calls.Load())
		})
	}
}

func TestExecuteAvailable(t *testing.T) {
	client := &fakeClient{availability: &rentalapi.Availability{Available: true}}
	m := &fakeMetrics{}
	uc := NewUseCase(client, m, logger.NewNop())

	// возврат в день получения
	resp, err := uc.Execute(context.Background(), &Request{VehicleID: 7, PickupDate: "2024-06-10", ReturnDate: "2024-06-10"})
	require.NoError(t, err)
	assert.True(t, resp.Proceed)
	assert.False(t, resp.Degraded)
	assert.Empty(t, resp.Message)
	assert.Equal(t, []string{metrics.AvailabilityAvailable}, m.results)
}

func TestExecuteUnavailable(t *testing.T) {
	tests := []struct {
		name         string
		availability *rentalapi.Availability
		wantMessage  string
	}{
		{
			name:         "default message",
			availability: &rentalapi.Availability{},
			wantMessage:  MessageUnavailable,
		},
		{
			name: "backend message with next date",
			availability: &rentalapi.Availability{
				Message:           ptr.Ptr("Vehicle is already booked from 2024-06-11 to 2024-06-13."),
				NextAvailableDate: ptr.Ptr("2024-06-14"),
			},
			wantMessage: "Vehicle is already booked from 2024-06-11 to 2024-06-13. Next available: 2024-06-14",
		},
		{
			name:         "default message with next date",
			availability: &rentalapi.Availability{NextAvailableDate: ptr.Ptr("2024-06-14")},
			wantMessage:  MessageUnavailable + " Next available: 2024-06-14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			uc := NewUseCase(&fakeClient{availability: tt.availability}, m, logger.NewNop())

			resp, err := uc.Execute(context.Background(), &Request{VehicleID: 7, PickupDate: "2024-06-10", ReturnDate: "2024-06-12"})
			require.NoError(t, err)
			assert.False(t, resp.Proceed)
			assert.False(t, resp.Degraded)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.availability.NextAvailableDate, resp.NextAvailableDate)
			assert.Equal(t, []string{metrics.AvailabilityUnavailable}, m.results)
		})
	}
}

func TestExecuteFailsOpen(t *testing.T) {
	m := &fakeMetrics{}
	client := &fakeClient{err: errors.New("dial tcp: i/o timeout")}
	uc := NewUseCase(client, m, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{VehicleID: 7, PickupDate: "2024-06-10", ReturnDate: "2024-06-12"})
	require.NoError(t, err)
	assert.True(t, resp.Proceed)
	assert.True(t, resp.Degraded)
	assert.Equal(t, int32(1), client.calls.Load())
	assert.Equal(t, []string{metrics.AvailabilityFailedOpen}, m.results)
}

func TestExecuteRejectsMalformedDates(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, &fakeMetrics{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{VehicleID: 7, PickupDate: "10.06.2024", ReturnDate: "2024-06-12"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PickupDate: "2024-06-10", ReturnDate: "2024-06-12"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteSharesInFlightCheck(t *testing.T) {
	client := &fakeClient{
		availability: &rentalapi.Availability{Available: true},
		started:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	uc := NewUseCase(client, &fakeMetrics{}, logger.NewNop())
	req := &Request{VehicleID: 7, PickupDate: "2024-06-10", ReturnDate: "2024-06-12"}

	var wg sync.WaitGroup
	results := make([]*Response, 5)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = uc.Execute(context.Background(), req)
	}()
	<-client.started

	for i := 1; i < len(results); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = uc.Execute(context.Background(), req)
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(client.release)
	wg.Wait()

	assert.Equal(t, int32(1), client.calls.Load())
	for _, r := range results {
		require.NotNil(t, r)
		assert.True(t, r.Proceed)
	}
}

func TestExecuteJoinedCallerSurvivesFirstCallerCancel(t *testing.T) {
	client := &fakeClient{
		availability: &rentalapi.Availability{Available: true},
		started:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	m := &fakeMetrics{}
	uc := NewUseCase(client, m, logger.NewNop())
	req := &Request{VehicleID: 7, PickupDate: "2024-06-10", ReturnDate: "2024-06-12"}

	firstCtx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var first, joined *Response

	wg.Add(1)
	go func() {
		defer wg.Done()
		first, _ = uc.Execute(firstCtx, req)
	}()
	<-client.started

	wg.Add(1)
	go func() {
		defer wg.Done()
		joined, _ = uc.Execute(context.Background(), req)
	}()

	time.Sleep(50 * time.Millisecond)
	// первый клиент отключился до ответа бэкенда
	cancel()
	close(client.release)
	wg.Wait()

	assert.Equal(t, int32(1), client.calls.Load())
	require.NotNil(t, joined)
	assert.True(t, joined.Proceed)
	assert.False(t, joined.Degraded)
	require.NotNil(t, first)
	assert.False(t, first.Degraded)
	assert.NotContains(t, m.results, metrics.AvailabilityFailedOpen)
}

func TestExecuteEmptyAvailabilityFailsOpen(t *testing.T) {
	m := &fakeMetrics{}
	uc := NewUseCase(&fakeClient{}, m, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{VehicleID: 7, PickupDate: "2024-06-10", ReturnDate: "2024-06-12"})
	require.NoError(t, err)
	assert.True(t, resp.Proceed)
	assert.True(t, resp.Degraded)
	assert.Equal(t, []string{metrics.AvailabilityFailedOpen}, m.results)
}
