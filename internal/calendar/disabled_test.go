package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
)

func TestBuildDisabledSetInclusiveInterval(t *testing.T) {
	minDate := d("2024-06-01")
	set := BuildDisabledSet([]domain.BookingInterval{
		{ID: 1, PickupDate: d("2024-06-10"), ReturnDate: d("2024-06-12")},
	}, minDate)

	assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-12"}, set.Keys())

	assert.False(t, set.IsDisabled(d("2024-06-09")))
	assert.True(t, set.IsDisabled(d("2024-06-10")))
	assert.True(t, set.IsDisabled(d("2024-06-12")))
	assert.False(t, set.IsDisabled(d("2024-06-13")))

	// всё, что раньше minDate
	assert.True(t, set.IsDisabled(d("2024-05-31")))
	assert.True(t, set.IsDisabled(d("2023-12-25")))
	assert.False(t, set.IsDisabled(minDate))
	assert.False(t, set.IsBooked(d("2024-05-31")))
}

func TestBuildDisabledSetEmptyListOnlyAppliesFloor(t *testing.T) {
	set := BuildDisabledSet(nil, d("2024-06-15"))

	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Keys())
	assert.True(t, set.IsDisabled(d("2024-06-14")))
	assert.False(t, set.IsDisabled(d("2024-06-15")))
	assert.False(t, set.IsDisabled(d("2030-01-01")))
}

func TestBuildDisabledSetAcrossMonthAndDaylightSaving(t *testing.T) {
	set := BuildDisabledSet([]domain.BookingInterval{
		{ID: 1, PickupDate: d("2024-03-09"), ReturnDate: d("2024-03-11")},
		{ID: 2, PickupDate: d("2024-10-30"), ReturnDate: d("2024-11-02")},
	}, d("2024-01-01"))

	assert.Equal(t, []string{
		"2024-03-09", "2024-03-10", "2024-03-11",
		"2024-10-30", "2024-10-31", "2024-11-01", "2024-11-02",
	}, set.Keys())
}

func TestBuildDisabledSetIsIdempotentAndOrderIndependent(t *testing.T) {
	intervals := []domain.BookingInterval{
		{ID: 1, PickupDate: d("2024-06-10"), ReturnDate: d("2024-06-12")},
		{ID: 2, PickupDate: d("2024-06-11"), ReturnDate: d("2024-06-15")},
		{ID: 3, PickupDate: d("2024-07-01"), ReturnDate: d("2024-07-01")},
	}
	reversed := []domain.BookingInterval{intervals[2], intervals[1], intervals[0]}

	first := BuildDisabledSet(intervals, d("2024-06-01"))
	second := BuildDisabledSet(intervals, d("2024-06-01"))
	third := BuildDisabledSet(reversed, d("2024-06-01"))

	assert.ElementsMatch(t, first.Keys(), second.Keys())
	assert.ElementsMatch(t, first.Keys(), third.Keys())
	assert.Equal(t, 7, first.Len())
}

func TestNormalizeBookings(t *testing.T) {
	records := []RawBooking{
		{ID: 1, PickupDate: "2024-06-10", ReturnDate: "2024-06-12", Status: "CONFIRMED", UserName: "A"},
		{ID: 2, PickupDate: "2024-06-20T09:00:00Z", ReturnDate: "2024-06-21T18:00:00+02:00", Status: "PENDING"},
		{ID: 3, PickupDate: "not-a-date", ReturnDate: "2024-06-12", Status: "CONFIRMED"},
		{ID: 4, PickupDate: "2024-06-15", ReturnDate: "2024-06-14", Status: "ACTIVE"},
		{ID: 5, PickupDate: "2024-06-25", ReturnDate: "2024-06-26", Status: "cancelled"},
		{ID: 6, PickupDate: "2024-06-28", ReturnDate: "2024/06/29", Status: "CONFIRMED"},
	}

	intervals, rejected := NormalizeBookings(records)

	require.Len(t, intervals, 2)
	assert.Equal(t, int64(1), intervals[0].ID)
	assert.Equal(t, "A", intervals[0].RenterLabel)
	assert.Equal(t, domain.StatusConfirmed, intervals[0].Status)
	assert.Equal(t, "2024-06-20", intervals[1].PickupDate.Key())
	assert.Equal(t, "2024-06-21", intervals[1].ReturnDate.Key())

	require.Len(t, rejected, 3)
	ids := []int64{rejected[0].ID, rejected[1].ID, rejected[2].ID}
	assert.Equal(t, []int64{3, 4, 6}, ids)
	assert.True(t, errors.Is(rejected[0].Reason, ErrMalformedRecord))
	assert.True(t, errors.Is(rejected[1].Reason, ErrInvertedInterval))
	assert.True(t, errors.Is(rejected[2].Reason, ErrMalformedRecord))

	set := BuildDisabledSet(intervals, d("2024-06-01"))
	assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-20", "2024-06-21"}, set.Keys())
}

func TestNormalizeBookingsRejectsOverlongInterval(t *testing.T) {
	records := []RawBooking{
		{ID: 1, PickupDate: "0001-01-01", ReturnDate: "9999-12-31", Status: "CONFIRMED"},
		{ID: 2, PickupDate: "2024-06-01", ReturnDate: "2024-09-01", Status: "CONFIRMED"},
		{ID: 3, PickupDate: "2024-06-01", ReturnDate: "2024-08-30", Status: "CONFIRMED"},
	}

	intervals, rejected := NormalizeBookings(records)

	require.Len(t, intervals, 1)
	assert.Equal(t, int64(3), intervals[0].ID)

	require.Len(t, rejected, 2)
	assert.Equal(t, int64(1), rejected[0].ID)
	assert.True(t, errors.Is(rejected[0].Reason, ErrIntervalTooLong))
	assert.Equal(t, int64(2), rejected[1].ID)
	assert.True(t, errors.Is(rejected[1].Reason, ErrIntervalTooLong))
}

func TestBuildDisabledSetStartsAtMinDate(t *testing.T) {
	set := BuildDisabledSet([]domain.BookingInterval{
		{ID: 1, PickupDate: d("2024-05-20"), ReturnDate: d("2024-06-02")},
		{ID: 2, PickupDate: d("2024-04-01"), ReturnDate: d("2024-04-05")},
	}, d("2024-06-01"))

	assert.Equal(t, []string{"2024-06-01", "2024-06-02"}, set.Keys())
	assert.True(t, set.IsDisabled(d("2024-05-25")))
	assert.True(t, set.IsDisabled(d("2024-04-03")))
	assert.False(t, set.IsDisabled(d("2024-06-03")))
}
