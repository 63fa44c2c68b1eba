package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalCalendar/internal/domain"
	"github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"
)

func d(s string) calendardate.Date {
	parsed, err := calendardate.Parse(s)
	if err != nil {
		panic(err)
	}
	return parsed
}

var noDisabled = BuildDisabledSet(nil, calendardate.Date{})

func TestClickTransitionTable(t *testing.T) {
	tests := []struct {
		name        string
		mode        domain.SelectionMode
		current     Selection
		click       string
		wantNext    Selection
		wantEmitted string
	}{
		{
			name: "single from empty", mode: domain.ModeSingle,
			current: Empty(), click: "2024-06-10",
			wantNext: SingleSelected(d("2024-06-10")), wantEmitted: "2024-06-10",
		},
		{
			name: "single replaces previous", mode: domain.ModeSingle,
			current: SingleSelected(d("2024-06-10")), click: "2024-06-01",
			wantNext: SingleSelected(d("2024-06-01")), wantEmitted: "2024-06-01",
		},
		{
			name: "range from empty", mode: domain.ModeRange,
			current: Empty(), click: "2024-06-10",
			wantNext: RangeStart(d("2024-06-10")), wantEmitted: "2024-06-10",
		},
		{
			name: "range from complete restarts", mode: domain.ModeRange,
			current: RangeComplete(d("2024-06-10"), d("2024-06-12")), click: "2024-06-11",
			wantNext: RangeStart(d("2024-06-11")), wantEmitted: "2024-06-11",
		},
		{
			name: "range completes forward", mode: domain.ModeRange,
			current: RangeStart(d("2024-06-10")), click: "2024-06-14",
			wantNext: RangeComplete(d("2024-06-10"), d("2024-06-14")), wantEmitted: "2024-06-10 to 2024-06-14",
		},
		{
			name: "range completes on the same day", mode: domain.ModeRange,
			current: RangeStart(d("2024-06-10")), click: "2024-06-10",
			wantNext: RangeComplete(d("2024-06-10"), d("2024-06-10")), wantEmitted: "2024-06-10 to 2024-06-10",
		},
		{
			name: "range restarts when second click precedes first", mode: domain.ModeRange,
			current: RangeStart(d("2024-06-15")), click: "2024-06-10",
			wantNext: RangeStart(d("2024-06-10")), wantEmitted: "2024-06-10",
		},
		{
			name: "range ignores stale single selection", mode: domain.ModeRange,
			current: SingleSelected(d("2024-06-15")), click: "2024-06-20",
			wantNext: RangeStart(d("2024-06-20")), wantEmitted: "2024-06-20",
		},
		{
			name: "same-day from empty", mode: domain.ModeSameDay,
			current: Empty(), click: "2024-07-01",
			wantNext: RangeStart(d("2024-07-01")), wantEmitted: "2024-07-01",
		},
		{
			name: "same-day second click on other date restarts", mode: domain.ModeSameDay,
			current: RangeStart(d("2024-07-01")), click: "2024-07-02",
			wantNext: RangeStart(d("2024-07-02")), wantEmitted: "2024-07-02",
		},
		{
			name: "same-day earlier date restarts", mode: domain.ModeSameDay,
			current: RangeStart(d("2024-07-05")), click: "2024-07-01",
			wantNext: RangeStart(d("2024-07-01")), wantEmitted: "2024-07-01",
		},
		{
			name: "same-day second click on same date completes", mode: domain.ModeSameDay,
			current: RangeStart(d("2024-07-01")), click: "2024-07-01",
			wantNext: RangeComplete(d("2024-07-01"), d("2024-07-01")), wantEmitted: "2024-07-01 to 2024-07-01",
		},
		{
			name: "same-day from complete restarts", mode: domain.ModeSameDay,
			current: RangeComplete(d("2024-07-01"), d("2024-07-01")), click: "2024-07-01",
			wantNext: RangeStart(d("2024-07-01")), wantEmitted: "2024-07-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, emitted, ok := Click(tt.mode, tt.current, d(tt.click), noDisabled)
			require.True(t, ok)
			assert.Equal(t, tt.wantNext, next)
			assert.Equal(t, tt.wantEmitted, emitted)
			assert.Equal(t, tt.wantEmitted, next.Value())
		})
	}
}

func TestSameDayDistinctFromRange(t *testing.T) {
	// два разных дня: второй клик начинает выбор заново
	state, _, _ := Click(domain.ModeSameDay, Empty(), d("2024-07-01"), noDisabled)
	state, _, _ = Click(domain.ModeSameDay, state, d("2024-07-02"), noDisabled)
	assert.Equal(t, RangeStart(d("2024-07-02")), state)

	// один и тот же день дважды
	state, _, _ = Click(domain.ModeSameDay, Empty(), d("2024-07-01"), noDisabled)
	state, emitted, _ := Click(domain.ModeSameDay, state, d("2024-07-01"), noDisabled)
	assert.Equal(t, RangeComplete(d("2024-07-01"), d("2024-07-01")), state)
	assert.Equal(t, "2024-07-01 to 2024-07-01", emitted)
	assert.True(t, state.IsSameDay())
}

func TestDisabledClickIsNoop(t *testing.T) {
	disabled := BuildDisabledSet([]domain.BookingInterval{
		{ID: 1, PickupDate: d("2024-06-10"), ReturnDate: d("2024-06-12")},
	}, d("2024-06-05"))

	states := []Selection{
		Empty(),
		SingleSelected(d("2024-06-20")),
		RangeStart(d("2024-06-08")),
		RangeComplete(d("2024-06-06"), d("2024-06-08")),
	}
	clicks := []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-04", "2024-05-01"}

	for _, mode := range []domain.SelectionMode{domain.ModeSingle, domain.ModeRange, domain.ModeSameDay} {
		for _, current := range states {
			for _, click := range clicks {
				next, emitted, ok := Click(mode, current, d(click), disabled)
				assert.False(t, ok, "%s %v %s", mode, current, click)
				assert.Equal(t, current, next)
				assert.Empty(t, emitted)
			}
		}
	}

	// minDate сама по себе доступна
	_, _, ok := Click(domain.ModeSingle, Empty(), d("2024-06-05"), disabled)
	assert.True(t, ok)
}

func TestSelectionFromInputs(t *testing.T) {
	tests := []struct {
		name                 string
		mode                 domain.SelectionMode
		selected, start, end string
		want                 Selection
		wantErr              bool
	}{
		{name: "single empty", mode: domain.ModeSingle, want: Empty()},
		{name: "single", mode: domain.ModeSingle, selected: "2024-06-10", want: SingleSelected(d("2024-06-10"))},
		{name: "single ignores range inputs", mode: domain.ModeSingle, start: "2024-06-10", want: Empty()},
		{name: "range empty", mode: domain.ModeRange, want: Empty()},
		{name: "range start", mode: domain.ModeRange, start: "2024-06-10", want: RangeStart(d("2024-06-10"))},
		{name: "range complete", mode: domain.ModeSameDay, start: "2024-06-10", end: "2024-06-10", want: RangeComplete(d("2024-06-10"), d("2024-06-10"))},
		{name: "end without start", mode: domain.ModeRange, end: "2024-06-10", wantErr: true},
		{name: "inverted", mode: domain.ModeRange, start: "2024-06-10", end: "2024-06-09", wantErr: true},
		{name: "malformed", mode: domain.ModeRange, start: "10/06/2024", wantErr: true},
		{name: "malformed single", mode: domain.ModeSingle, selected: "2024-6-10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectionFromInputs(tt.mode, tt.selected, tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectionFromValueRoundTrip(t *testing.T) {
	for _, sel := range []Selection{
		RangeStart(d("2024-06-10")),
		RangeComplete(d("2024-06-10"), d("2024-06-14")),
	} {
		back, err := SelectionFromValue(domain.ModeRange, sel.Value())
		require.NoError(t, err)
		assert.Equal(t, sel, back)
	}

	back, err := SelectionFromValue(domain.ModeSingle, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, SingleSelected(d("2024-06-10")), back)

	_, err = SelectionFromValue(domain.ModeRange, "2024-06-14 to 2024-06-10")
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
