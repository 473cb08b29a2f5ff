package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendo/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(name)
	require.NoError(t, err)

	return loc
}

func TestAtClock(t *testing.T) {
	newYork := mustLocation(t, "America/New_York")
	saoPaulo := mustLocation(t, "America/Sao_Paulo")

	tests := []struct {
		name    string
		date    time.Time
		clock   string
		loc     *time.Location
		wantUTC time.Time
	}{
		{
			name:    "HH:MM in UTC",
			date:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			clock:   "09:30",
			loc:     time.UTC,
			wantUTC: time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "HH:MM:SS in UTC",
			date:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			clock:   "09:30:45",
			loc:     time.UTC,
			wantUTC: time.Date(2026, 9, 7, 9, 30, 45, 0, time.UTC),
		},
		{
			name:    "offset zone",
			date:    time.Date(2026, 9, 7, 0, 0, 0, 0, saoPaulo),
			clock:   "09:00",
			loc:     saoPaulo,
			wantUTC: time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "date carried across zones keeps the local calendar day",
			// 23:00 UTC on Sep 6 is already Sep 6 20:00 in Sao Paulo.
			date:    time.Date(2026, 9, 6, 23, 0, 0, 0, time.UTC),
			clock:   "10:00",
			loc:     saoPaulo,
			wantUTC: time.Date(2026, 9, 6, 13, 0, 0, 0, time.UTC),
		},
		{
			name: "spring forward skips the wall clock",
			// 02:30 does not exist on 2026-03-08 in New York. Both zone
			// interpretations (02:30 EST and 03:30 EDT) land on the same
			// instant, 07:30 UTC.
			date:    time.Date(2026, 3, 8, 0, 0, 0, 0, newYork),
			clock:   "02:30",
			loc:     newYork,
			wantUTC: time.Date(2026, 3, 8, 7, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.AtClock(tt.date, tt.clock, tt.loc)

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.wantUTC), "got %v, want %v", got, tt.wantUTC)
		})
	}
}

func TestAtClock_FallBackAmbiguity(t *testing.T) {
	newYork := mustLocation(t, "America/New_York")

	// 01:30 happens twice on 2026-11-01 in New York. time.Date picks one of
	// the two instants; either is acceptable, the wall clock must hold.
	date := time.Date(2026, 11, 1, 0, 0, 0, 0, newYork)

	got, err := timezone.AtClock(date, "01:30", newYork)
	require.NoError(t, err)

	assert.Equal(t, "01:30", timezone.ClockString(got, newYork))
	assert.Equal(t, "2026-11-01", timezone.DayString(got, newYork))

	edt := time.Date(2026, 11, 1, 5, 30, 0, 0, time.UTC)
	est := time.Date(2026, 11, 1, 6, 30, 0, 0, time.UTC)
	assert.True(t, got.Equal(edt) || got.Equal(est), "got %v, want %v or %v", got, edt, est)
}

func TestAtClock_RejectsMalformedClocks(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		clock string
	}{
		{name: "empty", clock: ""},
		{name: "no separator", clock: "0930"},
		{name: "too many parts", clock: "09:30:00:00"},
		{name: "hour out of range", clock: "24:00"},
		{name: "negative hour", clock: "-1:00"},
		{name: "minute out of range", clock: "09:60"},
		{name: "second out of range", clock: "09:30:60"},
		{name: "not a number", clock: "ab:cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := timezone.AtClock(date, tt.clock, time.UTC)

			assert.Error(t, err)
		})
	}
}

func TestParseDate(t *testing.T) {
	saoPaulo := mustLocation(t, "America/Sao_Paulo")

	day, err := timezone.ParseDate("2026-09-07", saoPaulo)
	require.NoError(t, err)

	assert.True(t, day.Equal(time.Date(2026, 9, 7, 0, 0, 0, 0, saoPaulo)))
	assert.Equal(t, saoPaulo, day.Location())

	_, err = timezone.ParseDate("07/09/2026", saoPaulo)
	assert.Error(t, err)
}

func TestWeekdayIndex(t *testing.T) {
	saoPaulo := mustLocation(t, "America/Sao_Paulo")

	// 2026-09-06 is a Sunday, 2026-09-07 a Monday.
	sunday := time.Date(2026, 9, 6, 12, 0, 0, 0, saoPaulo)
	assert.Equal(t, 0, timezone.WeekdayIndex(sunday, saoPaulo))

	monday := time.Date(2026, 9, 7, 12, 0, 0, 0, saoPaulo)
	assert.Equal(t, 1, timezone.WeekdayIndex(monday, saoPaulo))

	// 01:00 UTC on Monday is still Sunday evening in Sao Paulo.
	lateSunday := time.Date(2026, 9, 7, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, timezone.WeekdayIndex(lateSunday, saoPaulo))
	assert.Equal(t, 1, timezone.WeekdayIndex(lateSunday, time.UTC))
}

func TestDayAndClockStrings(t *testing.T) {
	saoPaulo := mustLocation(t, "America/Sao_Paulo")

	instant := time.Date(2026, 9, 7, 1, 15, 0, 0, time.UTC)

	assert.Equal(t, "2026-09-07", timezone.DayString(instant, time.UTC))
	assert.Equal(t, "01:15", timezone.ClockString(instant, time.UTC))

	assert.Equal(t, "2026-09-06", timezone.DayString(instant, saoPaulo))
	assert.Equal(t, "22:15", timezone.ClockString(instant, saoPaulo))
}

func TestStartOfDay(t *testing.T) {
	saoPaulo := mustLocation(t, "America/Sao_Paulo")

	instant := time.Date(2026, 9, 7, 1, 15, 0, 0, time.UTC)

	start := timezone.StartOfDay(instant, saoPaulo)
	assert.True(t, start.Equal(time.Date(2026, 9, 6, 0, 0, 0, 0, saoPaulo)))

	// Already-midnight input is a fixed point.
	assert.True(t, timezone.StartOfDay(start, saoPaulo).Equal(start))
}

func TestAtClock_SpanSurvivesDSTDay(t *testing.T) {
	newYork := mustLocation(t, "America/New_York")

	// A fixed span added to a slot start stays that span in absolute time
	// even when the calendar day loses an hour of wall clock.
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, newYork)

	start, err := timezone.AtClock(date, "01:00", newYork)
	require.NoError(t, err)

	end := start.Add(90 * time.Minute)
	assert.Equal(t, 90*time.Minute, end.Sub(start))

	// 01:00 EST plus 90 minutes of real time reads 03:30 EDT on the wall.
	assert.Equal(t, "03:30", timezone.ClockString(end, newYork))
}
