package timezone

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"agendo/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	locationMu    sync.RWMutex
	locationCache = map[string]*time.Location{}
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'America/Sao_Paulo', 'UTC', 'America/New_York'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Location resolves a named timezone, falling back to the application timezone
// when the name is empty or unknown. Lookups are cached.
func Location(name string) *time.Location {
	if name == "" {
		return GetLocation()
	}

	locationMu.RLock()
	loc, ok := locationCache[name]
	locationMu.RUnlock()

	if ok {
		return loc
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("Unknown timezone, falling back to application timezone")

		return GetLocation()
	}

	locationMu.Lock()
	locationCache[name] = loc
	locationMu.Unlock()

	return loc
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, parsing in UTC")
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, appLocation)
}

// ParseDate parses a YYYY-MM-DD string as midnight in the given location.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// AtClock returns the absolute instant for the wall-clock time "HH:MM" or
// "HH:MM:SS" on the calendar day of date, in the given location. Around DST
// transitions time.Date normalizes skipped or ambiguous wall-clock times to a
// single instant, so the conversion never fails for a well-formed clock string.
func AtClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	hour, minute, second, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	local := date.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, second, 0, loc), nil
}

// WeekdayIndex returns the local weekday of t in loc, 0=Sunday .. 6=Saturday.
func WeekdayIndex(t time.Time, loc *time.Location) int {
	return int(t.In(loc).Weekday())
}

// DayString returns the local YYYY-MM-DD date of t in loc.
func DayString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// ClockString returns the local HH:MM wall-clock of t in loc.
func ClockString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func parseClock(clock string) (hour, minute, second int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid clock time %q: expected HH:MM or HH:MM:SS", clock)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, 0, fmt.Errorf("invalid hour in clock time %q", clock)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, 0, fmt.Errorf("invalid minute in clock time %q", clock)
	}

	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return 0, 0, 0, fmt.Errorf("invalid second in clock time %q", clock)
		}
	}

	return hour, minute, second, nil
}
