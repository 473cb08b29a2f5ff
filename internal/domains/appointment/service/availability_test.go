package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agendo/internal/domains/appointment/model"
	"agendo/internal/domains/appointment/service"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 7, hour, minute, 0, 0, time.UTC)
}

func interval(start, end time.Time) model.Interval {
	return model.Interval{Start: start, End: end}
}

func TestFreeSlots(t *testing.T) {
	step := 15 * time.Minute
	span := time.Hour

	tests := []struct {
		name     string
		dayStart time.Time
		dayEnd   time.Time
		span     time.Duration
		busy     []model.Interval
		want     []time.Time
	}{
		{
			name:     "empty day yields the full grid",
			dayStart: at(9, 0),
			dayEnd:   at(12, 0),
			span:     span,
			want: []time.Time{
				at(9, 0), at(9, 15), at(9, 30), at(9, 45),
				at(10, 0), at(10, 15), at(10, 30), at(10, 45),
				at(11, 0),
			},
		},
		{
			name:     "back to back bookings touch without overlapping",
			dayStart: at(9, 0),
			dayEnd:   at(12, 0),
			span:     span,
			busy:     []model.Interval{interval(at(10, 0), at(11, 0))},
			want:     []time.Time{at(9, 0), at(11, 0)},
		},
		{
			name:     "short busy block inside a candidate still blocks it",
			dayStart: at(9, 0),
			dayEnd:   at(12, 0),
			span:     span,
			busy:     []model.Interval{interval(at(10, 15), at(10, 30))},
			want:     []time.Time{at(9, 0), at(9, 15), at(10, 30), at(10, 45), at(11, 0)},
		},
		{
			name:     "span longer than the window yields nothing",
			dayStart: at(9, 0),
			dayEnd:   at(9, 30),
			span:     span,
			want:     []time.Time{},
		},
		{
			name:     "zero span yields nothing",
			dayStart: at(9, 0),
			dayEnd:   at(12, 0),
			span:     0,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.FreeSlots(tt.dayStart, tt.dayEnd, step, tt.span, tt.busy)

			assert.Equal(t, tt.want, got)
		})
	}
}

// The buffer extends the candidate's own span; stored neighbors are taken as
// they are.
func TestFreeSlots_BufferOnCandidateSide(t *testing.T) {
	step := 15 * time.Minute
	span := 75 * time.Minute // 60 minutes of work plus a 15 minute buffer

	busy := []model.Interval{interval(at(10, 30), at(11, 30))}

	got := service.FreeSlots(at(9, 0), at(13, 0), step, span, busy)

	assert.Equal(t, []time.Time{at(9, 0), at(9, 15), at(11, 30), at(11, 45)}, got)
}

// Brute-force cross check: every returned slot must be on the grid, fit the
// window, and clear every busy interval under the half-open test.
func TestFreeSlots_Properties(t *testing.T) {
	step := 15 * time.Minute
	span := 45 * time.Minute
	dayStart := at(8, 0)
	dayEnd := at(18, 0)

	busy := []model.Interval{
		interval(at(9, 0), at(9, 45)),
		interval(at(12, 10), at(12, 50)),
		interval(at(17, 0), at(18, 0)),
	}

	slots := service.FreeSlots(dayStart, dayEnd, step, span, busy)

	assert.NotEmpty(t, slots)

	for _, slot := range slots {
		assert.Zero(t, slot.Sub(dayStart)%step, "slot %s off the grid", slot)
		assert.False(t, slot.Add(span).After(dayEnd), "slot %s spills past the window", slot)

		candidate := interval(slot, slot.Add(span))
		for _, block := range busy {
			assert.False(t, candidate.Overlaps(block), "slot %s overlaps busy %v", slot, block)
		}
	}

	// Every grid candidate not returned must collide with something.
	returned := map[time.Time]bool{}
	for _, slot := range slots {
		returned[slot] = true
	}

	for start := dayStart; !start.Add(span).After(dayEnd); start = start.Add(step) {
		if returned[start] {
			continue
		}

		candidate := interval(start, start.Add(span))

		collides := false
		for _, block := range busy {
			if candidate.Overlaps(block) {
				collides = true

				break
			}
		}

		assert.True(t, collides, "free slot %s is missing from the result", start)
	}
}
