package leave

import (
	"testing"
	"time"

	"github.com/lumina-hr/payroll-backend-go/internal/service/calendar"
	"github.com/stretchr/testify/assert"
)

// Week of 2026-03-02 (Mon) through 2026-03-08 (Sun).
// 2026-03-04 (Wed) is a holiday, 2026-03-07 (Sat) is a make-up workday.
func testCalendar() calendar.Calendar {
	return calendar.Calendar{
		Holidays:       map[string]bool{"2026-03-04": true},
		MakeupWorkdays: map[string]bool{"2026-03-07": true},
	}
}

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 3, day, hour, minute, 0, 0, time.UTC)
}

func TestComputeHours(t *testing.T) {
	calFor := func(year int) calendar.Calendar { return testCalendar() }

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{
			name:  "end before start",
			start: at(3, 10, 0),
			end:   at(2, 10, 0),
			want:  0,
		},
		{
			name:  "zero length",
			start: at(2, 10, 0),
			end:   at(2, 10, 0),
			want:  0,
		},
		{
			name:  "morning block",
			start: at(2, 9, 0),
			end:   at(2, 12, 0),
			want:  3,
		},
		{
			name:  "lunch not billed",
			start: at(2, 10, 0),
			end:   at(2, 15, 0),
			want:  4,
		},
		{
			name:  "half hour granularity",
			start: at(2, 9, 30),
			end:   at(2, 12, 0),
			want:  2.5,
		},
		{
			name:  "full day marker single workday",
			start: at(2, 0, 0),
			end:   at(2, 23, 59),
			want:  8,
		},
		{
			name:  "full day across holiday",
			start: at(2, 0, 0),
			end:   at(4, 23, 59),
			want:  16,
		},
		{
			name:  "full day week skips weekend keeps makeup saturday",
			start: at(2, 0, 0),
			end:   at(8, 23, 59),
			want:  40,
		},
		{
			name:  "weekend only leave",
			start: at(8, 0, 0),
			end:   at(8, 23, 59),
			want:  0,
		},
		{
			name:  "makeup saturday counts",
			start: at(7, 0, 0),
			end:   at(7, 23, 59),
			want:  8,
		},
		{
			name:  "partial spanning two days",
			start: at(2, 15, 0),
			end:   at(3, 10, 0),
			want:  4,
		},
		{
			name:  "partial spanning holiday",
			start: at(3, 15, 0),
			end:   at(5, 10, 0),
			want:  4,
		},
		{
			name:  "outside working hours",
			start: at(2, 18, 0),
			end:   at(2, 20, 0),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHours(tt.start, tt.end, calFor)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeHoursMonotonicInEnd(t *testing.T) {
	calFor := func(year int) calendar.Calendar { return testCalendar() }
	start := at(2, 9, 0)

	prev := 0.0
	for hour := 9; hour <= 17; hour++ {
		got := ComputeHours(start, at(2, hour, 0), calFor)
		assert.GreaterOrEqual(t, got, prev, "hours shrank when extending end to %02d:00", hour)
		prev = got
	}
}

func TestComputeHoursMultiYearSpan(t *testing.T) {
	calls := make(map[int]int)
	calFor := func(year int) calendar.Calendar {
		calls[year]++
		return calendar.Calendar{
			Holidays:       map[string]bool{},
			MakeupWorkdays: map[string]bool{},
		}
	}

	// Wed 2025-12-31 00:00 through Thu 2026-01-01, full-day marker.
	start := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)

	got := ComputeHours(start, end, calFor)
	assert.Equal(t, 16.0, got)
	assert.Equal(t, 1, calls[2025])
	assert.Equal(t, 1, calls[2026])
}
