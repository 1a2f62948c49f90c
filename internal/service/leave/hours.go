package leave

import (
	"context"
	"math"
	"time"

	"github.com/lumina-hr/payroll-backend-go/internal/service/calendar"
)

// Scheduled shift: 08:00-17:00 with a 12:00-13:00 unpaid lunch.
const (
	workStartHour  = 8
	lunchStartHour = 12
	lunchEndHour   = 13
	workEndHour    = 17
)

// HourCalculator computes billable leave hours against the public holiday
// calendar.
type HourCalculator struct {
	resolver *calendar.Resolver
}

func NewHourCalculator(resolver *calendar.Resolver) *HourCalculator {
	return &HourCalculator{resolver: resolver}
}

func (c *HourCalculator) Hours(ctx context.Context, start, end time.Time) float64 {
	return ComputeHours(start, end, func(year int) calendar.Calendar {
		return c.resolver.Resolve(ctx, year)
	})
}

// ComputeHours walks the calendar days covered by [start, end], skipping
// weekends and holidays unless designated as make-up workdays, and sums the
// overlap with the morning and afternoon blocks of each counted day. A start
// at exactly 00:00 marks a full-day leave and expands every counted day to
// the full scheduled shift regardless of the literal end timestamp. The
// result is rounded to 2 decimal places.
func ComputeHours(start, end time.Time, calendarFor func(year int) calendar.Calendar) float64 {
	if end.Before(start) {
		return 0
	}

	fullDay := start.Hour() == 0 && start.Minute() == 0 && start.Second() == 0
	if !fullDay && !end.After(start) {
		return 0
	}

	startDate := dateOf(start)
	endDate := dateOf(end)

	// Multi-year spans resolve the calendar of every year touched.
	calendars := make(map[int]calendar.Calendar)
	calFor := func(year int) calendar.Calendar {
		cal, ok := calendars[year]
		if !ok {
			cal = calendarFor(year)
			calendars[year] = cal
		}
		return cal
	}

	total := 0.0
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		if !calFor(d.Year()).IsWorkday(d) {
			continue
		}

		if fullDay {
			total += float64(lunchStartHour-workStartHour) + float64(workEndHour-lunchEndHour)
			continue
		}

		dayStart := clockOn(d, workStartHour)
		dayEnd := clockOn(d, workEndHour)
		if d.Equal(startDate) && start.After(dayStart) {
			dayStart = start
		}
		if d.Equal(endDate) && end.Before(dayEnd) {
			dayEnd = end
		}

		total += overlapHours(dayStart, dayEnd, clockOn(d, workStartHour), clockOn(d, lunchStartHour))
		total += overlapHours(dayStart, dayEnd, clockOn(d, lunchEndHour), clockOn(d, workEndHour))
	}

	return math.Round(total*100) / 100
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clockOn(d time.Time, hour int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

func overlapHours(s, e, blockStart, blockEnd time.Time) float64 {
	lo := s
	if blockStart.After(lo) {
		lo = blockStart
	}
	hi := e
	if blockEnd.Before(hi) {
		hi = blockEnd
	}
	if !hi.After(lo) {
		return 0
	}
	return hi.Sub(lo).Hours()
}
