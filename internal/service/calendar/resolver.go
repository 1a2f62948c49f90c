package calendar

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const dayKeyFormat = "2006-01-02"

// DayInfo - one row of the public holiday open-data set. A weekend date
// published with IsHoliday=false is a designated make-up workday.
type DayInfo struct {
	Date      time.Time
	IsHoliday bool
}

// Source fetches the raw per-year holiday data. Implementations are
// side-effect-free reads and may be retried freely.
type Source interface {
	FetchYear(ctx context.Context, year int) ([]DayInfo, error)
}

// Calendar holds one year's resolved holidays and make-up workdays. The
// zero value is the "fully working calendar" fallback.
type Calendar struct {
	Holidays       map[string]bool
	MakeupWorkdays map[string]bool
}

// IsWorkday reports whether d carries a work obligation: weekdays that are
// not holidays, plus make-up workdays which override the weekend/holiday
// default.
func (c Calendar) IsWorkday(d time.Time) bool {
	key := d.Format(dayKeyFormat)
	if c.MakeupWorkdays[key] {
		return true
	}
	if c.Holidays[key] {
		return false
	}
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Resolver resolves per-year calendars with an injected source and a
// year-keyed cache. Fetch failures degrade to an empty calendar with a
// warning; payroll must still proceed.
type Resolver struct {
	source Source
	mu     sync.Mutex
	cache  map[int]Calendar
}

func NewResolver(source Source) *Resolver {
	return &Resolver{
		source: source,
		cache:  make(map[int]Calendar),
	}
}

func (r *Resolver) Resolve(ctx context.Context, year int) Calendar {
	r.mu.Lock()
	if cal, ok := r.cache[year]; ok {
		r.mu.Unlock()
		return cal
	}
	r.mu.Unlock()

	days, err := r.source.FetchYear(ctx, year)
	if err != nil {
		// Failures are not cached so a later run can retry the fetch.
		slog.Warn("holiday calendar fetch failed, falling back to fully working calendar",
			"year", year, "error", err)
		return Calendar{}
	}

	cal := Calendar{
		Holidays:       make(map[string]bool),
		MakeupWorkdays: make(map[string]bool),
	}
	for _, day := range days {
		key := day.Date.Format(dayKeyFormat)
		if day.IsHoliday {
			cal.Holidays[key] = true
			continue
		}
		wd := day.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			cal.MakeupWorkdays[key] = true
		}
	}

	r.mu.Lock()
	r.cache[year] = cal
	r.mu.Unlock()

	return cal
}
