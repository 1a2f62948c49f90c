package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	days  []DayInfo
	err   error
	calls int
}

func (f *fakeSource) FetchYear(ctx context.Context, year int) ([]DayInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.days, nil
}

func TestResolveClassifiesDays(t *testing.T) {
	source := &fakeSource{days: []DayInfo{
		// Thu 2026-01-01, national holiday.
		{Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), IsHoliday: true},
		// Sat 2026-01-10, published as a working day: make-up workday.
		{Date: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), IsHoliday: false},
		// Sat 2026-01-17, published as holiday: stays a rest day.
		{Date: time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC), IsHoliday: true},
	}}
	resolver := NewResolver(source)

	cal := resolver.Resolve(context.Background(), 2026)

	assert.False(t, cal.IsWorkday(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), "holiday counted as workday")
	assert.True(t, cal.IsWorkday(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)), "makeup saturday not counted")
	assert.False(t, cal.IsWorkday(time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC)), "holiday saturday counted")

	// Unlisted days fall back to the weekday rule.
	assert.True(t, cal.IsWorkday(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))  // Mon
	assert.False(t, cal.IsWorkday(time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC))) // Sun
}

func TestResolveCachesPerYear(t *testing.T) {
	source := &fakeSource{}
	resolver := NewResolver(source)

	resolver.Resolve(context.Background(), 2026)
	resolver.Resolve(context.Background(), 2026)

	assert.Equal(t, 1, source.calls)
}

func TestResolveFetchFailureDegradesAndRetries(t *testing.T) {
	source := &fakeSource{err: errors.New("upstream down")}
	resolver := NewResolver(source)

	cal := resolver.Resolve(context.Background(), 2026)

	// Weekday rule still applies with an empty calendar.
	assert.True(t, cal.IsWorkday(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsWorkday(time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)))

	// Failures are not cached; the next resolve fetches again.
	source.err = nil
	resolver.Resolve(context.Background(), 2026)
	assert.Equal(t, 2, source.calls)
}
