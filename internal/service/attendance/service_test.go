package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseClockOn(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	clock, degraded := parseClockOn(date, strPtr("08:02"))
	require.NotNil(t, clock)
	assert.False(t, degraded)
	assert.Equal(t, time.Date(2026, 1, 5, 8, 2, 0, 0, time.UTC), *clock)

	clock, degraded = parseClockOn(date, nil)
	assert.Nil(t, clock)
	assert.False(t, degraded)

	clock, degraded = parseClockOn(date, strPtr(""))
	assert.Nil(t, clock)
	assert.False(t, degraded)

	// Garbage degrades to empty and gets reported.
	clock, degraded = parseClockOn(date, strPtr("8am"))
	assert.Nil(t, clock)
	assert.True(t, degraded)
}

func TestOvertimeDuration(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	minutes, reason := overtimeDuration(date, strPtr("18:00"), strPtr("20:30"))
	assert.Equal(t, 150, minutes)
	assert.Empty(t, reason)

	minutes, reason = overtimeDuration(date, nil, nil)
	assert.Zero(t, minutes)
	assert.Empty(t, reason)

	minutes, reason = overtimeDuration(date, strPtr("20:00"), strPtr("18:00"))
	assert.Zero(t, minutes)
	assert.NotEmpty(t, reason)

	minutes, reason = overtimeDuration(date, strPtr("six"), strPtr("18:00"))
	assert.Zero(t, minutes)
	assert.NotEmpty(t, reason)
}
