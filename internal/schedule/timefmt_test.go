package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multicourt/vbl-scanner/internal/schedule"
)

func TestFormatClock(t *testing.T) {
	got := schedule.FormatClock("2025-06-14T09:00:00")
	require.NotNil(t, got)
	assert.Equal(t, "9:00AM", *got)

	got = schedule.FormatClock("2025-06-14T14:05:00")
	require.NotNil(t, got)
	assert.Equal(t, "2:05PM", *got)
}

func TestFormatClock_MidnightAndNoon(t *testing.T) {
	got := schedule.FormatClock("2025-06-14T00:00:00")
	require.NotNil(t, got)
	assert.Equal(t, "12:00AM", *got)

	got = schedule.FormatClock("2025-06-14T12:00:00")
	require.NotNil(t, got)
	assert.Equal(t, "12:00PM", *got)
}

func TestFormatClock_ZonedTimestampKeepsInstant(t *testing.T) {
	got := schedule.FormatClock("2025-06-14T09:00:00-07:00")
	require.NotNil(t, got)
	assert.Equal(t, "9:00AM", *got)
}

func TestFormatClock_Invalid(t *testing.T) {
	assert.Nil(t, schedule.FormatClock(""))
	assert.Nil(t, schedule.FormatClock("tomorrow at nine"))
	assert.Nil(t, schedule.FormatClock("2025-13-99T09:00:00"))
}

func TestFormatWeekday(t *testing.T) {
	// 2025-06-14 is a Saturday.
	got := schedule.FormatWeekday("2025-06-14T09:00:00")
	require.NotNil(t, got)
	assert.Equal(t, "Sat", *got)

	assert.Nil(t, schedule.FormatWeekday("not a date"))
}
