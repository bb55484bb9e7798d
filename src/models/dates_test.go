package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	parsed, ok := ParseLocalDate("2024-03-05")
	require.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 5, parsed.Day())
	assert.Equal(t, time.Local, parsed.Location())
	assert.Equal(t, 0, parsed.Hour())
}

func TestParseLocalDateDiscardsTimePart(t *testing.T) {
	withTime, ok := ParseLocalDate("2024-03-05T23:30:00Z")
	require.True(t, ok)
	plain, ok2 := ParseLocalDate("2024-03-05")
	require.True(t, ok2)
	assert.True(t, withTime.Equal(plain), "a trailing time part must not shift the calendar day")
}

func TestParseLocalDateRejectsMalformedValues(t *testing.T) {
	for _, input := range []string{"", "2024", "2024-03", "03/05/2024", "not-a-date", "2024-00-05", "2024-03-00", "aaaa-bb-cc"} {
		_, ok := ParseLocalDate(input)
		assert.False(t, ok, "input %q should not parse", input)
	}
}

func TestEndOfDay(t *testing.T) {
	day, ok := ParseLocalDate("2024-03-05")
	require.True(t, ok)

	end := EndOfDay(day)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, 999000000, end.Nanosecond())
	assert.Equal(t, day.Year(), end.Year())
	assert.Equal(t, day.Day(), end.Day())

	// The whole calendar day fits between midnight and EndOfDay.
	noon := day.Add(12 * time.Hour)
	assert.True(t, noon.After(day) && noon.Before(end))
}
