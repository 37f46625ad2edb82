package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		id       string
		value    string
		isValid  bool
		expected string
	}{
		{id: "1", value: "09:00", isValid: true, expected: "09:00"},
		{id: "2", value: "00:00", isValid: true, expected: "00:00"},
		{id: "3", value: "23:59", isValid: true, expected: "23:59"},
		{id: "4", value: "24:00", isValid: false},
		{id: "5", value: "12:60", isValid: false},
		{id: "6", value: "9:00", isValid: false},
		{id: "7", value: "09-00", isValid: false},
		{id: "8", value: "09:00:00", isValid: false},
		{id: "9", value: "", isValid: false},
		{id: "10", value: "ab:cd", isValid: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := require.New(t)
			parsed, err := ParseTimeOfDay(testcase.value)
			if !testcase.isValid {
				assert.ErrorIs(err, ErrInvalidTimeOfDay)
				return
			}
			assert.Nil(err)
			assert.Equal(testcase.expected, parsed.String())
		})
	}
}

func TestNextAfter(t *testing.T) {
	now := time.Date(2023, 3, 15, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		id       string
		at       string
		expected time.Time
	}{
		{
			id:       "still ahead today",
			at:       "09:00",
			expected: time.Date(2023, 3, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			id:       "already past today",
			at:       "07:00",
			expected: time.Date(2023, 3, 16, 7, 0, 0, 0, time.UTC),
		},
		{
			id:       "exactly now rolls over",
			at:       "08:00",
			expected: time.Date(2023, 3, 16, 8, 0, 0, 0, time.UTC),
		},
		{
			id:       "midnight",
			at:       "00:00",
			expected: time.Date(2023, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			id:       "end of day",
			at:       "23:59",
			expected: time.Date(2023, 3, 15, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := require.New(t)
			at, err := ParseTimeOfDay(testcase.at)
			assert.Nil(err)

			fireAt := at.NextAfter(now)

			assert.Equal(testcase.expected, fireAt)
			assert.True(fireAt.After(now))
		})
	}
}

func TestNextAfterSubMinuteNow(t *testing.T) {
	assert := require.New(t)
	at, err := ParseTimeOfDay("08:00")
	assert.Nil(err)

	// Seconds past the target minute still count as "already past".
	now := time.Date(2023, 3, 15, 8, 0, 30, 0, time.UTC)
	fireAt := at.NextAfter(now)

	assert.Equal(time.Date(2023, 3, 16, 8, 0, 0, 0, time.UTC), fireAt)
}
