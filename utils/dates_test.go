package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameCalendarDay(t *testing.T) {
	a := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 3, 5, 0, 1, 0, 0, time.UTC)
	c := time.Date(2024, 3, 6, 0, 1, 0, 0, time.UTC)

	assert.True(t, SameCalendarDay(a, b))
	assert.False(t, SameCalendarDay(a, c))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 8, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}
