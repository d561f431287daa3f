package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	lima := time.FixedZone("PET", -5*3600)
	moment := time.Date(2026, 3, 15, 14, 37, 12, 0, lima)

	start, end := DayBounds(moment)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, lima), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, moment.Day(), end.Day())
	assert.True(t, start.Before(moment))
	assert.True(t, end.After(moment))
}
