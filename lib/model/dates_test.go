package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crewlens/crewlens/lib/model"
)

func date(s string) *string {
	return &s
}

func TestWorkingDaysBetweenFullWeek(t *testing.T) {
	t.Parallel()

	// 2024-01-01 is a Monday
	assert.Equal(t, 5, model.WorkingDaysBetween(date("2024-01-01"), date("2024-01-07")))
	assert.Equal(t, 10, model.WorkingDaysBetween(date("2024-01-01"), date("2024-01-14")))
}

func TestWorkingDaysBetweenIsInclusive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, model.WorkingDaysBetween(date("2024-01-04"), date("2024-01-05")))
	assert.Equal(t, 1, model.WorkingDaysBetween(date("2024-01-05"), date("2024-01-05")))
}

func TestWorkingDaysBetweenSameDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, model.WorkingDaysBetween(date("2024-01-03"), date("2024-01-03")))
	assert.Equal(t, 0, model.WorkingDaysBetween(date("2024-01-06"), date("2024-01-06")))
	assert.Equal(t, 0, model.WorkingDaysBetween(date("2024-01-07"), date("2024-01-07")))
}

func TestWorkingDaysBetweenMissingDates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, model.WorkingDaysBetween(nil, date("2024-01-03")))
	assert.Equal(t, 0, model.WorkingDaysBetween(date("2024-01-03"), nil))
	assert.Equal(t, 0, model.WorkingDaysBetween(nil, nil))
	assert.Equal(t, 0, model.WorkingDaysBetween(date("not-a-date"), date("2024-01-03")))
}

func TestWorkingDaysBetweenReversedRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, model.WorkingDaysBetween(date("2024-01-10"), date("2024-01-03")))
}

func TestOnOrBeforeOpenEnded(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, model.OnOrBefore(nil, now))
	assert.True(t, model.OnOrBefore(date("2024-06-01"), now))
	assert.True(t, model.OnOrBefore(date("2024-05-31"), now))
	assert.False(t, model.OnOrBefore(date("2024-06-02"), now))
}

func TestOnOrAfterOpenEnded(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, model.OnOrAfter(nil, now))
	assert.True(t, model.OnOrAfter(date("2024-06-01"), now))
	assert.True(t, model.OnOrAfter(date("2024-06-02"), now))
	assert.False(t, model.OnOrAfter(date("2024-05-31"), now))
}
