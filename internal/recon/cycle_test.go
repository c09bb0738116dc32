package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractCycleBounds(t *testing.T) {
	b, ok := ExtractCycleBounds("Sum of 15th to 14th")
	assert.True(t, ok)
	assert.Equal(t, CycleBounds{StartDay: 15, EndDay: 14}, b)

	b, ok = ExtractCycleBounds("1 to 31")
	assert.True(t, ok)
	assert.Equal(t, CycleBounds{StartDay: 1, EndDay: 31}, b)

	// Non-cycle metadata headers carry zero, one, or too many integers.
	for _, header := range []string{"Row Labels", "Total", "Month 3", "1 to 2 of 3", "Sum of 99th to 14th"} {
		_, ok := ExtractCycleBounds(header)
		assert.False(t, ok, "header %q must not parse as a cycle", header)
	}
}

func TestResolveCycleDates_WithinMonth(t *testing.T) {
	ref := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	from, to := ResolveCycleDates(CycleBounds{StartDay: 1, EndDay: 31}, ref)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestResolveCycleDates_CrossesMonth(t *testing.T) {
	ref := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	from, to := ResolveCycleDates(CycleBounds{StartDay: 15, EndDay: 14}, ref)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.April, 14, 0, 0, 0, 0, time.UTC), to)
}

func TestResolveCycleDates_DecemberRollsToJanuary(t *testing.T) {
	ref := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)

	from, to := ResolveCycleDates(CycleBounds{StartDay: 15, EndDay: 14}, ref)
	assert.Equal(t, time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC), to)
}

func TestCycleKey(t *testing.T) {
	from := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.April, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15-Mar-24|14-Apr-24", CycleKey(from, to))
}

func TestDayRangeLabel(t *testing.T) {
	assert.Equal(t, "15-14", DayRangeLabel(CycleBounds{StartDay: 15, EndDay: 14}))
}
