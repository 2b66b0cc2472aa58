package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2024-01-05", Format(2024, 0, 5))
	assert.Equal(t, "2024-12-31", Format(2024, 11, 31))
	assert.Equal(t, "1999-02-01", Format(1999, 1, 1))
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-03-07", FromTime(ts))
}

func TestParseRoundTrip(t *testing.T) {
	y, m, d, err := Parse("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 0, m)
	assert.Equal(t, 5, d)
	assert.Equal(t, "2024-01-05", Format(y, m, d))

	_, _, _, err = Parse("not-a-date")
	assert.Error(t, err)
}

func TestMonthGridDayCounts(t *testing.T) {
	cases := []struct {
		year, month, days int
	}{
		{1900, 1, 28}, // 1900 is not a leap year
		{2000, 1, 29},
		{2024, 1, 29},
		{2023, 1, 28},
		{2024, 0, 31},
		{2024, 3, 30},
		{2024, 11, 31},
	}
	for _, c := range cases {
		g := MonthGrid(c.year, c.month)
		assert.Equalf(t, c.days, g.DaysInMonth, "year=%d month=%d", c.year, c.month)
	}
}

func TestMonthGridFirstWeekday(t *testing.T) {
	// 2024-01-01 was a Monday.
	assert.Equal(t, 1, MonthGrid(2024, 0).FirstWeekday)
	// 2023-10-01 was a Sunday.
	assert.Equal(t, 0, MonthGrid(2023, 9).FirstWeekday)
}

func TestMonthGridWrapsAtYearBoundaries(t *testing.T) {
	// Month 12 of 2023 is January 2024; month -1 of 2024 is December 2023.
	assert.Equal(t, MonthGrid(2024, 0), MonthGrid(2023, 12))
	assert.Equal(t, MonthGrid(2023, 11), MonthGrid(2024, -1))
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	y, m, d := AddDays(2024, 0, 31, 1)
	assert.Equal(t, []int{2024, 1, 1}, []int{y, m, d})

	y, m, d = AddDays(2024, 0, 1, -1)
	assert.Equal(t, []int{2023, 11, 31}, []int{y, m, d})

	// Leap day.
	y, m, d = AddDays(2024, 1, 28, 1)
	assert.Equal(t, []int{2024, 1, 29}, []int{y, m, d})
}
