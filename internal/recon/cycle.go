package recon

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var cycleIntRe = regexp.MustCompile(`\d+`)

// ExtractCycleBounds pulls a billing-cycle day range out of a free-text
// attendance column header such as "Sum of 15th to 14th". The header must
// contain exactly two embedded integers, taken in first-to-second order;
// anything else means the column is not a cycle column and is skipped by the
// caller. Integers outside 1..31 cannot be days of month and disqualify the
// header as well.
func ExtractCycleBounds(header string) (CycleBounds, bool) {
	nums := cycleIntRe.FindAllString(header, -1)
	if len(nums) != 2 {
		return CycleBounds{}, false
	}
	start, err := strconv.Atoi(nums[0])
	if err != nil {
		return CycleBounds{}, false
	}
	end, err := strconv.Atoi(nums[1])
	if err != nil {
		return CycleBounds{}, false
	}
	if start < 1 || start > 31 || end < 1 || end > 31 {
		return CycleBounds{}, false
	}
	return CycleBounds{StartDay: start, EndDay: end}, true
}

// ResolveCycleDates expands day bounds into absolute calendar dates using the
// reference date's month and year. A cycle whose start day is greater than
// its end day crosses into the following month; December rolls over into
// January of the next year.
func ResolveCycleDates(b CycleBounds, ref time.Time) (from, to time.Time) {
	year, month := ref.Year(), ref.Month()
	from = time.Date(year, month, b.StartDay, 0, 0, 0, 0, time.UTC)

	toYear, toMonth := year, month
	if b.StartDay > b.EndDay {
		toMonth++
		if toMonth > time.December {
			toMonth = time.January
			toYear++
		}
	}
	to = time.Date(toYear, toMonth, b.EndDay, 0, 0, 0, 0, time.UTC)
	return from, to
}

// CycleKey is the canonical date-range segment of an attendance join key.
func CycleKey(from, to time.Time) string {
	return from.Format("02-Jan-06") + "|" + to.Format("02-Jan-06")
}

// DayRangeLabel is the date-free form of a cycle, used as the join key when
// only day numbers are known. Matching on it alone cannot distinguish the
// same cycle in different months; callers count such matches separately.
func DayRangeLabel(b CycleBounds) string {
	return fmt.Sprintf("%d-%d", b.StartDay, b.EndDay)
}
