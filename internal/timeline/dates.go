package timeline

import (
	"time"

	"career-pivot/internal/model"
)

// AddMonths moves d by n calendar months. When the target month is shorter
// than d's day, the result is clamped to that month's last day
// (Jan 31 + 1 month = Feb 28/29), unlike time.AddDate which overflows.
func AddMonths(d model.Date, n int) model.Date {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return model.NewDate(first.Year(), first.Month(), day)
}

// MonthsBetween returns the number of complete calendar months from earlier
// to later. It is negative when later precedes earlier.
func MonthsBetween(later, earlier model.Date) int {
	if later.Before(earlier) {
		return -MonthsBetween(earlier, later)
	}
	ly, lm, _ := later.Date()
	ey, em, _ := earlier.Date()
	n := (ly-ey)*12 + int(lm-em)
	// The last month only counts once it is complete.
	if n > 0 && AddMonths(earlier, n).After(later) {
		n--
	}
	return n
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
