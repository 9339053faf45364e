package domain

import (
	"fmt"
	"time"
)

// DateLayout is the YYYYMMDD form the Teamwork API expects for date filters.
const DateLayout = "20060102"

// TimeInterval is an inclusive date range within one calendar month.
type TimeInterval struct {
	From string
	To   string
}

// MonthWindow returns the interval for the requested month.
// A zero month or year means the value was not supplied. When year is set it
// replaces the year of now; when month is omitted the month preceding the
// anchor is used.
func MonthWindow(now time.Time, month, year int) (TimeInterval, error) {
	if month < 0 || month > 12 {
		return TimeInterval{}, fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidWindow, month)
	}
	if year < 0 {
		return TimeInterval{}, fmt.Errorf("%w: year %d", ErrInvalidWindow, year)
	}

	anchorYear := now.Year()
	if year != 0 {
		anchorYear = year
	}

	var first time.Time
	if month != 0 {
		first = time.Date(anchorYear, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	} else {
		// Month 0 normalises to December of the previous year.
		first = time.Date(anchorYear, now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	}
	last := first.AddDate(0, 1, -1)

	return TimeInterval{
		From: first.Format(DateLayout),
		To:   last.Format(DateLayout),
	}, nil
}
