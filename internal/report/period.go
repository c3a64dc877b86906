package report

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	yearMonthLayout = "2006-01"
	dateLayout      = "2006-01-02"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Period is a calendar month. All derived dates are UTC midnights.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a strict YYYY-MM string.
func ParsePeriod(s string) (Period, error) {
	if !yearMonthPattern.MatchString(s) {
		return Period{}, fmt.Errorf("%w: yearMonth %q must match YYYY-MM", ErrValidation, s)
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: yearMonth %q has no month %02d", ErrValidation, s, month)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// PeriodOf returns the month containing t, evaluated in UTC.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: t.Month()}
}

// Start is the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month, inclusive.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// DaysInMonth is the number of calendar days in the month.
func (p Period) DaysInMonth() int {
	return p.End().Day()
}

// Contains reports whether the calendar date of t falls inside the month.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p Period) String() string {
	return p.Start().Format(yearMonthLayout)
}

func (p Period) info() PeriodInfo {
	return PeriodInfo{
		YearMonth:   p.String(),
		StartDate:   p.Start().Format(dateLayout),
		EndDate:     p.End().Format(dateLayout),
		DaysInMonth: p.DaysInMonth(),
	}
}
