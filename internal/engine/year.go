package engine

import "time"

// YearContext describes where a single instant falls within its calendar year.
type YearContext struct {
	Year      int
	IsLeap    bool
	TotalDays int // 365 or 366
	DayOfYear int // 1-based, Jan 1 = 1
	DaysLeft  int // TotalDays - DayOfYear, never negative
}

// IsLeap applies the Gregorian leap-year rule.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// ResolveYear computes the YearContext of now, evaluated in UTC.
func ResolveYear(now time.Time) YearContext {
	now = now.UTC()
	year := now.Year()
	total := DaysInYear(year)
	day := now.YearDay()

	return YearContext{
		Year:      year,
		IsLeap:    IsLeap(year),
		TotalDays: total,
		DayOfYear: day,
		DaysLeft:  total - day,
	}
}

// Progress returns the elapsed share of the year, today included.
func (y YearContext) Progress() float64 {
	if y.TotalDays <= 0 {
		return 0
	}
	return float64(y.DayOfYear) / float64(y.TotalDays)
}
