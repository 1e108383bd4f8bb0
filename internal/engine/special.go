package engine

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-yeardots/internal/config"
)

// MonthDay is a calendar day without a year, e.g. a recurring anniversary.
// It is not validated on construction: Feb 30 is representable and is
// only rejected once a concrete year is known.
type MonthDay struct {
	Month time.Month
	Day   int
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%d-%d", int(md.Month), md.Day)
}

// In resolves md in year. The second result is false when the date
// does not exist that year (Feb 29 in a common year, April 31, month 13...).
func (md MonthDay) In(year int) (time.Time, bool) {
	if md.Month < time.January || md.Month > time.December || md.Day < 1 {
		return time.Time{}, false
	}
	// time.Date normalises overflow (Feb 30 -> Mar 2), so compare the result.
	t := time.Date(year, md.Month, md.Day, 0, 0, 0, 0, time.UTC)
	if t.Month() != md.Month || t.Day() != md.Day {
		return time.Time{}, false
	}
	return t, true
}

// SpecialDaySet holds the day-of-year indices highlighted for the current year.
type SpecialDaySet map[int]struct{}

// Contains reports whether day is highlighted.
func (s SpecialDaySet) Contains(day int) bool {
	_, ok := s[day]
	return ok
}

// Len returns the number of distinct highlighted days.
func (s SpecialDaySet) Len() int {
	return len(s)
}

// ParseSpecialDates reads a comma separated list of "M-D" tokens.
// Tokens that are not exactly two integers separated by '-' are skipped;
// range checks happen later in BuildSpecialDaySet.
func ParseSpecialDates(raw string) []MonthDay {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var dates []MonthDay
	for _, token := range strings.Split(raw, config.SpecialSep) {
		token = strings.TrimSpace(token)
		md, ok := parseMonthDay(token)
		if !ok {
			slog.Debug(config.MsgSkippedToken,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, token)
			continue
		}
		dates = append(dates, md)
	}
	return dates
}

func parseMonthDay(token string) (MonthDay, bool) {
	parts := strings.Split(token, config.MonthDaySep)
	if len(parts) != config.MonthDayFields {
		return MonthDay{}, false
	}

	m, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return MonthDay{}, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return MonthDay{}, false
	}
	return MonthDay{Month: time.Month(m), Day: d}, true
}

// BuildSpecialDaySet resolves dates in year and collects their day-of-year
// ordinals. Dates that do not exist in year are dropped.
func BuildSpecialDaySet(year int, dates []MonthDay) SpecialDaySet {
	set := make(SpecialDaySet, len(dates))
	for _, md := range dates {
		t, ok := md.In(year)
		if !ok {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyYear, year,
				config.LogKeyValue, md.String())
			continue
		}
		set[t.YearDay()] = struct{}{}
	}
	return set
}
