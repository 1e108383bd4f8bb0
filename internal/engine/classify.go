package engine

import (
	"image/color"

	"github.com/tartampluch/go-yeardots/internal/config"
)

// DayState is the display classification of a single day.
type DayState int

const (
	Future DayState = iota
	Passed
	Today
	Special
)

func (s DayState) String() string {
	switch s {
	case Special:
		return "special"
	case Today:
		return "today"
	case Passed:
		return "passed"
	case Future:
		return "future"
	default:
		return "unknown"
	}
}

// Color returns the palette entry used to draw a dot in this state.
func (s DayState) Color() color.RGBA {
	switch s {
	case Special:
		return config.ColorSpecial
	case Today:
		return config.ColorToday
	case Passed:
		return config.ColorPassed
	default:
		return config.ColorFuture
	}
}

type classRule struct {
	state DayState
	match func(day, today int, special SpecialDaySet) bool
}

// classRules is evaluated top to bottom. A special day stays Special even
// when it is today.
var classRules = []classRule{
	{Special, func(day, _ int, special SpecialDaySet) bool { return special.Contains(day) }},
	{Today, func(day, today int, _ SpecialDaySet) bool { return day == today }},
	{Passed, func(day, today int, _ SpecialDaySet) bool { return day < today }},
	{Future, func(int, int, SpecialDaySet) bool { return true }},
}

// Classify assigns the display state of day given the current day of year.
func Classify(day, dayOfYear int, special SpecialDaySet) DayState {
	for _, r := range classRules {
		if r.match(day, dayOfYear, special) {
			return r.state
		}
	}
	return Future
}
