package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-yeardots/internal/engine"
)

func TestParseSpecialDates(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []engine.MonthDay
	}{
		{
			name: "Empty",
			raw:  "",
			want: nil,
		},
		{
			name: "Whitespace only",
			raw:  "   ",
			want: nil,
		},
		{
			name: "Three valid tokens",
			raw:  "3-2,4-29,12-10",
			want: []engine.MonthDay{{Month: time.March, Day: 2}, {Month: time.April, Day: 29}, {Month: time.December, Day: 10}},
		},
		{
			name: "Whitespace around tokens and parts",
			raw:  " 1-1 , 7 - 4 ",
			want: []engine.MonthDay{{Month: time.January, Day: 1}, {Month: time.July, Day: 4}},
		},
		{
			name: "Malformed tokens are dropped, others kept",
			raw:  "abc,3,1-2-3,5-x,,6-1",
			want: []engine.MonthDay{{Month: time.June, Day: 1}},
		},
		{
			// Out-of-range values parse; BuildSpecialDaySet rejects them.
			name: "Out of range still parses",
			raw:  "13-40",
			want: []engine.MonthDay{{Month: 13, Day: 40}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ParseSpecialDates(tt.raw))
		})
	}
}

// TestBuildSpecialDaySet_Scenario uses the reference configuration on a common year.
func TestBuildSpecialDaySet_Scenario(t *testing.T) {
	set := engine.BuildSpecialDaySet(2023, engine.ParseSpecialDates("3-2,4-29,12-10"))

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(61), "Mar 2 is day 61 in 2023")
	assert.True(t, set.Contains(119), "Apr 29 is day 119 in 2023")
	assert.True(t, set.Contains(344), "Dec 10 is day 344 in 2023")
}

func TestBuildSpecialDaySet_LeapShift(t *testing.T) {
	set := engine.BuildSpecialDaySet(2024, engine.ParseSpecialDates("3-2"))
	assert.True(t, set.Contains(62), "Mar 2 moves to day 62 in a leap year")
}

func TestBuildSpecialDaySet_InvalidDatesDropped(t *testing.T) {
	tests := []struct {
		name string
		year int
		raw  string
		want []int
	}{
		{"Feb 30 never exists", 2023, "2-30,1-5", []int{5}},
		{"Feb 29 in common year", 2023, "2-29,1-5", []int{5}},
		{"Feb 29 in leap year", 2024, "2-29", []int{60}},
		{"Month 13", 2023, "13-40,1-1", []int{1}},
		{"Month 0 and day 0", 2023, "0-10,1-0,2-1", []int{32}},
		{"April 31", 2023, "4-31", nil},
		{"Negative values", 2023, "-1-5", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := engine.BuildSpecialDaySet(tt.year, engine.ParseSpecialDates(tt.raw))
			assert.Equal(t, len(tt.want), set.Len())
			for _, d := range tt.want {
				assert.True(t, set.Contains(d), "day %d", d)
			}
		})
	}
}

func TestBuildSpecialDaySet_DuplicatesTolerated(t *testing.T) {
	set := engine.BuildSpecialDaySet(2023, engine.ParseSpecialDates("1-1,1-1,01-01"))
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(1))
}

func TestMonthDay_In(t *testing.T) {
	got, ok := engine.MonthDay{Month: time.February, Day: 29}.In(2024)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, ok = engine.MonthDay{Month: time.February, Day: 29}.In(2023)
	assert.False(t, ok, "time.Date would silently normalise to Mar 1")

	assert.Equal(t, "12-25", engine.MonthDay{Month: time.December, Day: 25}.String())
}
