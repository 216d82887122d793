// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "time"

const (
	// DaysPerWeek is the number of columns in a month grid.
	DaysPerWeek = 7
	// WeeksPerGrid is the number of rows in a month grid.
	WeeksPerGrid = 6
	// GridSize is the number of cells in a month grid.
	GridSize = DaysPerWeek * WeeksPerGrid
)

// gridStart returns the first date displayed on the month grid for ref,
// the first week start day on or before the first of ref's month, and
// the offset of the first of the month within the grid.
func gridStart(loc Locale, ref CalendarDate) (CalendarDate, int) {
	first := ref.StartOfMonth()
	offset := (int(first.Weekday()) - int(loc.WeekStart()) + DaysPerWeek) % DaysPerWeek
	return first.AddDays(-offset), offset
}

// Weeks returns the 6 weeks of 7 days displayed for ref's month. The first
// week contains the first day of the month and starts on the locale's week
// start day, trailing and leading days from the adjacent months fill
// the remaining cells.
func Weeks(loc Locale, ref CalendarDate) [WeeksPerGrid][DaysPerWeek]CalendarDate {
	var weeks [WeeksPerGrid][DaysPerWeek]CalendarDate
	day, _ := gridStart(loc, ref)
	for w := range weeks {
		for d := range weeks[w] {
			weeks[w][d] = day
			day = day.Tomorrow()
		}
	}
	return weeks
}

// GridDays returns the GridSize days displayed for ref's month in
// row-major order, ie. Weeks flattened.
func GridDays(loc Locale, ref CalendarDate) []CalendarDate {
	days := make([]CalendarDate, 0, GridSize)
	for _, week := range Weeks(loc, ref) {
		days = append(days, week[:]...)
	}
	return days
}

// WeekdayLabels returns the abbreviated, or long, names of the 7 days of
// the week starting with the locale's week start day.
func WeekdayLabels(loc Locale, long bool) []string {
	labels := make([]string, DaysPerWeek)
	for i := range labels {
		day := time.Weekday((int(loc.WeekStart()) + i) % DaysPerWeek)
		labels[i] = loc.WeekdayName(day, long)
	}
	return labels
}

// MonthLabels returns the abbreviated, or long, names of the 12 months.
func MonthLabels(loc Locale, long bool) []string {
	labels := make([]string, 12)
	for i := range labels {
		labels[i] = loc.MonthName(Month(i+1), long)
	}
	return labels
}

// IsSameDay returns true if a and b have the same year, month and day.
func IsSameDay(a, b CalendarDate) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsInMonth returns true if day falls in the same month and year as ref.
func IsInMonth(day, ref CalendarDate) bool {
	return day.Year() == ref.Year() && day.Month() == ref.Month()
}

// MonthPositions returns the grid positions of the first and last days
// of ref's month.
func MonthPositions(loc Locale, ref CalendarDate) (first, last int) {
	_, offset := gridStart(loc, ref)
	return offset, offset + DaysInMonth(ref.Year(), ref.Month()) - 1
}

// Boundaries returns the day of month numbers at which the labels of
// ref's month grid cross from one month into the next. The first value,
// present only when the grid starts with days from the previous month,
// is the last day of the previous month; the second is the last day of
// ref's month. For May 2018 with weeks starting on Monday the grid reads
// 30, 1 ... 31, 1 ... 10 and the boundaries are [30, 31].
func Boundaries(loc Locale, ref CalendarDate) []int {
	start, offset := gridStart(loc, ref)
	last := DaysInMonth(ref.Year(), ref.Month())
	if offset == 0 {
		return []int{last}
	}
	return []int{start.EndOfMonth().Day(), last}
}

// Position returns the grid position of d on ref's month grid and false
// if d is not displayed on that grid.
func Position(loc Locale, ref, d CalendarDate) (int, bool) {
	start, _ := gridStart(loc, ref)
	pos := start.DaysUntil(d)
	if pos < 0 || pos >= GridSize {
		return 0, false
	}
	return pos, true
}
