// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid

import (
	"strconv"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/disabled"
	"cloudeng.io/datepicker/page"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/datepicker/timeofday"
)

// Value is the value represented by a single cell. Date is set for all
// units, for hours and minutes it is the day being displayed. Time is
// only meaningful for hours and minutes.
type Value struct {
	Unit selection.Unit
	Date calendar.CalendarDate
	Time timeofday.TimeOfDay
}

// Strategy determines the cells displayed for a given unit.
type Strategy interface {
	// Unit returns the unit of the values of each cell.
	Unit() selection.Unit
	// Kind returns the kind of page that the cells are displayed on.
	Kind() page.Kind
	// Columns returns the number of cells in each row.
	Columns() int
	// Enumerate returns the values of the cells for the page.
	Enumerate(p page.Page) []Value
	// Format returns the label for a cell.
	Format(v Value) string
	// Disabled returns the positions of the cells that cannot be
	// selected, in ascending order.
	Disabled(p page.Page, c calendar.Constraints) []int
}

type days struct {
	loc calendar.Locale
}

// Days returns the Strategy for a month of days laid out as 6 weeks
// starting on the locale's first day of the week.
func Days(loc calendar.Locale) Strategy {
	return days{loc: loc}
}

func (days) Unit() selection.Unit { return selection.Day }
func (days) Kind() page.Kind      { return page.Month }
func (days) Columns() int         { return calendar.DaysPerWeek }

func (s days) Enumerate(p page.Page) []Value {
	dates := calendar.GridDays(s.loc, p.Start())
	values := make([]Value, len(dates))
	for i, d := range dates {
		values[i] = Value{Unit: selection.Day, Date: d}
	}
	return values
}

func (days) Format(v Value) string {
	return strconv.Itoa(v.Date.Day())
}

func (s days) Disabled(p page.Page, c calendar.Constraints) []int {
	return disabled.Days(s.loc, p.Start(), c)
}

type months struct {
	loc calendar.Locale
}

// Months returns the Strategy for the 12 months of a year using the
// locale's abbreviated month names.
func Months(loc calendar.Locale) Strategy {
	return months{loc: loc}
}

func (months) Unit() selection.Unit { return selection.Month }
func (months) Kind() page.Kind      { return page.Year }
func (months) Columns() int         { return 3 }

func (months) Enumerate(p page.Page) []Value {
	values := make([]Value, disabled.MonthsPerPage)
	year := p.Start().Year()
	for i := range values {
		values[i] = Value{Unit: selection.Month, Date: calendar.NewCalendarDate(year, calendar.Month(i+1), 1)}
	}
	return values
}

func (s months) Format(v Value) string {
	return s.loc.MonthName(v.Date.Month(), false)
}

func (months) Disabled(p page.Page, c calendar.Constraints) []int {
	return disabled.Months(p.Start().Year(), c)
}

type years struct{}

// Years returns the Strategy for a block of page.YearsPerDecade years.
func Years() Strategy {
	return years{}
}

func (years) Unit() selection.Unit { return selection.Year }
func (years) Kind() page.Kind      { return page.Decade }
func (years) Columns() int         { return 3 }

func (years) Enumerate(p page.Page) []Value {
	ys := p.Years()
	values := make([]Value, len(ys))
	for i, y := range ys {
		values[i] = Value{Unit: selection.Year, Date: calendar.NewCalendarDate(y, 1, 1)}
	}
	return values
}

func (years) Format(v Value) string {
	return strconv.Itoa(v.Date.Year())
}

func (years) Disabled(p page.Page, c calendar.Constraints) []int {
	return disabled.Years(p.Start().Year(), c)
}

type hours struct {
	labels []string
}

// Hours returns the Strategy for the 24 hours of a day.
func Hours(mode timeofday.Mode) Strategy {
	return hours{labels: timeofday.HourLabels(mode)}
}

func (hours) Unit() selection.Unit { return selection.Hour }
func (hours) Kind() page.Kind      { return page.Day }
func (hours) Columns() int         { return 4 }

func (hours) Enumerate(p page.Page) []Value {
	return timeValues(selection.Hour, p, timeofday.Hours())
}

func (s hours) Format(v Value) string {
	return s.labels[v.Time.Hour()]
}

func (hours) Disabled(p page.Page, c calendar.Constraints) []int {
	return disabled.Times(p.Start(), timeofday.HoursPerDay, c)
}

type minutes struct {
	hour   int
	labels []string
}

// Minutes returns the Strategy for the minutes of hour, one cell every
// timeofday.DefaultMinuteStep minutes.
func Minutes(hour int, mode timeofday.Mode) Strategy {
	return minutes{
		hour:   hour,
		labels: timeofday.MinuteLabels(hour, timeofday.DefaultMinuteStep, mode),
	}
}

func (minutes) Unit() selection.Unit { return selection.Minute }
func (minutes) Kind() page.Kind      { return page.Day }
func (minutes) Columns() int         { return 3 }

func (s minutes) Enumerate(p page.Page) []Value {
	return timeValues(selection.Minute, p, timeofday.Minutes(s.hour, timeofday.DefaultMinuteStep))
}

func (s minutes) Format(v Value) string {
	return s.labels[v.Time.Minute()/timeofday.DefaultMinuteStep]
}

func (s minutes) Disabled(p page.Page, c calendar.Constraints) []int {
	return disabled.Times(p.Start(), len(s.labels), c)
}

func timeValues(unit selection.Unit, p page.Page, times []timeofday.TimeOfDay) []Value {
	values := make([]Value, len(times))
	for i, t := range times {
		values[i] = Value{Unit: unit, Date: p.Start(), Time: t}
	}
	return values
}
