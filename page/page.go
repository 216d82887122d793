// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package page provides an immutable cursor over the period displayed by
// a picker: a month of days, a year of months, a 12 year block of years or
// a single day of hours and minutes. Navigation returns new Page values.
package page

import (
	"fmt"
	"strings"

	"cloudeng.io/datepicker/calendar"
)

// Kind represents the period covered by a Page.
type Kind int

const (
	Month  Kind = iota // A month, displayed as a grid of days.
	Year               // A year, displayed as a grid of months.
	Decade             // A block of YearsPerDecade years, displayed as a grid of years.
	Day                // A day, displayed as a grid of hours or minutes.
)

// YearsPerDecade is the number of years in a Decade page. The block is
// sized to fill a 3 column grid rather than being a calendar decade.
const YearsPerDecade = 12

var kindNames = []string{"month", "year", "decade", "day"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses the names returned by Kind.String.
func ParseKind(val string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(val, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unrecognised page kind: %q", val)
}

// Page represents the period currently displayed by a picker.
type Page struct {
	kind  Kind
	start calendar.CalendarDate
}

// DecadeStart returns the first year of the Decade page containing year.
func DecadeStart(year int) int {
	return year - year%YearsPerDecade
}

// New returns the Page of the specified kind that contains date.
func New(kind Kind, date calendar.CalendarDate) Page {
	p := Page{kind: kind}
	switch kind {
	case Month:
		p.start = date.StartOfMonth()
	case Year:
		p.start = date.StartOfYear()
	case Decade:
		p.start = calendar.NewCalendarDate(DecadeStart(date.Year()), 1, 1)
	default:
		p.kind = Day
		p.start = date
	}
	return p
}

// Kind returns the kind of the page.
func (p Page) Kind() Kind {
	return p.kind
}

// Start returns the first date on the page.
func (p Page) Start() calendar.CalendarDate {
	return p.start
}

// End returns the last date on the page.
func (p Page) End() calendar.CalendarDate {
	switch p.kind {
	case Month:
		return p.start.EndOfMonth()
	case Year:
		return p.start.EndOfYear()
	case Decade:
		return p.start.AddYears(YearsPerDecade - 1).EndOfYear()
	}
	return p.start
}

// Contains returns true if d falls on the page.
func (p Page) Contains(d calendar.CalendarDate) bool {
	return d >= p.start && d <= p.End()
}

// Years returns the years covered by the page.
func (p Page) Years() []int {
	first, last := p.start.Year(), p.End().Year()
	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years
}

func (p Page) step(n int) Page {
	switch p.kind {
	case Month:
		return Page{kind: p.kind, start: p.start.AddMonths(n)}
	case Year:
		return Page{kind: p.kind, start: p.start.AddYears(n)}
	case Decade:
		return Page{kind: p.kind, start: p.start.AddYears(n * YearsPerDecade)}
	}
	return Page{kind: p.kind, start: p.start.AddDays(n)}
}

// Next returns the following page.
func (p Page) Next() Page {
	return p.step(1)
}

// Prev returns the preceding page.
func (p Page) Prev() Page {
	return p.step(-1)
}

// NextWithin returns the following page if CanGoNext(p, maxDate) is true
// and p otherwise.
func (p Page) NextWithin(maxDate calendar.CalendarDate) Page {
	if !CanGoNext(p, maxDate) {
		return p
	}
	return p.Next()
}

// PrevWithin returns the preceding page if CanGoPrev(p, minDate) is true
// and p otherwise.
func (p Page) PrevWithin(minDate calendar.CalendarDate) Page {
	if !CanGoPrev(p, minDate) {
		return p
	}
	return p.Prev()
}

func (p Page) String() string {
	switch p.kind {
	case Month:
		return p.start.Format("2006-01")
	case Year:
		return p.start.Format("2006")
	case Decade:
		return fmt.Sprintf("%d-%d", p.start.Year(), p.End().Year())
	}
	return p.start.String()
}

// CanGoNext returns false if maxDate is set and p is at or after the page
// that contains maxDate.
func CanGoNext(p Page, maxDate calendar.CalendarDate) bool {
	return maxDate.IsZero() || p.End() < maxDate
}

// CanGoPrev returns false if minDate is set and p is at or before the page
// that contains minDate.
func CanGoPrev(p Page, minDate calendar.CalendarDate) bool {
	return minDate.IsZero() || p.Start() > minDate
}
