// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package disabled derives the grid positions of a picker page that must
// be displayed as non-selectable given a set of calendar.Constraints.
//
// The same steps are followed for each granularity: positions that fall
// outside of the page are disabled, the page as a whole is disabled when
// it lies entirely beyond Max or before Min, positions beyond Max or
// before Min within the page are disabled and finally the explicitly
// disabled dates are mapped to their positions. The results are returned
// in ascending order without duplicates.
package disabled

import (
	"cloudeng.io/algo/container/bitmap"
	"cloudeng.io/datepicker/calendar"
)

const (
	// MonthsPerPage is the number of cells on a month grid.
	MonthsPerPage = 12
	// YearsPerPage is the number of cells on a year grid.
	YearsPerPage = 12
)

type positions struct {
	bm   bitmap.T
	size int
}

func newPositions(size int) positions {
	return positions{bm: bitmap.New(size), size: size}
}

func (p positions) setRange(from, to int) {
	for i := max(from, 0); i <= to && i < p.size; i++ {
		p.bm.Set(i)
	}
}

func (p positions) all() []int {
	p.setRange(0, p.size-1)
	return p.list()
}

func (p positions) list() []int {
	r := []int{}
	for i := range p.bm.AllSet(0, p.size) {
		r = append(r, i)
	}
	return r
}

// Days returns the disabled positions, 0..calendar.GridSize-1, of the
// month grid for ref. Positions occupied by days of the adjacent months
// are always disabled.
func Days(loc calendar.Locale, ref calendar.CalendarDate, c calendar.Constraints) []int {
	p := newPositions(calendar.GridSize)
	first, last := calendar.MonthPositions(loc, ref)
	p.setRange(0, first-1)
	p.setRange(last+1, calendar.GridSize-1)

	start, end := ref.StartOfMonth(), ref.EndOfMonth()
	if (!c.Max.IsZero() && c.Max < start) || (!c.Min.IsZero() && c.Min > end) {
		return p.all()
	}
	if !c.Max.IsZero() && c.Max < end {
		p.setRange(first+c.Max.Day(), last)
	}
	if !c.Min.IsZero() && c.Min > start {
		p.setRange(first, first+c.Min.Day()-2)
	}
	for d := range c.Disabled.Between(start, end) {
		if pos, ok := calendar.Position(loc, ref, d); ok {
			p.bm.Set(pos)
		}
	}
	return p.list()
}

// Months returns the disabled positions, 0..11 for January..December,
// of the month grid for year. A month is disabled when it lies entirely
// outside of the Min/Max bounds or when it contains an explicitly
// disabled date.
func Months(year int, c calendar.Constraints) []int {
	p := newPositions(MonthsPerPage)
	start := calendar.NewCalendarDate(year, 1, 1)
	end := start.EndOfYear()
	if (!c.Max.IsZero() && c.Max < start) || (!c.Min.IsZero() && c.Min > end) {
		return p.all()
	}
	if !c.Max.IsZero() && c.Max < end {
		p.setRange(int(c.Max.Month()), MonthsPerPage-1)
	}
	if !c.Min.IsZero() && c.Min > start {
		p.setRange(0, int(c.Min.Month())-2)
	}
	for d := range c.Disabled.Between(start, end) {
		p.bm.Set(int(d.Month()) - 1)
	}
	return p.list()
}

// Years returns the disabled positions, 0..11, of the year grid whose
// first year is first. A year is disabled when it lies entirely outside
// of the Min/Max bounds or when it contains an explicitly disabled date.
func Years(first int, c calendar.Constraints) []int {
	p := newPositions(YearsPerPage)
	lastYear := first + YearsPerPage - 1
	if (!c.Max.IsZero() && c.Max.Year() < first) || (!c.Min.IsZero() && c.Min.Year() > lastYear) {
		return p.all()
	}
	if !c.Max.IsZero() && c.Max.Year() < lastYear {
		p.setRange(c.Max.Year()-first+1, YearsPerPage-1)
	}
	if !c.Min.IsZero() && c.Min.Year() > first {
		p.setRange(0, c.Min.Year()-first-1)
	}
	from := calendar.NewCalendarDate(first, 1, 1)
	to := calendar.NewCalendarDate(lastYear, 12, 31)
	for d := range c.Disabled.Between(from, to) {
		p.bm.Set(d.Year() - first)
	}
	return p.list()
}

// Times returns the disabled positions of an hour or minute grid with
// the specified number of cells for day. Either every position is
// disabled, when day itself is excluded by the constraints, or none is.
func Times(day calendar.CalendarDate, cells int, c calendar.Constraints) []int {
	p := newPositions(cells)
	if c.Include(day) {
		return p.list()
	}
	return p.all()
}
