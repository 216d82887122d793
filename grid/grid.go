// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package grid renders the cells of a picker page. A single Render
// function serves every unit, the differences between a grid of days,
// months, years, hours or minutes being captured by a Strategy.
package grid

import (
	"iter"

	"cloudeng.io/algo/container/bitmap"
	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/page"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/datepicker/timeofday"
)

// Cell represents a single cell of a grid.
type Cell struct {
	Label    string
	Position int
	Value    Value
	Disabled bool
	Active   bool
}

// CellGrid represents the rows of cells for a page.
type CellGrid struct {
	Unit    selection.Unit
	Page    page.Page
	Columns int
	Rows    [][]Cell
}

// Cells returns an iterator over all cells in position order.
func (g CellGrid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, row := range g.Rows {
			for _, c := range row {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Len returns the number of cells in the grid.
func (g CellGrid) Len() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}

// Cell returns the cell at pos.
func (g CellGrid) Cell(pos int) (Cell, bool) {
	if g.Columns <= 0 || pos < 0 || pos >= g.Len() {
		return Cell{}, false
	}
	return g.Rows[pos/g.Columns][pos%g.Columns], true
}

// Labels returns the labels of the cells arranged in rows.
func (g CellGrid) Labels() [][]string {
	labels := make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		labels[i] = make([]string, len(row))
		for j, c := range row {
			labels[i][j] = c.Label
		}
	}
	return labels
}

// Disabled returns the positions of the disabled cells.
func (g CellGrid) Disabled() []int {
	return g.positions(func(c Cell) bool { return c.Disabled })
}

// Active returns the positions of the active cells.
func (g CellGrid) Active() []int {
	return g.positions(func(c Cell) bool { return c.Active })
}

func (g CellGrid) positions(pred func(Cell) bool) []int {
	r := []int{}
	for c := range g.Cells() {
		if pred(c) {
			r = append(r, c.Position)
		}
	}
	return r
}

// ActiveFunc returns true for values that are to be displayed as active.
type ActiveFunc func(v Value) bool

// Render returns the grid of cells for the page of the strategy's kind
// that contains p's start date. Render is a pure function of its inputs.
func Render(s Strategy, p page.Page, c calendar.Constraints, active ActiveFunc) CellGrid {
	p = page.New(s.Kind(), p.Start())
	values := s.Enumerate(p)
	off := bitmap.New(len(values))
	for _, pos := range s.Disabled(p, c) {
		off.Set(pos)
	}
	cols := s.Columns()
	g := CellGrid{
		Unit:    s.Unit(),
		Page:    p,
		Columns: cols,
		Rows:    make([][]Cell, 0, (len(values)+cols-1)/cols),
	}
	var row []Cell
	for i, v := range values {
		row = append(row, Cell{
			Label:    s.Format(v),
			Position: i,
			Value:    v,
			Disabled: off.IsSet(i),
			Active:   active != nil && active(v),
		})
		if len(row) == cols {
			g.Rows = append(g.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		g.Rows = append(g.Rows, row)
	}
	return g
}

func sameUnit(u selection.Unit, a, b calendar.CalendarDate) bool {
	switch u {
	case selection.Year:
		return a.Year() == b.Year()
	case selection.Month:
		return a.Year() == b.Year() && a.Month() == b.Month()
	}
	return a == b
}

// ActiveDate returns an ActiveFunc that is true for the cell that
// contains d: the day itself, its month or its year.
func ActiveDate(d calendar.CalendarDate) ActiveFunc {
	return func(v Value) bool {
		if d.IsZero() || v.Unit > selection.Day {
			return false
		}
		return sameUnit(v.Unit, v.Date, d)
	}
}

func cellBounds(v Value) (calendar.CalendarDate, calendar.CalendarDate) {
	switch v.Unit {
	case selection.Year:
		return v.Date.StartOfYear(), v.Date.EndOfYear()
	case selection.Month:
		return v.Date.StartOfMonth(), v.Date.EndOfMonth()
	}
	return v.Date, v.Date
}

// ActiveRange returns an ActiveFunc that is true for the cells that
// overlap a complete range or, if only the start is set, the cell that
// contains the start.
func ActiveRange(dr calendar.DateRange) ActiveFunc {
	dr = dr.Normalize()
	return func(v Value) bool {
		if v.Unit > selection.Day {
			return false
		}
		switch {
		case dr.Complete():
			from, to := cellBounds(v)
			return from <= dr.End && to >= dr.Start
		case !dr.Start.IsZero():
			return sameUnit(v.Unit, v.Date, dr.Start)
		}
		return false
	}
}

// ActiveTime returns an ActiveFunc that is true for the hour, or the
// minute, cell that matches t. Minute cells match the minute interval
// that contains t.
func ActiveTime(t timeofday.TimeOfDay) ActiveFunc {
	return func(v Value) bool {
		switch v.Unit {
		case selection.Hour:
			return v.Time.Hour() == t.Hour()
		case selection.Minute:
			m := t.Minute() - t.Minute()%timeofday.DefaultMinuteStep
			return v.Time.Hour() == t.Hour() && v.Time.Minute() == m
		}
		return false
	}
}

// ForUnit returns the Strategy for unit. The hour is used only for
// selection.Minute.
func ForUnit(unit selection.Unit, loc calendar.Locale, mode timeofday.Mode, hour int) Strategy {
	switch unit {
	case selection.Year:
		return Years()
	case selection.Month:
		return Months(loc)
	case selection.Day:
		return Days(loc)
	case selection.Hour:
		return Hours(mode)
	}
	return Minutes(hour, mode)
}
