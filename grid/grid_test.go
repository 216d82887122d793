// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid_test

import (
	"reflect"
	"testing"
	"time"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/disabled"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/page"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/datepicker/timeofday"
)

var (
	ncd        = calendar.NewCalendarDate
	mondayLoc  = calendar.Locale{}.WithWeekStart(time.Monday)
	englishLoc = calendar.MustNewLocale("en")
	ref        = ncd(2018, 5, 15)
)

func checkShape(t *testing.T, g grid.CellGrid, rows, cols int) {
	t.Helper()
	if got, want := len(g.Rows), rows; got != want {
		t.Fatalf("%v: got %v, want %v", g.Unit, got, want)
	}
	for _, row := range g.Rows {
		if got, want := len(row), cols; got != want {
			t.Fatalf("%v: got %v, want %v", g.Unit, got, want)
		}
	}
	pos := 0
	for c := range g.Cells() {
		if got, want := c.Position, pos; got != want {
			t.Errorf("%v: got %v, want %v", g.Unit, got, want)
		}
		pos++
	}
}

func TestDays(t *testing.T) {
	c := calendar.Constraints{Max: ncd(2018, 5, 20)}
	p := page.New(page.Month, ref)
	g := grid.Render(grid.Days(mondayLoc), p, c, grid.ActiveDate(ref))
	checkShape(t, g, 6, 7)

	if got, want := g.Labels()[0], []string{"30", "1", "2", "3", "4", "5", "6"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Labels()[5], []string{"4", "5", "6", "7", "8", "9", "10"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Disabled(), disabled.Days(mondayLoc, ref, c); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Active(), []int{15}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	cell, ok := g.Cell(15)
	if !ok || cell.Value.Date != ref || cell.Label != "15" || cell.Disabled || !cell.Active {
		t.Errorf("unexpected cell: %+v", cell)
	}
	if _, ok := g.Cell(42); ok {
		t.Errorf("expected no cell at 42")
	}

	g = grid.Render(grid.Days(mondayLoc), p, calendar.Constraints{}, grid.ActiveRange(calendar.DateRange{Start: ref}))
	if got, want := g.Active(), []int{15}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	g = grid.Render(grid.Days(mondayLoc), p, calendar.Constraints{}, grid.ActiveRange(calendar.NewDateRange(ncd(2018, 5, 30), ncd(2018, 6, 2))))
	if got, want := g.Active(), []int{30, 31, 32, 33}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := grid.Render(grid.Days(mondayLoc), p, calendar.Constraints{}, nil).Active(); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestRenderIsPure(t *testing.T) {
	c := calendar.Constraints{
		Min:      ncd(2018, 5, 3),
		Max:      ncd(2018, 5, 20),
		Disabled: calendar.CalendarDateList{ncd(2018, 5, 10)},
	}
	active := grid.ActiveRange(calendar.NewDateRange(ncd(2018, 5, 8), ncd(2018, 5, 12)))
	for _, s := range []grid.Strategy{
		grid.Days(mondayLoc),
		grid.Months(englishLoc),
		grid.Years(),
		grid.Hours(timeofday.ModeAMPM),
		grid.Minutes(13, timeofday.Mode24),
	} {
		p := page.New(s.Kind(), ref)
		a := grid.Render(s, p, c, active)
		b := grid.Render(s, p, c, active)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%v: renders differ", s.Unit())
		}
		// The page is aligned to the strategy's kind.
		if got, want := grid.Render(s, page.New(page.Day, ref), c, active), a; !reflect.DeepEqual(got, want) {
			t.Errorf("%v: renders differ", s.Unit())
		}
	}
}

func TestMonthsAndYears(t *testing.T) {
	g := grid.Render(grid.Months(englishLoc), page.New(page.Year, ref),
		calendar.Constraints{Min: ncd(2018, 3, 10)},
		grid.ActiveRange(calendar.NewDateRange(ncd(2018, 3, 10), ncd(2018, 5, 2))))
	checkShape(t, g, 4, 3)
	if got, want := g.Labels()[0], []string{"Jan", "Feb", "Mar"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Active(), []int{2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Disabled(), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	g = grid.Render(grid.Years(), page.New(page.Decade, ref),
		calendar.Constraints{Max: ncd(2025, 1, 1)}, grid.ActiveDate(ref))
	checkShape(t, g, 4, 3)
	if got, want := g.Labels()[0], []string{"2016", "2017", "2018"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Active(), []int{2}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Disabled(), []int{10, 11}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimes(t *testing.T) {
	tod := timeofday.NewTimeOfDay(13, 22, 0)
	p := page.New(page.Day, ref)
	g := grid.Render(grid.Hours(timeofday.ModeAMPM), p, calendar.Constraints{}, grid.ActiveTime(tod))
	checkShape(t, g, 6, 4)
	if got, want := g.Labels()[0], []string{"12:00 am", "01:00 am", "02:00 am", "03:00 am"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Active(), []int{13}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := g.Disabled(); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
	g = grid.Render(grid.Hours(timeofday.Mode24), p, calendar.Constraints{Max: ref.Yesterday()}, nil)
	if got, want := len(g.Disabled()), 24; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	g = grid.Render(grid.Minutes(13, timeofday.Mode24), p, calendar.Constraints{}, grid.ActiveTime(tod))
	checkShape(t, g, 4, 3)
	if got, want := g.Labels()[0], []string{"13:00", "13:05", "13:10"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Active(), []int{4}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// Dates do not activate time cells.
	g = grid.Render(grid.Minutes(13, timeofday.Mode24), p, calendar.Constraints{}, grid.ActiveDate(ref))
	if got := g.Active(); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestHeader(t *testing.T) {
	c := calendar.Constraints{Min: ncd(2018, 5, 1), Max: ncd(2018, 6, 15)}
	p := page.New(page.Month, ref)
	h := grid.Header(grid.Days(englishLoc), p, c, englishLoc)
	if got, want := h.Title, "May 2018"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Weekdays, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if h.CanPrev || !h.CanNext {
		t.Errorf("got %v, %v, want false, true", h.CanPrev, h.CanNext)
	}
	if got, want := h.Prev, p; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Next, p.Next(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	h = grid.Header(grid.Years(), p, c, englishLoc)
	if got, want := h.Title, "2016 - 2027"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if h.Weekdays != nil || h.CanPrev || h.CanNext {
		t.Errorf("unexpected header: %+v", h)
	}

	h = grid.Header(grid.Hours(timeofday.Mode24), p, c, englishLoc)
	if got, want := h.Title, "1 May 2018"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if h.CanPrev || !h.CanNext {
		t.Errorf("got %v, %v, want false, true", h.CanPrev, h.CanNext)
	}
	if got, want := grid.Title(page.New(page.Year, ref), englishLoc), "2018"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestForUnit(t *testing.T) {
	for _, tc := range []struct {
		unit selection.Unit
		kind page.Kind
		cols int
	}{
		{selection.Year, page.Decade, 3},
		{selection.Month, page.Year, 3},
		{selection.Day, page.Month, 7},
		{selection.Hour, page.Day, 4},
		{selection.Minute, page.Day, 3},
	} {
		s := grid.ForUnit(tc.unit, englishLoc, timeofday.Mode24, 10)
		if got, want := s.Unit(), tc.unit; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := s.Kind(), tc.kind; got != want {
			t.Errorf("%v: got %v, want %v", tc.unit, got, want)
		}
		if got, want := s.Columns(), tc.cols; got != want {
			t.Errorf("%v: got %v, want %v", tc.unit, got, want)
		}
	}
}

func seq(from, to int) []int {
	r := []int{}
	for i := from; i <= to; i++ {
		r = append(r, i)
	}
	return r
}

func TestTimeOnlyStepper(t *testing.T) {
	st, err := selection.NewStepper([]selection.Unit{selection.Hour, selection.Minute}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	p := st.Page()
	if got, want := p.Kind(), page.Day; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.Start().IsZero() {
		t.Fatalf("page for a time only picker has no date")
	}
	s := grid.Hours(timeofday.Mode24)
	h := grid.Header(s, p, calendar.Constraints{}, calendar.Locale{})
	if !h.CanPrev || !h.CanNext {
		t.Errorf("got prev %v, next %v, want both", h.CanPrev, h.CanNext)
	}
	if got, want := h.Next.Start(), p.Start().Tomorrow(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Prev.Start(), p.Start().Yesterday(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	g := grid.Render(s, p, calendar.Constraints{}, nil)
	checkShape(t, g, 6, 4)
	if got := g.Disabled(); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}

	// Every hour of a day before the minimum date is disabled and the
	// header does not allow moving further back.
	c := calendar.Constraints{Min: p.Start().Tomorrow()}
	g = grid.Render(s, p, c, nil)
	if got, want := g.Disabled(), seq(0, 23); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for cell := range g.Cells() {
		if !cell.Disabled {
			t.Errorf("%v: not disabled", cell.Label)
		}
	}
	h = grid.Header(s, p, c, calendar.Locale{})
	if h.CanPrev || h.Prev != p {
		t.Errorf("got prev %v %v, want none", h.CanPrev, h.Prev)
	}

	st, err = st.Pick(9)
	if err != nil {
		t.Fatal(err)
	}
	g = grid.Render(grid.ForUnit(st.Unit(), calendar.Locale{}, timeofday.Mode24, st.Time().Hour()), st.Page(), c, nil)
	if got, want := g.Disabled(), seq(0, 11); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
