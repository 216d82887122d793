// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/page"
)

// HeaderData contains what is displayed above a grid.
type HeaderData struct {
	Title    string
	Weekdays []string // Only set for grids of days.
	CanPrev  bool
	CanNext  bool
	Prev     page.Page // p itself when CanPrev is false.
	Next     page.Page // p itself when CanNext is false.
}

// Title returns the title for page p, eg. "May 2018", "2018",
// "2016 - 2027" or "15 May 2018" depending on p's kind.
func Title(p page.Page, loc calendar.Locale) string {
	start := p.Start()
	switch p.Kind() {
	case page.Month:
		return fmt.Sprintf("%s %d", loc.MonthName(start.Month(), true), start.Year())
	case page.Year:
		return fmt.Sprintf("%d", start.Year())
	case page.Decade:
		return fmt.Sprintf("%d - %d", start.Year(), p.End().Year())
	}
	return fmt.Sprintf("%d %s %d", start.Day(), loc.MonthName(start.Month(), true), start.Year())
}

// Header returns the header for the page of the strategy's kind that
// contains p's start date.
func Header(s Strategy, p page.Page, c calendar.Constraints, loc calendar.Locale) HeaderData {
	p = page.New(s.Kind(), p.Start())
	h := HeaderData{
		Title:   Title(p, loc),
		CanPrev: page.CanGoPrev(p, c.Min),
		CanNext: page.CanGoNext(p, c.Max),
		Prev:    p.PrevWithin(c.Min),
		Next:    p.NextWithin(c.Max),
	}
	if p.Kind() == page.Month {
		h.Weekdays = calendar.WeekdayLabels(loc, false)
	}
	return h
}
