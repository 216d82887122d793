// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package selection

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/page"
	"cloudeng.io/datepicker/timeofday"
)

// Unit represents the component of a date or time picked at each step
// of a Stepper.
type Unit int

const (
	Year Unit = iota
	Month
	Day
	Hour
	Minute
)

var unitNames = []string{"year", "month", "day", "hour", "minute"}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnits parses a sequence of unit names separated by commas or
// arrows, eg. "year,month,day" or "day->hour->minute".
func ParseUnits(val string) ([]Unit, error) {
	val = strings.ReplaceAll(val, "->", ",")
	var units []Unit
	for _, p := range strings.Split(val, ",") {
		p = strings.TrimSpace(p)
		found := false
		for i, n := range unitNames {
			if strings.EqualFold(p, n) {
				units = append(units, Unit(i))
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unrecognised unit: %q", p)
		}
	}
	return units, nil
}

// PageKind returns the kind of page used to display the cells for unit.
func (u Unit) PageKind() page.Kind {
	switch u {
	case Year:
		return page.Decade
	case Month:
		return page.Year
	case Day:
		return page.Month
	}
	return page.Day
}

// Stepper represents a multi step picker where a fixed sequence of
// units, eg. year then month then day, are picked in turn. The final
// pick completes the selection and notifies the ChangeFunc.
type Stepper struct {
	opts  options
	units []Unit
	step  int
	done  bool
	date  calendar.CalendarDate
	tod   timeofday.TimeOfDay
}

// NewStepper returns a Stepper for the sequence of units starting with
// date and tod as the initial values. The units must be contiguous and
// in increasing order, eg. year,month,day or day,hour,minute. Sequences
// that pick only a time default an unset date to today.
func NewStepper(units []Unit, date calendar.CalendarDate, tod timeofday.TimeOfDay, opts ...Option) (Stepper, error) {
	if len(units) == 0 {
		return Stepper{}, fmt.Errorf("no units specified")
	}
	for i, u := range units {
		if u < Year || u > Minute {
			return Stepper{}, fmt.Errorf("invalid unit: %v", u)
		}
		if i > 0 && u != units[i-1]+1 {
			return Stepper{}, fmt.Errorf("units must be contiguous and increasing: %v follows %v", u, units[i-1])
		}
	}
	if date.IsZero() {
		if units[0] <= Day {
			return Stepper{}, fmt.Errorf("an initial date is required to pick a %v", units[0])
		}
		date = calendar.Today(time.Local)
	}
	return Stepper{
		opts:  newOptions(opts),
		units: units,
		date:  date,
		tod:   tod,
	}, nil
}

// Unit returns the unit to be picked next.
func (s Stepper) Unit() Unit {
	return s.units[s.step]
}

// Units returns the sequence of units.
func (s Stepper) Units() []Unit {
	return s.units
}

// Done returns true once the final unit has been picked.
func (s Stepper) Done() bool {
	return s.done
}

// Date returns the currently selected date.
func (s Stepper) Date() calendar.CalendarDate {
	return s.date
}

// Time returns the currently selected time of day.
func (s Stepper) Time() timeofday.TimeOfDay {
	return s.tod
}

// Page returns the page that displays the cells for the current unit.
func (s Stepper) Page() page.Page {
	return page.New(s.Unit().PageKind(), s.date)
}

func clampDay(year int, month calendar.Month, day int) calendar.CalendarDate {
	return calendar.NewCalendarDate(year, month, min(day, calendar.DaysInMonth(year, month)))
}

func (s Stepper) apply(value int) (Stepper, error) {
	d := s.date
	switch s.Unit() {
	case Year:
		if value < 1 || value > 9999 {
			return s, fmt.Errorf("invalid year: %v", value)
		}
		s.date = clampDay(value, d.Month(), d.Day())
	case Month:
		if value < 1 || value > 12 {
			return s, fmt.Errorf("invalid month: %v", value)
		}
		s.date = clampDay(d.Year(), calendar.Month(value), d.Day())
	case Day:
		if value < 1 || value > calendar.DaysInMonth(d.Year(), d.Month()) {
			return s, fmt.Errorf("invalid day: %v for %v", value, d.Format("Jan 2006"))
		}
		s.date = calendar.NewCalendarDate(d.Year(), d.Month(), value)
	case Hour:
		if value < 0 || value > 23 {
			return s, fmt.Errorf("invalid hour: %v", value)
		}
		s.tod = timeofday.NewTimeOfDay(value, s.tod.Minute(), 0)
	case Minute:
		if value < 0 || value > 59 {
			return s, fmt.Errorf("invalid minute: %v", value)
		}
		s.tod = timeofday.NewTimeOfDay(s.tod.Hour(), value, 0)
	}
	return s, nil
}

// Pick sets the current unit to value, a year, a month 1-12, a day of the
// month, an hour 0-23 or a minute 0-59, and advances to the next unit.
// Picking the final unit completes the selection and notifies the
// ChangeFunc; further picks replace the final unit and notify again.
func (s Stepper) Pick(value int) (Stepper, error) {
	s, err := s.apply(value)
	if err != nil {
		return s, err
	}
	if s.step < len(s.units)-1 {
		s.step++
		return s, nil
	}
	s.done = true
	s.opts.notify(s.String())
	return s, nil
}

// Back returns to the previous unit, it is a no-op for the first unit.
func (s Stepper) Back() Stepper {
	s.done = false
	if s.step > 0 {
		s.step--
	}
	return s
}

func (s Stepper) hasDate() bool {
	return s.units[0] <= Day
}

func (s Stepper) hasTime() bool {
	return s.units[len(s.units)-1] >= Hour
}

// String returns the current selection formatted according to the units
// being picked: a date using the configured layout, a time using the
// configured time mode or both separated by a space. A sequence that
// stops at the year or month is formatted as "2006" or "01-2006".
func (s Stepper) String() string {
	var date string
	if s.hasDate() {
		switch s.units[len(s.units)-1] {
		case Year:
			date = s.date.Format("2006")
		case Month:
			date = s.date.Format("01-2006")
		default:
			date = s.date.Format(s.opts.layout)
		}
	}
	if !s.hasTime() {
		return date
	}
	tm := s.tod.Format(s.opts.mode)
	if len(date) == 0 {
		return tm
	}
	return date + " " + tm
}
