// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"strings"
)

// Placeholder is used in place of a missing endpoint when formatting a
// DateRange.
const Placeholder = ". . ."

// DateRange represents a range of dates, inclusive of Start and End.
// Either endpoint may be unset (zero). When both are set Start is never
// after End if the range was created by NewDateRange or Normalize.
type DateRange struct {
	Start, End CalendarDate
}

// NewDateRange returns a DateRange for the start and end dates. If both
// are set and start is later than end then they are swapped.
func NewDateRange(start, end CalendarDate) DateRange {
	return DateRange{Start: start, End: end}.Normalize()
}

// Normalize returns a DateRange whose endpoints are swapped if both are
// set and Start is after End.
func (dr DateRange) Normalize() DateRange {
	if !dr.Start.IsZero() && !dr.End.IsZero() && dr.Start > dr.End {
		dr.Start, dr.End = dr.End, dr.Start
	}
	return dr
}

// Empty returns true if neither endpoint is set.
func (dr DateRange) Empty() bool {
	return dr.Start.IsZero() && dr.End.IsZero()
}

// HasStart returns true if only the start date is set.
func (dr DateRange) HasStart() bool {
	return !dr.Start.IsZero() && dr.End.IsZero()
}

// Complete returns true if both endpoints are set.
func (dr DateRange) Complete() bool {
	return !dr.Start.IsZero() && !dr.End.IsZero()
}

// Include returns true if d falls within a complete range, or equals
// the start date of a range that has only a start date.
func (dr DateRange) Include(d CalendarDate) bool {
	switch {
	case dr.Complete():
		return d >= dr.Start && d <= dr.End
	case !dr.Start.IsZero():
		return d == dr.Start
	}
	return false
}

// Dates returns an iterator that yields each date in a complete range.
func (dr DateRange) Dates() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		if !dr.Complete() {
			return
		}
		for d := dr.Start; d <= dr.End; d = d.Tomorrow() {
			if !yield(d) {
				return
			}
		}
	}
}

// Format formats the range as "<start> - <end>" using the supplied
// time.Time layout for each endpoint and Placeholder for missing ones,
// eg. "10-06-2015 - . . .".
func (dr DateRange) Format(layout string) string {
	start, end := Placeholder, Placeholder
	if !dr.Start.IsZero() {
		start = dr.Start.Format(layout)
	}
	if !dr.End.IsZero() {
		end = dr.End.Format(layout)
	}
	return start + " - " + end
}

func (dr DateRange) String() string {
	return dr.Format("2006-01-02")
}

// ParseRange parses a range formatted by Format with the same layout.
// Placeholders are parsed as unset endpoints. The result is normalized.
func ParseRange(layout, val string) (DateRange, error) {
	parts := strings.SplitN(val, " - ", 2)
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("%w: %q, expected '<start> - <end>'", ErrInvalidDate, val)
	}
	var dr DateRange
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == Placeholder || len(p) == 0 {
			continue
		}
		cd, err := ParseLayout(layout, p)
		if err != nil {
			return DateRange{}, err
		}
		if i == 0 {
			dr.Start = cd
		} else {
			dr.End = cd
		}
	}
	return dr.Normalize(), nil
}
