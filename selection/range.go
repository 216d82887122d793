// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package selection

import (
	"fmt"

	"cloudeng.io/datepicker/calendar"
)

// State represents the number of endpoints set in a Range.
type State int

const (
	Empty    State = iota // Neither start nor end is set.
	HasStart              // Only the start is set.
	HasBoth               // Both start and end are set.
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case HasStart:
		return "has-start"
	case HasBoth:
		return "has-both"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Range represents the selection of a range of dates by clicking on its
// start and then its end.
type Range struct {
	opts options
	dr   calendar.DateRange
}

// NewRange returns an empty Range.
func NewRange(opts ...Option) Range {
	return Range{opts: newOptions(opts)}
}

// State returns the current state of the range.
func (r Range) State() State {
	switch {
	case r.dr.Complete():
		return HasBoth
	case r.dr.HasStart():
		return HasStart
	}
	return Empty
}

// Value returns the currently selected range.
func (r Range) Value() calendar.DateRange {
	return r.dr
}

// Set returns a Range with dr as its value without notifying the
// ChangeFunc. It is intended for values supplied from outside of the
// picker: endpoints that are out of order are swapped and a lone end
// date is treated as the start.
func (r Range) Set(dr calendar.DateRange) Range {
	if dr.Start.IsZero() {
		dr.Start, dr.End = dr.End, 0
	}
	r.dr = dr.Normalize()
	return r
}

// Click applies a click on d to the range and notifies the ChangeFunc
// with the formatted result:
//
//   - Empty: d becomes the start.
//   - HasStart: d becomes the end unless it is before the start, in
//     which case the range is reset to Empty.
//   - HasBoth: the range is reset to Empty, or, with RestartOnThirdClick,
//     d becomes the start of a new range.
//
// Clicks on an unset date are ignored.
func (r Range) Click(d calendar.CalendarDate) Range {
	if d.IsZero() {
		return r
	}
	switch r.State() {
	case Empty:
		r.dr = calendar.DateRange{Start: d}
	case HasStart:
		if d.Before(r.dr.Start) {
			r.dr = calendar.DateRange{}
		} else {
			r.dr.End = d
		}
	case HasBoth:
		if r.opts.thirdClick == RestartOnThirdClick {
			r.dr = calendar.DateRange{Start: d}
		} else {
			r.dr = calendar.DateRange{}
		}
	}
	r.opts.notify(r.String())
	return r
}

// Clear resets the range to Empty and notifies the ChangeFunc.
func (r Range) Clear() Range {
	r.dr = calendar.DateRange{}
	r.opts.notify(r.String())
	return r
}

// String returns the range formatted as "<start> - <end>" using the
// configured layout, with calendar.Placeholder for unset endpoints.
func (r Range) String() string {
	return r.dr.Format(r.opts.layout)
}
