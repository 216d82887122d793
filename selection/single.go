// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package selection

import "cloudeng.io/datepicker/calendar"

// Single represents the selection of a single date, each click replaces
// the active date.
type Single struct {
	opts   options
	active calendar.CalendarDate
}

// NewSingle returns a Single with no active date.
func NewSingle(opts ...Option) Single {
	return Single{opts: newOptions(opts)}
}

// Active returns the active date, zero if none is selected.
func (s Single) Active() calendar.CalendarDate {
	return s.active
}

// Set returns a Single with d as the active date without notifying the
// ChangeFunc. It is intended for initial values.
func (s Single) Set(d calendar.CalendarDate) Single {
	s.active = d
	return s
}

// Click selects d and notifies the ChangeFunc.
func (s Single) Click(d calendar.CalendarDate) Single {
	s.active = d
	s.opts.notify(s.String())
	return s
}

// Clear removes the active date and notifies the ChangeFunc with an
// empty string.
func (s Single) Clear() Single {
	s.active = 0
	s.opts.notify("")
	return s
}

// String returns the active date formatted using the configured layout.
func (s Single) String() string {
	return s.active.Format(s.opts.layout)
}
