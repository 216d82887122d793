// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package selection provides the state machines that turn cell clicks
// into a selected date, date range or, for multi step pickers, a date
// and time. All of the types are values: each click returns a new value
// and reports the formatted selection via a caller supplied ChangeFunc.
package selection

import (
	"fmt"
	"strings"

	"cloudeng.io/datepicker/timeofday"
	"gopkg.in/yaml.v3"
)

// DefaultLayout is the layout, in time.Time format, used for dates
// unless overridden by WithLayout.
const DefaultLayout = "02-01-2006"

// ChangeFunc is called with the formatted selection whenever it changes.
type ChangeFunc func(value string)

// ThirdClick determines how a Range responds to a click when both its
// start and end are already set.
type ThirdClick int

const (
	// ResetOnThirdClick clears the range and the click is not used as the
	// start of a new range.
	ResetOnThirdClick ThirdClick = iota
	// RestartOnThirdClick starts a new range with the clicked date.
	RestartOnThirdClick
)

func (tc ThirdClick) String() string {
	if tc == RestartOnThirdClick {
		return "restart"
	}
	return "reset"
}

// ParseThirdClick parses "reset" or "restart".
func ParseThirdClick(val string) (ThirdClick, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "reset", "":
		return ResetOnThirdClick, nil
	case "restart":
		return RestartOnThirdClick, nil
	}
	return ResetOnThirdClick, fmt.Errorf("unrecognised third click policy: %q, expected reset or restart", val)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (tc *ThirdClick) UnmarshalYAML(node *yaml.Node) error {
	p, err := ParseThirdClick(node.Value)
	if err != nil {
		return err
	}
	*tc = p
	return nil
}

type options struct {
	layout     string
	onChange   ChangeFunc
	thirdClick ThirdClick
	mode       timeofday.Mode
}

// Option represents an option to the constructors in this package.
type Option func(o *options)

// WithLayout sets the time.Time layout used to format dates.
func WithLayout(layout string) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// WithOnChange sets the function to be called when the selection changes.
func WithOnChange(fn ChangeFunc) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithThirdClick sets the policy for a click on a complete Range.
func WithThirdClick(policy ThirdClick) Option {
	return func(o *options) {
		o.thirdClick = policy
	}
}

// WithTimeMode sets the mode used to format times.
func WithTimeMode(mode timeofday.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

func newOptions(opts []Option) options {
	o := options{layout: DefaultLayout}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) notify(value string) {
	if o.onChange != nil {
		o.onChange(value)
	}
}
