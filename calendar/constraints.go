// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
)

// Constraints represents the optional bounds and explicitly disabled dates
// that limit which dates may be selected. Unset (zero) bounds and an empty
// Disabled list impose no constraint.
type Constraints struct {
	Min      CalendarDate     `yaml:"min"`      // If set, dates before Min are excluded
	Max      CalendarDate     `yaml:"max"`      // If set, dates after Max are excluded
	Disabled CalendarDateList `yaml:"disabled"` // If non-empty, exclude these dates
}

func (c Constraints) String() string {
	var out strings.Builder
	if !c.Min.IsZero() {
		fmt.Fprintf(&out, "on or after %s", c.Min)
	}
	if !c.Max.IsZero() {
		if out.Len() > 0 {
			out.WriteString(", ")
		}
		fmt.Fprintf(&out, "on or before %s", c.Max)
	}
	if len(c.Disabled) > 0 {
		if out.Len() > 0 {
			out.WriteString(", ")
		}
		out.WriteString("excluding: ")
		out.WriteString(c.Disabled.String())
	}
	return out.String()
}

// Include returns true if the given date satisfies the constraints.
// An empty set of Constraints will return true, ie. include all dates.
func (c Constraints) Include(d CalendarDate) bool {
	if !c.Min.IsZero() && d < c.Min {
		return false
	}
	if !c.Max.IsZero() && d > c.Max {
		return false
	}
	return !c.Disabled.Contains(d)
}

// Empty returns true if no constraints are set.
func (c Constraints) Empty() bool {
	return c.Min.IsZero() && c.Max.IsZero() && len(c.Disabled) == 0
}

// Validate reports constraints that cannot be satisfied by any date: Min
// after Max and disabled dates that fall outside of the Min/Max bounds
// are reported. The constraints remain usable when Validate fails.
func (c Constraints) Validate() error {
	errs := &errors.M{}
	if !c.Min.IsZero() && !c.Max.IsZero() && c.Min > c.Max {
		errs.Append(fmt.Errorf("min %s is after max %s", c.Min, c.Max))
	}
	for _, d := range c.Disabled {
		if d.IsZero() {
			errs.Append(fmt.Errorf("%w: unset disabled date", ErrInvalidDate))
			continue
		}
		if (!c.Min.IsZero() && d < c.Min) || (!c.Max.IsZero() && d > c.Max) {
			errs.Append(fmt.Errorf("disabled date %s is outside of the min/max bounds", d))
		}
	}
	return errs.Err()
}
