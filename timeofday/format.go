// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timeofday

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// HoursPerDay is the number of cells on an hour grid.
	HoursPerDay = 24
	// DefaultMinuteStep is the interval between the cells of a minute grid.
	DefaultMinuteStep = 5
)

func format(hour, minute int, mode Mode) string {
	if mode == Mode24 {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	if mode == ModeAMPMUpper {
		suffix = strings.ToUpper(suffix)
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, minute, suffix)
}

func parseField(name, val string, limit int) (int, error) {
	if !isDigits(val) || len(val) > 2 {
		return 0, fmt.Errorf("%w: %s: %q", ErrInvalidTime, name, val)
	}
	n, err := strconv.Atoi(val)
	if err != nil || n > limit {
		return 0, fmt.Errorf("%w: %s: %q", ErrInvalidTime, name, val)
	}
	return n, nil
}

// FormatTime formats an hour, "00".."23", and minute, "00".."59", pair.
// Mode24 yields "HH:MM", the am/pm modes yield "HH:MM am" with the hour
// converted to the 12 hour clock, ie. "00" and "12" become "12".
func FormatTime(hour, minute string, mode Mode) (string, error) {
	if mode < Mode24 || mode > ModeAMPMUpper {
		return "", fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	h, err := parseField("hour", hour, 23)
	if err != nil {
		return "", err
	}
	m, err := parseField("minute", minute, 59)
	if err != nil {
		return "", err
	}
	return format(h, m, mode), nil
}

// Hours returns the 24 hours of a day, on the hour.
func Hours() []TimeOfDay {
	hours := make([]TimeOfDay, HoursPerDay)
	for h := range hours {
		hours[h] = NewTimeOfDay(h, 0, 0)
	}
	return hours
}

// Minutes returns the times within hour, one every step minutes starting
// on the hour. A step that does not lie within 1-60 is replaced by
// DefaultMinuteStep.
func Minutes(hour, step int) []TimeOfDay {
	if step < 1 || step > 60 {
		step = DefaultMinuteStep
	}
	minutes := make([]TimeOfDay, 0, 60/step)
	for m := 0; m < 60; m += step {
		minutes = append(minutes, NewTimeOfDay(hour, m, 0))
	}
	return minutes
}

func labels(times []TimeOfDay, mode Mode) []string {
	l := make([]string, len(times))
	for i, t := range times {
		l[i] = t.Format(mode)
	}
	return l
}

// HourLabels returns the labels for the 24 cells of an hour grid, eg.
// "00:00" to "23:00" for Mode24.
func HourLabels(mode Mode) []string {
	return labels(Hours(), mode)
}

// MinuteLabels returns the labels for the cells of a minute grid as
// enumerated by Minutes.
func MinuteLabels(hour, step int, mode Mode) []string {
	return labels(Minutes(hour, step), mode)
}
