// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timeofday provides a compact time of day and its formatting in
// 24 hour and 12 hour (am/pm) modes as used by hour and minute pickers.
package timeofday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidTime is returned, wrapped, for times that cannot be parsed.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidMode is returned, wrapped, for unrecognised time modes.
	ErrInvalidMode = errors.New("invalid time mode")
)

// Mode determines how times are formatted.
type Mode int

const (
	Mode24        Mode = iota // "13:05"
	ModeAMPM                  // "01:05 pm"
	ModeAMPMUpper             // "01:05 PM"
)

var modeNames = []string{"24", "ampm", "AMPM"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses "24", "ampm" or "AMPM". The comparison is case
// sensitive since the case of the am/pm suffix depends on it.
func ParseMode(val string) (Mode, error) {
	for i, n := range modeNames {
		if val == n {
			return Mode(i), nil
		}
	}
	return Mode24, fmt.Errorf("%w: %q, expected one of %s", ErrInvalidMode, val, strings.Join(modeNames, ", "))
}

// UnmarshalYAML implements yaml.Unmarshaler. An empty value is Mode24.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	if len(node.Value) == 0 {
		*m = Mode24
		return nil
	}
	mode, err := ParseMode(node.Value)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// TimeOfDay represents a time of day.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

// TimeOfDayFromTime returns a TimeOfDay from the specified time.Time.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Format returns the hour and minute formatted according to mode, the
// seconds are ignored.
func (t TimeOfDay) Format(mode Mode) string {
	return format(t.Hour(), t.Minute(), mode)
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return len(s) > 0
}

const (
	noAMPM = iota
	am
	pm
)

func parseHour(h string, ampmState int) (int, error) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: hour: %q", ErrInvalidTime, h)
	}
	if ampmState == noAMPM {
		return hour, nil
	}
	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour: %q with am/pm", ErrInvalidTime, h)
	}
	hour %= 12
	if ampmState == pm {
		hour += 12
	}
	return hour, nil
}

func parseMinuteOrSecond(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 59 {
		return 0, fmt.Errorf("%w: %s: %q", ErrInvalidTime, name, v)
	}
	return n, nil
}

func parseHourMinuteSec(h, m, s string, ampmState int) (TimeOfDay, error) {
	if !isDigits(h) || !isDigits(m) || !isDigits(s) {
		return 0, fmt.Errorf("%w: %s:%s:%s", ErrInvalidTime, h, m, s)
	}
	hour, err := parseHour(h, ampmState)
	if err != nil {
		return 0, err
	}
	minute, err := parseMinuteOrSecond("minute", m)
	if err != nil {
		return 0, err
	}
	sec, err := parseMinuteOrSecond("second", s)
	if err != nil {
		return 0, err
	}
	return NewTimeOfDay(hour, minute, sec), nil
}

// Parse val in formats '08[:12[:10]][am|pm]'. With am/pm the hour
// must be in the range 1-12 with 12am being midnight and 12pm noon.
func (t *TimeOfDay) Parse(val string) error {
	tl := strings.TrimSpace(strings.ToLower(val))
	if len(tl) == 0 {
		return fmt.Errorf("%w: empty value, expected '08[:12][:10][am|pm]'", ErrInvalidTime)
	}
	ampmState := noAMPM
	switch {
	case strings.HasSuffix(tl, "am"):
		tl, ampmState = strings.TrimSpace(tl[:len(tl)-2]), am
	case strings.HasSuffix(tl, "pm"):
		tl, ampmState = strings.TrimSpace(tl[:len(tl)-2]), pm
	}
	parts := strings.Split(tl, ":")
	var (
		tod TimeOfDay
		err error
	)
	switch len(parts) {
	case 1:
		tod, err = parseHourMinuteSec(parts[0], "0", "0", ampmState)
	case 2:
		tod, err = parseHourMinuteSec(parts[0], parts[1], "0", ampmState)
	case 3:
		tod, err = parseHourMinuteSec(parts[0], parts[1], parts[2], ampmState)
	default:
		err = fmt.Errorf("%w: %q, expected '08[:12][:10][am|pm]'", ErrInvalidTime, val)
	}
	if err != nil {
		return err
	}
	*t = tod
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	return t.Parse(node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (t TimeOfDay) MarshalYAML() (any, error) {
	return t.String(), nil
}
