// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CalendarDate represents a date with a year, month and day. The year is
// stored in the top 16 bits, the month in the next 8 and the day in the
// lowest 8 bits so that CalendarDate values can be compared and sorted as
// integers. The zero value represents an unset date.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(year)<<16 | uint32(month)<<8 | uint32(day)) // #nosec G115
}

// CalendarDateFromTime returns the CalendarDate for the specified time.
func CalendarDateFromTime(t time.Time) CalendarDate {
	return NewCalendarDate(t.Year(), Month(t.Month()), t.Day())
}

// Today returns the CalendarDate for the current day in the specified location.
func Today(loc *time.Location) CalendarDate {
	return CalendarDateFromTime(time.Now().In(loc))
}

func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// IsZero returns true for the zero, unset, CalendarDate.
func (cd CalendarDate) IsZero() bool {
	return cd == 0
}

// Time returns a time.Time for midnight of the date in the specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Time(time.UTC).Weekday()
}

// Before returns true if cd is strictly before d.
func (cd CalendarDate) Before(d CalendarDate) bool {
	return cd < d
}

// After returns true if cd is strictly after d.
func (cd CalendarDate) After(d CalendarDate) bool {
	return cd > d
}

// Tomorrow returns the date of the next day.
// 12/31 wraps to 1/1 of the following year. The zero date is returned
// unchanged.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.IsZero() {
		return cd
	}
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 12 && day == 31 {
		return NewCalendarDate(year+1, 1, 1)
	}
	if day >= daysInMonthForYear(year)[month-1] {
		return NewCalendarDate(year, month+1, 1)
	}
	return NewCalendarDate(year, month, day+1)
}

// Yesterday returns the date of the previous day.
// 1/1 wraps to 12/31 of the previous year. The zero date is returned
// unchanged.
func (cd CalendarDate) Yesterday() CalendarDate {
	if cd.IsZero() {
		return cd
	}
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 1 && day <= 1 {
		return NewCalendarDate(year-1, 12, 31)
	}
	if day <= 1 {
		return NewCalendarDate(year, month-1, daysInMonthForYear(year)[month-2])
	}
	return NewCalendarDate(year, month, day-1)
}

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	switch {
	case n == 0, cd.IsZero():
		return cd
	case n == 1:
		return cd.Tomorrow()
	case n == -1:
		return cd.Yesterday()
	}
	t := time.Date(cd.Year(), time.Month(cd.Month()), cd.Day()+n, 0, 0, 0, 0, time.UTC)
	return CalendarDateFromTime(t)
}

// AddMonths returns the date n months after cd, n may be negative. The day
// is clamped to the last day of the resulting month, so that Jan 31 plus
// one month is Feb 28 (or 29). The zero date is returned unchanged.
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	if cd.IsZero() {
		return cd
	}
	total := cd.Year()*12 + int(cd.Month()) - 1 + n
	year, month := total/12, Month(total%12+1)
	day := min(cd.Day(), DaysInMonth(year, month))
	return NewCalendarDate(year, month, day)
}

// AddYears returns the date n years after cd, Feb 29 becomes Feb 28
// for non-leap years.
func (cd CalendarDate) AddYears(n int) CalendarDate {
	return cd.AddMonths(n * 12)
}

// StartOfMonth returns the first day of cd's month.
func (cd CalendarDate) StartOfMonth() CalendarDate {
	if cd.IsZero() {
		return cd
	}
	return NewCalendarDate(cd.Year(), cd.Month(), 1)
}

// EndOfMonth returns the last day of cd's month.
func (cd CalendarDate) EndOfMonth() CalendarDate {
	if cd.IsZero() {
		return cd
	}
	return NewCalendarDate(cd.Year(), cd.Month(), DaysInMonth(cd.Year(), cd.Month()))
}

// StartOfYear returns Jan 1 of cd's year.
func (cd CalendarDate) StartOfYear() CalendarDate {
	if cd.IsZero() {
		return cd
	}
	return NewCalendarDate(cd.Year(), 1, 1)
}

// EndOfYear returns Dec 31 of cd's year.
func (cd CalendarDate) EndOfYear() CalendarDate {
	if cd.IsZero() {
		return cd
	}
	return NewCalendarDate(cd.Year(), 12, 31)
}

// DaysUntil returns the number of days from cd to d, negative if d
// is before cd.
func (cd CalendarDate) DaysUntil(d CalendarDate) int {
	return int(d.Time(time.UTC).Sub(cd.Time(time.UTC)).Hours() / 24)
}

// Format formats the date using a time.Time layout, eg. "02-01-2006".
// The zero date is formatted as an empty string.
func (cd CalendarDate) Format(layout string) string {
	if cd.IsZero() {
		return ""
	}
	return cd.Time(time.UTC).Format(layout)
}

// String returns the date in ISO 8601 format, ie. 2006-01-02.
func (cd CalendarDate) String() string {
	if cd.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

// Layouts accepted by Parse, in the order that they are tried.
var parseLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"Jan-02-2006",
}

// Parse parses a date in formats '2006-01-02', '02-01-2006', '01/02/2006'
// or 'Jan-02-2006'.
func (cd *CalendarDate) Parse(val string) error {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			*cd = CalendarDateFromTime(t)
			return nil
		}
	}
	return fmt.Errorf("%w: %q, expected one of %s", ErrInvalidDate, val, strings.Join(parseLayouts, ", "))
}

// ParseLayout parses val using the supplied time.Time layout.
func ParseLayout(layout, val string) (CalendarDate, error) {
	t, err := time.Parse(layout, strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDate, val, err)
	}
	return CalendarDateFromTime(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. An empty value is
// treated as an unset date.
func (cd *CalendarDate) UnmarshalYAML(node *yaml.Node) error {
	if len(strings.TrimSpace(node.Value)) == 0 {
		*cd = 0
		return nil
	}
	return cd.Parse(node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (cd CalendarDate) MarshalYAML() (any, error) {
	return cd.String(), nil
}

// CalendarDateList represents a list of CalendarDate values, it can be sorted
// and searched using the slices package.
type CalendarDateList []CalendarDate

// Parse a comma separated list of CalendarDates. The parsed list is
// sorted and without duplicates.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	dl := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var cd CalendarDate
		if err := cd.Parse(part); err != nil {
			return err
		}
		dl = append(dl, cd)
	}
	dl.Sort()
	*cdl = dl
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Sort sorts the list in place and removes duplicates.
func (cdl *CalendarDateList) Sort() {
	slices.Sort(*cdl)
	*cdl = slices.Compact(*cdl)
}

// Contains returns true if d is in the list.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	return slices.Contains(cdl, d)
}

// Between returns an iterator over the dates in the list that fall within
// from and to inclusive.
func (cdl CalendarDateList) Between(from, to CalendarDate) iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		for _, d := range cdl {
			if d < from || d > to {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}
