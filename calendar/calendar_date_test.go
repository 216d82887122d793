// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"cloudeng.io/datepicker/calendar"
	"gopkg.in/yaml.v3"
)

func TestCalendarDateFields(t *testing.T) {
	cd := ncd(2015, 6, 10)
	if got, want := cd.Year(), 2015; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Month(), calendar.Month(6); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Day(), 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Weekday(), time.Wednesday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !ncd(2015, 6, 8).Before(cd) || !cd.After(ncd(2014, 12, 31)) {
		t.Errorf("ordering failed")
	}
	if got, want := calendar.CalendarDateFromTime(time.Date(2015, 6, 10, 23, 59, 0, 0, time.UTC)), cd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !calendar.CalendarDate(0).IsZero() || cd.IsZero() {
		t.Errorf("IsZero failed")
	}
}

func TestCalendarDateArithmetic(t *testing.T) {
	for i, tc := range []struct {
		got, want calendar.CalendarDate
	}{
		{ncd(2023, 12, 31).Tomorrow(), ncd(2024, 1, 1)},
		{ncd(2024, 2, 28).Tomorrow(), ncd(2024, 2, 29)},
		{ncd(2023, 2, 28).Tomorrow(), ncd(2023, 3, 1)},
		{ncd(2024, 1, 1).Yesterday(), ncd(2023, 12, 31)},
		{ncd(2024, 3, 1).Yesterday(), ncd(2024, 2, 29)},
		{ncd(2023, 3, 1).Yesterday(), ncd(2023, 2, 28)},
		{ncd(2018, 5, 1).AddDays(-1), ncd(2018, 4, 30)},
		{ncd(2018, 5, 1).AddDays(-2), ncd(2018, 4, 29)},
		{ncd(2018, 12, 30).AddDays(40), ncd(2019, 2, 8)},
		{ncd(2024, 1, 31).AddMonths(1), ncd(2024, 2, 29)},
		{ncd(2023, 1, 31).AddMonths(1), ncd(2023, 2, 28)},
		{ncd(2023, 1, 15).AddMonths(-1), ncd(2022, 12, 15)},
		{ncd(2023, 11, 15).AddMonths(14), ncd(2025, 1, 15)},
		{ncd(2024, 2, 29).AddYears(1), ncd(2025, 2, 28)},
		{ncd(2024, 2, 29).AddYears(-4), ncd(2020, 2, 29)},
		{ncd(2024, 2, 10).StartOfMonth(), ncd(2024, 2, 1)},
		{ncd(2024, 2, 10).EndOfMonth(), ncd(2024, 2, 29)},
		{ncd(2024, 2, 10).StartOfYear(), ncd(2024, 1, 1)},
		{ncd(2024, 2, 10).EndOfYear(), ncd(2024, 12, 31)},
		{calendar.CalendarDate(0).Tomorrow(), 0},
		{calendar.CalendarDate(0).Yesterday(), 0},
		{calendar.CalendarDate(0).AddDays(-7), 0},
		{calendar.CalendarDate(0).AddMonths(-1), 0},
		{calendar.CalendarDate(0).EndOfMonth(), 0},
		{calendar.CalendarDate(0).StartOfYear(), 0},
	} {
		if tc.got != tc.want {
			t.Errorf("%v: got %v, want %v", i, tc.got, tc.want)
		}
	}
	if got, want := ncd(2018, 4, 30).DaysUntil(ncd(2018, 6, 10)), 41; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ncd(2018, 6, 10).DaysUntil(ncd(2018, 4, 30)), -41; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseCalendarDates(t *testing.T) {
	for _, tc := range []struct {
		input string
		cd    calendar.CalendarDate
	}{
		{"2024-01-02", ncd(2024, 1, 2)},
		{"02-01-2024", ncd(2024, 1, 2)},
		{"01/02/2024", ncd(2024, 1, 2)},
		{"Jan-02-2024", ncd(2024, 1, 2)},
		{" 2024-02-29 ", ncd(2024, 2, 29)},
	} {
		var cd calendar.CalendarDate
		if err := cd.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if cd != tc.cd {
			t.Errorf("%v: got %v, want %v", tc.input, cd, tc.cd)
		}
		if err := cd.Parse(cd.String()); err != nil || cd != tc.cd {
			t.Errorf("%v: got %v, want %v: %v", tc.input, cd, tc.cd, err)
		}
	}

	for _, tc := range []string{
		"",
		"2023-02-29",
		"29-02-2023",
		"Jan/03",
		"2024",
	} {
		var cd calendar.CalendarDate
		if err := cd.Parse(tc); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate: %v", tc, err)
		}
	}

	cd, err := calendar.ParseLayout("02.01.2006", "10.06.2015")
	if err != nil || cd != ncd(2015, 6, 10) {
		t.Errorf("got %v, %v", cd, err)
	}

	var cdl calendar.CalendarDateList
	if err := cdl.Parse("2024-03-01,2024-01-02, 2024-01-02"); err != nil {
		t.Fatal(err)
	}
	if got, want := cdl, (calendar.CalendarDateList{ncd(2024, 1, 2), ncd(2024, 3, 1)}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cdl.String(), "2024-01-02, 2024-03-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var between []calendar.CalendarDate
	for d := range cdl.Between(ncd(2024, 2, 1), ncd(2024, 12, 31)) {
		between = append(between, d)
	}
	if got, want := between, []calendar.CalendarDate{ncd(2024, 3, 1)}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	unsorted := calendar.CalendarDateList{ncd(2024, 5, 1), ncd(2023, 1, 1), ncd(2024, 5, 1)}
	unsorted.Sort()
	if got, want := unsorted, (calendar.CalendarDateList{ncd(2023, 1, 1), ncd(2024, 5, 1)}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !unsorted.Contains(ncd(2023, 1, 1)) || unsorted.Contains(ncd(2023, 1, 2)) {
		t.Errorf("unexpected Contains result for %v", unsorted)
	}
}

func TestFormat(t *testing.T) {
	cd := ncd(2015, 6, 8)
	if got, want := cd.Format("02-01-2006"), "08-06-2015"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.String(), "2015-06-08"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.CalendarDate(0).Format("02-01-2006"), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestYAML(t *testing.T) {
	type config struct {
		When  calendar.CalendarDate `yaml:"when"`
		Unset calendar.CalendarDate `yaml:"unset"`
		calendar.Constraints `yaml:",inline"`
	}
	spec := `when: 2015-06-10
unset: ""
min: 2015-06-01
max: 10-07-2015
disabled:
  - 2015-06-12
  - Jun-13-2015
`
	var cfg config
	if err := yaml.Unmarshal([]byte(spec), &cfg); err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.When, ncd(2015, 6, 10); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cfg.Unset.IsZero() {
		t.Errorf("got %v, want zero", cfg.Unset)
	}
	want := calendar.Constraints{
		Min:      ncd(2015, 6, 1),
		Max:      ncd(2015, 7, 10),
		Disabled: calendar.CalendarDateList{ncd(2015, 6, 12), ncd(2015, 6, 13)},
	}
	if got := cfg.Constraints; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	out, err := yaml.Marshal(cfg.When)
	if err != nil {
		t.Fatal(err)
	}
	var rt calendar.CalendarDate
	if err := yaml.Unmarshal(out, &rt); err != nil || rt != cfg.When {
		t.Errorf("got %v, want %v: %v", rt, cfg.When, err)
	}

	if err := yaml.Unmarshal([]byte("when: tomorrow\n"), &cfg); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate: %v", err)
	}
}
