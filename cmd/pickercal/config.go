// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/datepicker/timeofday"
	"cloudeng.io/errors"
)

// Config represents the YAML configuration shared by all commands.
type Config struct {
	Locale      string               `yaml:"locale"`      // BCP 47 name, eg. en-GB
	WeekStart   string               `yaml:"week_start"`  // Overrides the locale's first day of the week
	Layout      string               `yaml:"layout"`      // time.Time layout for dates
	TimeMode    timeofday.Mode       `yaml:"time_mode"`   // 24, ampm or AMPM
	ThirdClick  selection.ThirdClick `yaml:"third_click"` // reset or restart
	Constraints calendar.Constraints `yaml:"constraints"`
}

// settings are the values derived from a Config.
type settings struct {
	loc         calendar.Locale
	layout      string
	mode        timeofday.Mode
	thirdClick  selection.ThirdClick
	constraints calendar.Constraints
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load configuration from %v: %w", filename, err)
	}
	return cfg, nil
}

// override replaces configured values with those specified on the
// command line.
func (c *Config) override(fv *CommonFlags) error {
	if len(fv.Locale) > 0 {
		c.Locale = fv.Locale
	}
	if len(fv.WeekStart) > 0 {
		c.WeekStart = fv.WeekStart
	}
	if len(fv.TimeMode) > 0 {
		m, err := timeofday.ParseMode(fv.TimeMode)
		if err != nil {
			return err
		}
		c.TimeMode = m
	}
	return nil
}

// settings validates the configuration and returns the settings it
// represents. All of the problems found are reported.
func (c Config) settings() (settings, error) {
	errs := &errors.M{}
	s := settings{
		layout:      c.Layout,
		mode:        c.TimeMode,
		thirdClick:  c.ThirdClick,
		constraints: c.Constraints,
	}
	if len(s.layout) == 0 {
		s.layout = selection.DefaultLayout
	}
	if len(c.Locale) > 0 {
		loc, err := calendar.NewLocale(c.Locale)
		errs.Append(err)
		s.loc = loc
	}
	if len(c.WeekStart) > 0 {
		day, err := calendar.ParseWeekday(c.WeekStart)
		errs.Append(err)
		s.loc = s.loc.WithWeekStart(day)
	}
	errs.Append(c.Constraints.Validate())
	return s, errs.Err()
}

func (s settings) selectionOptions(onChange selection.ChangeFunc) []selection.Option {
	return []selection.Option{
		selection.WithLayout(s.layout),
		selection.WithTimeMode(s.mode),
		selection.WithThirdClick(s.thirdClick),
		selection.WithOnChange(onChange),
	}
}
