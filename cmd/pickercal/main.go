// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pickercal displays the grids, headers and selections computed
// for a date/time picker. It is intended for exploring the effect of
// locales and constraints and for checking selection behaviour from the
// command line.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: pickercal
summary: display the grids, headers and selections of a date/time picker
commands:
  - name: grid
    summary: display the grid of cells for the page containing a date, today by default
    arguments:
      - '[date]'
  - name: range
    summary: click on each of the dates in turn to select a range, displaying every change
    arguments:
      - <date>
      - ...
  - name: step
    summary: pick each of the values in turn for a multi-step picker, eg. step year,month,day 2016 feb 10
    arguments:
      - <units>
      - <value>
      - ...
  - name: time
    summary: format an hour and minute pair using the configured time mode
    arguments:
      - <hour>
      - <minute>
  - name: validate
    summary: validate a configuration file
    arguments:
      - <config-file>
`

// CommonFlags are the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config    string `subcmd:"config,,'yaml configuration file'"`
	Locale    string `subcmd:"locale,,'BCP 47 locale name, eg. en-GB, overrides the configuration file'"`
	WeekStart string `subcmd:"week-start,,'first day of the week, eg. monday, overrides the locale'"`
	TimeMode  string `subcmd:"time-mode,,'time format: 24, ampm or AMPM'"`
	Color     bool   `subcmd:"color,true,'highlight active and disabled cells'"`
}

type gridFlags struct {
	CommonFlags
	Unit   string `subcmd:"unit,day,'the unit to display: year, month, day, hour or minute'"`
	Hour   int    `subcmd:"hour,0,'the hour whose minutes are displayed'"`
	Active string `subcmd:"active,,'the active date'"`
	Range  string `subcmd:"range,,'the active range, formatted as <start> - <end> using the configured layout'"`
	Time   string `subcmd:"time,,'the active time of day'"`
	Pages  int    `subcmd:"pages,1,'the number of pages to display, stopping at the maximum date'"`
}

type rangeFlags struct {
	CommonFlags
}

type stepFlags struct {
	CommonFlags
	Date string `subcmd:"date,,'the initial date, today by default'"`
	Time string `subcmd:"time,,'the initial time of day'"`
}

type timeFlags struct {
	CommonFlags
}

type validateFlags struct {
	CommonFlags
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	a := &app{out: os.Stdout}
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("grid").MustRunner(a.grid, &gridFlags{})
	cmdSet.Set("range").MustRunner(a.selectRange, &rangeFlags{})
	cmdSet.Set("step").MustRunner(a.step, &stepFlags{})
	cmdSet.Set("time").MustRunner(a.formatTime, &timeFlags{})
	cmdSet.Set("validate").MustRunner(a.validate, &validateFlags{})
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
