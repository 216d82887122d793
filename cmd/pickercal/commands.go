// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/page"
	"cloudeng.io/datepicker/selection"
	"cloudeng.io/datepicker/timeofday"
	"cloudeng.io/logging/ctxlog"
)

type app struct {
	out io.Writer
}

// setup creates the logger and loads the configuration for a command.
// The returned function must be called to release the logger.
func (a *app) setup(ctx context.Context, fv *CommonFlags) (context.Context, settings, func(), error) {
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, settings{}, nil, err
	}
	done := func() { logger.Close() }
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cfg, err := loadConfig(ctx, fv.Config)
	if err != nil {
		done()
		return ctx, settings{}, nil, err
	}
	if err := cfg.override(fv); err != nil {
		done()
		return ctx, settings{}, nil, err
	}
	s, err := cfg.settings()
	if err != nil {
		done()
		return ctx, settings{}, nil, err
	}
	ctxlog.Logger(ctx).Info("configuration",
		"file", fv.Config,
		"locale", s.loc.String(),
		"layout", s.layout,
		"time_mode", s.mode.String(),
		"third_click", s.thirdClick.String(),
		"constraints", s.constraints.String())
	return ctx, s, done, nil
}

// parseDate accepts any of the formats supported by CalendarDate.Parse
// or the configured layout.
func parseDate(s settings, val string) (calendar.CalendarDate, error) {
	var cd calendar.CalendarDate
	if err := cd.Parse(val); err == nil {
		return cd, nil
	}
	return calendar.ParseLayout(s.layout, val)
}

func dateOrToday(s settings, val string) (calendar.CalendarDate, error) {
	if len(val) == 0 {
		return calendar.Today(time.Local), nil
	}
	return parseDate(s, val)
}

func anyActive(fns ...grid.ActiveFunc) grid.ActiveFunc {
	return func(v grid.Value) bool {
		for _, fn := range fns {
			if fn(v) {
				return true
			}
		}
		return false
	}
}

func (fv *gridFlags) activeFunc(s settings) (grid.ActiveFunc, error) {
	var fns []grid.ActiveFunc
	if len(fv.Active) > 0 {
		d, err := parseDate(s, fv.Active)
		if err != nil {
			return nil, err
		}
		fns = append(fns, grid.ActiveDate(d))
	}
	if len(fv.Range) > 0 {
		dr, err := calendar.ParseRange(s.layout, fv.Range)
		if err != nil {
			return nil, err
		}
		fns = append(fns, grid.ActiveRange(dr))
	}
	if len(fv.Time) > 0 {
		var tod timeofday.TimeOfDay
		if err := tod.Parse(fv.Time); err != nil {
			return nil, err
		}
		fns = append(fns, grid.ActiveTime(tod))
	}
	return anyActive(fns...), nil
}

func parseUnit(val string) (selection.Unit, error) {
	units, err := selection.ParseUnits(val)
	if err != nil {
		return 0, err
	}
	if len(units) != 1 {
		return 0, fmt.Errorf("exactly one unit must be specified: %q", val)
	}
	return units[0], nil
}

func (a *app) grid(ctx context.Context, values any, args []string) error {
	fv := values.(*gridFlags)
	ctx, s, done, err := a.setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	date, err := dateOrToday(s, arg)
	if err != nil {
		return err
	}
	unit, err := parseUnit(fv.Unit)
	if err != nil {
		return err
	}
	active, err := fv.activeFunc(s)
	if err != nil {
		return err
	}
	strategy := grid.ForUnit(unit, s.loc, s.mode, fv.Hour)
	pr := newPrinter(a.out, fv.Color)
	p := page.New(strategy.Kind(), date)
	for i := 0; i < max(fv.Pages, 1); i++ {
		h := grid.Header(strategy, p, s.constraints, s.loc)
		g := grid.Render(strategy, p, s.constraints, active)
		ctxlog.Logger(ctx).Info("render",
			"unit", unit.String(),
			"page", p.String(),
			"disabled", g.Disabled(),
			"active", g.Active())
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		pr.header(h)
		pr.grid(g, h.Weekdays)
		if !h.CanNext {
			break
		}
		p = h.Next
	}
	return nil
}

func (a *app) selectRange(ctx context.Context, values any, args []string) error {
	fv := values.(*rangeFlags)
	ctx, s, done, err := a.setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	logger := ctxlog.Logger(ctx)
	r := selection.NewRange(s.selectionOptions(func(v string) {
		fmt.Fprintln(a.out, v)
	})...)
	for _, arg := range args {
		d, err := parseDate(s, arg)
		if err != nil {
			return err
		}
		if !s.constraints.Include(d) {
			logger.Warn("ignoring click on disabled date", "date", d.String())
			continue
		}
		from := r.State()
		r = r.Click(d)
		logger.Info("click", "date", d.String(), "from", from.String(), "to", r.State().String())
	}
	return nil
}

// parseStepValue accepts month names, or prefixes of at least 3 letters,
// as well as numbers for selection.Month.
func parseStepValue(unit selection.Unit, val string) (int, error) {
	if unit == selection.Month {
		var m calendar.Month
		if err := m.Parse(val); err != nil {
			return 0, fmt.Errorf("invalid value for %v: %w", unit, err)
		}
		return int(m), nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %v: %q", unit, val)
	}
	return v, nil
}

func (a *app) step(ctx context.Context, values any, args []string) error {
	fv := values.(*stepFlags)
	ctx, s, done, err := a.setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	units, err := selection.ParseUnits(args[0])
	if err != nil {
		return err
	}
	date, err := dateOrToday(s, fv.Date)
	if err != nil {
		return err
	}
	var tod timeofday.TimeOfDay
	if len(fv.Time) > 0 {
		if err := tod.Parse(fv.Time); err != nil {
			return err
		}
	}
	st, err := selection.NewStepper(units, date, tod, s.selectionOptions(func(v string) {
		fmt.Fprintln(a.out, v)
	})...)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	for _, arg := range args[1:] {
		unit := st.Unit()
		v, err := parseStepValue(unit, arg)
		if err != nil {
			return err
		}
		if st, err = st.Pick(v); err != nil {
			return err
		}
		logger.Info("pick", "unit", unit.String(), "value", v, "done", st.Done())
	}
	if st.Done() {
		return nil
	}
	strategy := grid.ForUnit(st.Unit(), s.loc, s.mode, st.Time().Hour())
	pr := newPrinter(a.out, fv.Color)
	h := grid.Header(strategy, st.Page(), s.constraints, s.loc)
	pr.header(h)
	pr.grid(grid.Render(strategy, st.Page(), s.constraints, nil), h.Weekdays)
	return nil
}

func (a *app) formatTime(ctx context.Context, values any, args []string) error {
	fv := values.(*timeFlags)
	_, s, done, err := a.setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	out, err := timeofday.FormatTime(args[0], args[1], s.mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)
	return nil
}

func (a *app) validate(ctx context.Context, values any, args []string) error {
	fv := values.(*validateFlags)
	fv.Config = args[0]
	_, s, done, err := a.setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	fmt.Fprintf(a.out, "%v: ok\n", args[0])
	fmt.Fprintf(a.out, "locale: %v\n", s.loc)
	if !s.constraints.Empty() {
		fmt.Fprintf(a.out, "constraints: %v\n", s.constraints)
	}
	return nil
}
