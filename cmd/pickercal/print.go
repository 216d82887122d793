// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"cloudeng.io/datepicker/grid"
	"github.com/fatih/color"
)

// printer writes headers and grids as text. Active and disabled cells
// are highlighted with color, or, when color is not used, marked as
// [active] and (disabled).
type printer struct {
	out      io.Writer
	plain    bool
	title    func(a ...any) string
	active   func(a ...any) string
	disabled func(a ...any) string
}

func newPrinter(out io.Writer, useColor bool) *printer {
	if !useColor {
		return &printer{
			out:      out,
			plain:    true,
			title:    fmt.Sprint,
			active:   func(a ...any) string { return "[" + fmt.Sprint(a...) + "]" },
			disabled: func(a ...any) string { return "(" + fmt.Sprint(a...) + ")" },
		}
	}
	return &printer{
		out:      out,
		title:    color.New(color.Bold).SprintFunc(),
		active:   color.New(color.Bold, color.FgCyan).SprintFunc(),
		disabled: color.New(color.Faint).SprintFunc(),
	}
}

func (p *printer) header(h grid.HeaderData) {
	prev, next := "<", ">"
	if !h.CanPrev {
		prev = " "
	}
	if !h.CanNext {
		next = " "
	}
	fmt.Fprintf(p.out, "%s %s %s\n", prev, p.title(h.Title), next)
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func (p *printer) cell(c grid.Cell, width int) string {
	label := c.Label
	switch {
	case c.Active:
		label = p.active(label)
	case c.Disabled:
		label = p.disabled(label)
	}
	if p.plain {
		return pad(label, width)
	}
	// Escape sequences take no space.
	return strings.Repeat(" ", max(width-utf8.RuneCountInString(c.Label), 0)) + label
}

func (p *printer) grid(g grid.CellGrid, weekdays []string) {
	width := 0
	for c := range g.Cells() {
		width = max(width, utf8.RuneCountInString(c.Label))
	}
	for _, wd := range weekdays {
		width = max(width, utf8.RuneCountInString(wd))
	}
	if p.plain {
		width += 2
	}
	if len(weekdays) > 0 {
		cols := make([]string, len(weekdays))
		for i, wd := range weekdays {
			cols[i] = pad(wd, width)
		}
		fmt.Fprintln(p.out, strings.Join(cols, " "))
	}
	for _, row := range g.Rows {
		cols := make([]string, len(row))
		for i, c := range row {
			cols[i] = p.cell(c, width)
		}
		fmt.Fprintln(p.out, strings.Join(cols, " "))
	}
}
