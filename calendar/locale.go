// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/uz"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

// Locale determines the names of week days and months and the day that
// a week starts on. It is passed explicitly to every function that
// depends on it. The zero value uses English names with weeks starting
// on Sunday.
type Locale struct {
	tag        language.Tag
	translator locales.Translator
	weekStart  time.Weekday
}

type supportedLocale struct {
	tag language.Tag
	new func() locales.Translator
}

// The first entry is the fallback for unmatched locales.
var supportedLocales = []supportedLocale{
	{language.English, en.New},
	{language.BritishEnglish, en_GB.New},
	{language.German, de.New},
	{language.Spanish, es.New},
	{language.French, fr.New},
	{language.Italian, it.New},
	{language.Japanese, ja.New},
	{language.Russian, ru.New},
	{language.Uzbek, uz.New},
	{language.Chinese, zh.New},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(supportedLocales))
	for i, sl := range supportedLocales {
		tags[i] = sl.tag
	}
	return language.NewMatcher(tags)
}()

// Regions whose weeks start on a day other than Monday, as per the CLDR
// firstDay data.
var (
	sundayFirst = map[string]bool{
		"AG": true, "AS": true, "AU": true, "BD": true, "BR": true, "BS": true,
		"BT": true, "BW": true, "BZ": true, "CA": true, "CN": true, "CO": true,
		"DM": true, "DO": true, "ET": true, "GT": true, "GU": true, "HK": true,
		"HN": true, "ID": true, "IL": true, "IN": true, "JM": true, "JP": true,
		"KE": true, "KH": true, "KR": true, "LA": true, "MH": true, "MM": true,
		"MO": true, "MT": true, "MX": true, "MZ": true, "NI": true, "NP": true,
		"PA": true, "PE": true, "PH": true, "PK": true, "PR": true, "PT": true,
		"PY": true, "SA": true, "SG": true, "SV": true, "TH": true, "TT": true,
		"TW": true, "UM": true, "US": true, "VE": true, "VI": true, "WS": true,
		"YE": true, "ZA": true, "ZW": true,
	}
	saturdayFirst = map[string]bool{
		"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true,
		"IQ": true, "IR": true, "JO": true, "KW": true, "LY": true, "OM": true,
		"QA": true, "SD": true, "SY": true,
	}
)

// WeekStartForRegion returns the first day of the week for the specified
// ISO 3166 region code.
func WeekStartForRegion(region string) time.Weekday {
	switch {
	case sundayFirst[region]:
		return time.Sunday
	case saturdayFirst[region]:
		return time.Saturday
	}
	return time.Monday
}

// ParseWeekday parses the English name of a week day, or a prefix of
// at least 3 letters of it, eg. "mon" or "Monday".
func ParseWeekday(val string) (time.Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), lc) {
				return d, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("%w: unrecognised week day: %q", ErrInvalidLocale, val)
}

// NewLocale returns the Locale for a BCP 47 name such as "en", "en-GB" or
// "ru". The week start day is derived from the name's region, which is
// inferred when not specified (eg. "en" implies "US" and hence Sunday).
// Names without a matching set of translations fall back to English names
// but retain their region specific week start.
func NewLocale(name string) (Locale, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, name, err)
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	region, _ := tag.Region()
	return Locale{
		tag:        tag,
		translator: supportedLocales[idx].new(),
		weekStart:  WeekStartForRegion(region.String()),
	}, nil
}

// MustNewLocale is like NewLocale but panics on error.
func MustNewLocale(name string) Locale {
	l, err := NewLocale(name)
	if err != nil {
		panic(err)
	}
	return l
}

// WithWeekStart returns a copy of the Locale with the week start day
// overridden.
func (l Locale) WithWeekStart(day time.Weekday) Locale {
	l.weekStart = day
	return l
}

// WeekStart returns the first day of the week.
func (l Locale) WeekStart() time.Weekday {
	return l.weekStart
}

// Tag returns the language tag for the locale, language.Und for the
// zero value.
func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) String() string {
	return fmt.Sprintf("%s (week starts %s)", l.tag, l.weekStart)
}

// WeekdayName returns the abbreviated or long name of the week day.
func (l Locale) WeekdayName(day time.Weekday, long bool) string {
	if l.translator == nil {
		if long {
			return day.String()
		}
		return day.String()[:3]
	}
	if long {
		return l.translator.WeekdayWide(day)
	}
	return l.translator.WeekdayAbbreviated(day)
}

// MonthName returns the abbreviated or long name of the month.
func (l Locale) MonthName(month Month, long bool) string {
	if l.translator == nil {
		if long {
			return month.String()
		}
		return month.String()[:3]
	}
	if long {
		return l.translator.MonthWide(time.Month(month))
	}
	return l.translator.MonthAbbreviated(time.Month(month))
}
