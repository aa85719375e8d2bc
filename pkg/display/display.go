// Package display formats values for the staff dashboard.
//
// Every formatter is display-only: output follows en-CA conventions and is not
// meant to be parsed back.
package display

import (
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown for absent values.
const Placeholder = "-"

// Locale is the display locale.
var Locale = language.MustParse("en-CA")

var printer = message.NewPrinter(Locale)

// timestamp layouts accepted by parse, most specific first.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999Z07",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

const dateLayout = "2006-01-02"

// Formatter formats timestamps in a fixed location.
type Formatter struct {
	Location *time.Location
}

// Default formats in the process local time zone.
var Default = Formatter{Location: time.Local}

func (f Formatter) loc() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

// parse reads an ISO-ish string. Date-only values are calendar dates in the
// formatter location and are never shifted across a day boundary.
func (f Formatter) parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(f.loc()), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, f.loc()); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation(dateLayout, s, f.loc()); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Date renders s as YYYY-MM-DD, or Placeholder when s is empty.
// Unparseable input is returned unchanged.
func (f Formatter) Date(s string) string {
	if s == "" {
		return Placeholder
	}
	t, ok := f.parse(s)
	if !ok {
		return s
	}
	return t.Format(dateLayout)
}

// Time renders s as a two-digit 12-hour clock ("09:05 a.m."), or an empty
// string when s is empty.
func (f Formatter) Time(s string) string {
	if s == "" {
		return ""
	}
	t, ok := f.parse(s)
	if !ok {
		return s
	}
	suffix := "a.m."
	if t.Hour() >= 12 {
		suffix = "p.m."
	}
	return t.Format("03:04") + " " + suffix
}

// DateTime renders s as "Date Time", or Placeholder when s is empty.
func (f Formatter) DateTime(s string) string {
	if s == "" {
		return Placeholder
	}
	if _, ok := f.parse(s); !ok {
		return s
	}
	return f.Date(s) + " " + f.Time(s)
}

// Date formats with the Default formatter.
func Date(s string) string { return Default.Date(s) }

// Time formats with the Default formatter.
func Time(s string) string { return Default.Time(s) }

// DateTime formats with the Default formatter.
func DateTime(s string) string { return Default.DateTime(s) }

// Currency renders amount as Canadian dollars, or Placeholder when nil.
func Currency(amount *float64) string {
	if amount == nil {
		return Placeholder
	}
	return formatCAD(*amount)
}

func formatCAD(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	// The currency formatter rounds half away from zero to the currency's
	// standard scale. It separates symbol and digits with a space, which the
	// en-CA pattern does not.
	s := printer.Sprint(currency.NarrowSymbol(currency.CAD.Amount(v)))
	return sign + strings.Replace(s, " ", "", 1)
}
