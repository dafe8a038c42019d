// Package display renders match results and career stats for terminals,
// with numbers formatted for the reader's language.
package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.Dutch}

var matcher = language.NewMatcher(supported)

// ParseTag picks the supported language closest to value. Unknown or empty
// values fall back to English.
func ParseTag(value string) language.Tag {
	tag, err := language.Parse(value)
	if err != nil {
		return supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Formatter formats numbers and labels for one language.
type Formatter struct {
	tag language.Tag
	p   *message.Printer
}

func New(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, p: message.NewPrinter(tag)}
}

func (f *Formatter) Tag() language.Tag { return f.tag }

// Average formats an average with two decimals.
func (f *Formatter) Average(v float64) string {
	return f.p.Sprintf("%.2f", v)
}

// Percent formats a 0..100 value with one decimal.
func (f *Formatter) Percent(v float64) string {
	return f.p.Sprintf("%.1f%%", v)
}

func (f *Formatter) Count(n int) string {
	return f.p.Sprintf("%d", n)
}

// OptionalInt formats v, or "-" when there is no value.
func (f *Formatter) OptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return f.Count(*v)
}

// Label translates a fixed label. Labels without a translation come back as is.
func (f *Formatter) Label(key string) string {
	return f.p.Sprintf(key)
}
