// Package locale supplies the locale-dependent tables the date adapters need:
// month and weekday names, the first day of the week, intl labels and
// locale-aware upper-casing.
package locale

import (
	"slices"

	"github.com/tartampluch/go-rangepicker/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style selects the width of a month or weekday name.
type Style int

const (
	Long Style = iota
	Short
	Narrow
)

// String returns the style name used in translation keys.
func (s Style) String() string {
	switch s {
	case Short:
		return "short"
	case Narrow:
		return "narrow"
	default:
		return "long"
	}
}

// Provider is the pluggable source of locale data.
// Implementations must return 12 month names and 7 weekday names (Sunday first).
type Provider interface {
	MonthNames(tag string, style Style) []string
	DayOfWeekNames(tag string, style Style) []string
	FirstDayOfWeek(tag string) int
	Label(tag, key string) string
	Upper(tag, s string) string
}

var (
	monthNames = map[Style][]string{
		Long: {"January", "February", "March", "April", "May", "June", "July",
			"August", "September", "October", "November", "December"},
		Short:  {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Narrow: {"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	}

	dayOfWeekNames = map[Style][]string{
		Long:   {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		Short:  {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Narrow: {"S", "M", "T", "W", "T", "F", "S"},
	}

	labels = map[string]string{
		config.TKeyCalendarLabel:         "Calendar",
		config.TKeyOpenCalendarLabel:     "Open calendar",
		config.TKeyPrevMonthLabel:        "Previous month",
		config.TKeyNextMonthLabel:        "Next month",
		config.TKeyPrevYearLabel:         "Previous year",
		config.TKeyNextYearLabel:         "Next year",
		config.TKeyPrevMultiYearLabel:    "Previous 20 years",
		config.TKeyNextMultiYearLabel:    "Next 20 years",
		config.TKeySwitchToMonthView:     "Choose date",
		config.TKeySwitchToMultiYearView: "Choose month and year",
	}
)

// Static is the built-in fallback provider: English names and a static
// first-day-of-week table. It ignores the tag except for the first day of
// the week and upper-casing.
type Static struct{}

// MonthNames returns the English month names for the style.
func (Static) MonthNames(_ string, style Style) []string {
	return slices.Clone(monthNames[style])
}

// DayOfWeekNames returns the English weekday names, Sunday first.
func (Static) DayOfWeekNames(_ string, style Style) []string {
	return slices.Clone(dayOfWeekNames[style])
}

// FirstDayOfWeek looks the tag up in the static table.
func (Static) FirstDayOfWeek(tag string) int {
	return FirstDayOfWeek(tag)
}

// Label returns the English intl label, or the key itself when unknown.
func (Static) Label(_ string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

// Upper upper-cases s with the casing rules of the tag.
func (Static) Upper(tag, s string) string {
	return upper(tag, s)
}

func upper(tag, s string) string {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.Und
	}
	return cases.Upper(t).String(s)
}
