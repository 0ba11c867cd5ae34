package dateadapter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/locale"
)

var isoPattern = regexp.MustCompile(config.ISOPattern)

// TimeAdapter implements DateAdapter for time.Time. Dates are midnight in
// Location; the zero time.Time is the invalid sentinel.
type TimeAdapter struct {
	localized

	Clock    Clock
	Location *time.Location
}

// NewTimeAdapter returns an adapter using the local time zone and the real clock.
// A nil provider selects the static English tables.
func NewTimeAdapter(tag string, provider locale.Provider) *TimeAdapter {
	return &TimeAdapter{
		localized: newLocalized(tag, provider),
		Clock:     RealClock{},
		Location:  time.Local,
	}
}

func (a *TimeAdapter) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

func (a *TimeAdapter) createDateWithOverflow(year, month, day int) time.Time {
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, a.location())
}

func (a *TimeAdapter) GetYear(date time.Time) int      { return date.Year() }
func (a *TimeAdapter) GetMonth(date time.Time) int     { return int(date.Month()) - 1 }
func (a *TimeAdapter) GetDate(date time.Time) int      { return date.Day() }
func (a *TimeAdapter) GetDayOfWeek(date time.Time) int { return int(date.Weekday()) }

func (a *TimeAdapter) GetYearName(date time.Time) string {
	return strconv.Itoa(date.Year())
}

func (a *TimeAdapter) GetNumDaysInMonth(date time.Time) int {
	return numDaysInMonth[time.Time](a, date)
}

func (a *TimeAdapter) Clone(date time.Time) time.Time { return date }

func (a *TimeAdapter) CreateDate(year, month, day int) (time.Time, error) {
	return createDate[time.Time](a, year, month, day)
}

// Today returns midnight of the current day in Location.
func (a *TimeAdapter) Today() time.Time {
	now := a.Clock.Now().In(a.location())
	return a.createDateWithOverflow(now.Year(), int(now.Month())-1, now.Day())
}

// Parse tries config.ParseLayouts in order.
func (a *TimeAdapter) Parse(value string) *time.Time {
	t, empty := parseInput(value, a.location())
	if empty {
		return nil
	}
	return &t
}

// parseInput returns the zero time when no layout matches.
func parseInput(value string, loc *time.Location) (t time.Time, empty bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, true
	}
	for _, layout := range config.ParseLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, false
		}
	}
	return time.Time{}, false
}

func (a *TimeAdapter) Format(date time.Time, f DisplayFormat) (string, error) {
	return format[time.Time](a, date, f)
}

func (a *TimeAdapter) AddCalendarYears(date time.Time, years int) time.Time {
	return a.AddCalendarMonths(date, years*config.MonthsPerYear)
}

func (a *TimeAdapter) AddCalendarMonths(date time.Time, months int) time.Time {
	return addCalendarMonths[time.Time](a, date, months)
}

func (a *TimeAdapter) AddCalendarDays(date time.Time, days int) time.Time {
	return a.createDateWithOverflow(date.Year(), a.GetMonth(date), date.Day()+days)
}

// ToISO8601 returns the calendar date part as YYYY-MM-DD.
func (a *TimeAdapter) ToISO8601(date time.Time) string {
	return fmt.Sprintf(config.FormatDateInput, date.Year(), int(date.Month()), date.Day())
}

func (a *TimeAdapter) IsDateInstance(value any) bool {
	_, ok := value.(time.Time)
	return ok
}

func (a *TimeAdapter) IsValid(date time.Time) bool { return !date.IsZero() }

func (a *TimeAdapter) Invalid() time.Time { return time.Time{} }

// Deserialize also accepts ISO-8601 strings; the empty string is "no date".
func (a *TimeAdapter) Deserialize(value any) *time.Time {
	if s, ok := value.(string); ok {
		if s == "" {
			return nil
		}
		if t, ok := parseISO(s, a.location()); ok {
			return Ptr(t.In(a.location()))
		}
	}
	return deserialize[time.Time](a, value)
}

// parseISO parses strings matching the ISO-8601 pattern. Strings without an
// offset are read in loc.
func parseISO(s string, loc *time.Location) (time.Time, bool) {
	if !isoPattern.MatchString(s) {
		return time.Time{}, false
	}
	if t, err := time.Parse(config.LayoutISODateTimeZone, s); err == nil {
		return t, true
	}
	for _, layout := range []string{config.LayoutISODateTime, config.LayoutISODate} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (a *TimeAdapter) CompareDate(first, second time.Time) int {
	return compareDate[time.Time](a, first, second)
}

func (a *TimeAdapter) SameDate(first, second *time.Time) bool {
	return sameDate[time.Time](a, first, second)
}

func (a *TimeAdapter) ClampDate(date time.Time, min, max *time.Time) time.Time {
	return clampDate[time.Time](a, date, min, max)
}

var _ DateAdapter[time.Time] = (*TimeAdapter)(nil)
