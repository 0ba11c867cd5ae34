// Package dateadapter defines the date-arithmetic contract the calendar core
// depends on, with adapters for time.Time and for civil calendar dates.
package dateadapter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/locale"
)

var (
	// ErrInvalidDateRange is returned by CreateDate for out of range arguments.
	ErrInvalidDateRange = errors.New(config.ErrInvalidDateRange)

	// ErrInvalidDate is returned when formatting an invalid date.
	ErrInvalidDate = errors.New(config.ErrInvalidDate)
)

// DisplayFormat names one of the display formats of a date.
type DisplayFormat int

const (
	// DateInput is the format written into text inputs.
	DateInput DisplayFormat = iota
	// MonthYearLabel is the header label of the month view.
	MonthYearLabel
	// DateA11yLabel is the accessible label of a day cell.
	DateA11yLabel
	// MonthYearA11yLabel is the accessible label of a month cell.
	MonthYearA11yLabel
)

// DateAdapter is the date-arithmetic contract of the calendar. Months are
// zero-based (0 = January) and weekdays start on Sunday (0). Optional dates
// are passed as pointers, nil meaning "no date".
type DateAdapter[D any] interface {
	Locale() string
	SetLocale(tag string)

	GetYear(date D) int
	GetMonth(date D) int
	GetDate(date D) int
	GetDayOfWeek(date D) int
	GetMonthNames(style locale.Style) []string
	GetDateNames() []string
	GetDayOfWeekNames(style locale.Style) []string
	GetYearName(date D) string
	GetFirstDayOfWeek() int
	GetNumDaysInMonth(date D) int
	UpperCase(s string) string
	Label(key string) string

	Clone(date D) D
	// CreateDate fails with ErrInvalidDateRange when month is outside [0,11],
	// day is lower than 1 or day overflows into another month.
	CreateDate(year, month, day int) (D, error)
	Today() D
	// Parse returns nil for empty input and the invalid sentinel for
	// unparseable input.
	Parse(value string) *D
	Format(date D, format DisplayFormat) (string, error)
	AddCalendarYears(date D, years int) D
	AddCalendarMonths(date D, months int) D
	AddCalendarDays(date D, days int) D
	ToISO8601(date D) string

	IsDateInstance(value any) bool
	IsValid(date D) bool
	Invalid() D
	// Deserialize returns nil for nil, the date for a valid date and the
	// invalid sentinel for anything else.
	Deserialize(value any) *D

	CompareDate(first, second D) int
	SameDate(first, second *D) bool
	ClampDate(date D, min, max *D) D
}

// fielder is the subset of the contract needed by the shared helpers.
type fielder[D any] interface {
	GetYear(date D) int
	GetMonth(date D) int
	GetDate(date D) int
	IsValid(date D) bool
}

// overflower builds dates whose month and day may overflow.
type overflower[D any] interface {
	fielder[D]
	createDateWithOverflow(year, month, day int) D
}

// ValidOrNil returns date when it is a valid instance, nil otherwise.
func ValidOrNil[D any](a DateAdapter[D], date *D) *D {
	if date == nil || !a.IsDateInstance(*date) || !a.IsValid(*date) {
		return nil
	}
	return date
}

// Ptr returns a pointer to a copy of date.
func Ptr[D any](date D) *D {
	return &date
}

func compareDate[D any](a fielder[D], first, second D) int {
	if diff := a.GetYear(first) - a.GetYear(second); diff != 0 {
		return diff
	}
	if diff := a.GetMonth(first) - a.GetMonth(second); diff != 0 {
		return diff
	}
	return a.GetDate(first) - a.GetDate(second)
}

func sameDate[D any](a fielder[D], first, second *D) bool {
	if first != nil && second != nil {
		firstValid := a.IsValid(*first)
		secondValid := a.IsValid(*second)
		if firstValid && secondValid {
			return compareDate(a, *first, *second) == 0
		}
		return firstValid == secondValid
	}
	return first == nil && second == nil
}

func clampDate[D any](a fielder[D], date D, min, max *D) D {
	if min != nil && compareDate(a, date, *min) < 0 {
		return *min
	}
	if max != nil && compareDate(a, date, *max) > 0 {
		return *max
	}
	return date
}

func deserialize[D any](a DateAdapter[D], value any) *D {
	switch v := value.(type) {
	case nil:
		return nil
	case *D:
		if v == nil {
			return nil
		}
		value = *v
	}
	if d, ok := value.(D); ok && a.IsValid(d) {
		return Ptr(a.Clone(d))
	}
	return Ptr(a.Invalid())
}

func createDate[D any](a overflower[D], year, month, day int) (D, error) {
	if month < 0 || month > 11 {
		var zero D
		return zero, fmt.Errorf("%w: "+config.ErrMonthIndex, ErrInvalidDateRange, month)
	}
	if day < 1 {
		var zero D
		return zero, fmt.Errorf("%w: "+config.ErrDayIndex, ErrInvalidDateRange, day)
	}

	result := a.createDateWithOverflow(year, month, day)
	if a.GetMonth(result) != month {
		var zero D
		return zero, fmt.Errorf("%w: "+config.ErrDayOverflow, ErrInvalidDateRange, day, month)
	}
	return result, nil
}

func addCalendarMonths[D any](a overflower[D], date D, months int) D {
	year, month, day := a.GetYear(date), a.GetMonth(date), a.GetDate(date)
	result := a.createDateWithOverflow(year, month+months, day)

	// Day overflowed into the following month: use the last day of the target month.
	if a.GetMonth(result) != ((month+months)%12+12)%12 {
		result = a.createDateWithOverflow(a.GetYear(result), a.GetMonth(result), 0)
	}
	return result
}

func numDaysInMonth[D any](a overflower[D], date D) int {
	return a.GetDate(a.createDateWithOverflow(a.GetYear(date), a.GetMonth(date)+1, 0))
}

func format[D any](a DateAdapter[D], date D, f DisplayFormat) (string, error) {
	if !a.IsValid(date) {
		return "", fmt.Errorf("%s: %w", config.ErrInvalidDate, ErrInvalidDate)
	}

	year, month, day := a.GetYear(date), a.GetMonth(date), a.GetDate(date)
	switch f {
	case MonthYearLabel:
		return fmt.Sprintf(config.FormatMonthYear, a.GetMonthNames(locale.Short)[month], year), nil
	case DateA11yLabel:
		return fmt.Sprintf(config.FormatDateA11y, a.GetMonthNames(locale.Long)[month], day, year), nil
	case MonthYearA11yLabel:
		return fmt.Sprintf(config.FormatMonthYear, a.GetMonthNames(locale.Long)[month], year), nil
	default:
		return fmt.Sprintf(config.FormatDateInput, year, month+1, day), nil
	}
}

// localized carries the locale string and provider shared by the adapters.
type localized struct {
	tag      string
	provider locale.Provider
}

func newLocalized(tag string, provider locale.Provider) localized {
	if provider == nil {
		provider = locale.Static{}
	}
	if tag == "" {
		tag = config.DefaultLanguage
	}
	return localized{tag: tag, provider: provider}
}

// Locale returns the locale tag of the adapter.
func (l *localized) Locale() string { return l.tag }

// SetLocale changes the locale tag used for names and the first day of the week.
func (l *localized) SetLocale(tag string) { l.tag = tag }

func (l *localized) GetMonthNames(style locale.Style) []string {
	return l.provider.MonthNames(l.tag, style)
}

func (l *localized) GetDayOfWeekNames(style locale.Style) []string {
	return l.provider.DayOfWeekNames(l.tag, style)
}

// GetDateNames returns "1" to "31".
func (l *localized) GetDateNames() []string {
	names := make([]string, config.MaxDateNames)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}

func (l *localized) GetFirstDayOfWeek() int {
	return l.provider.FirstDayOfWeek(l.tag)
}

func (l *localized) UpperCase(s string) string {
	return l.provider.Upper(l.tag, s)
}

func (l *localized) Label(key string) string {
	return l.provider.Label(l.tag, key)
}
