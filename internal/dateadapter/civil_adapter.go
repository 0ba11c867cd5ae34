package dateadapter

import (
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/locale"
)

// CivilAdapter implements DateAdapter for datetime.CalendarDate, a date
// without time of day or time zone. The zero CalendarDate is the invalid
// sentinel.
type CivilAdapter struct {
	localized

	Clock Clock
}

// NewCivilAdapter returns an adapter using the real clock.
// A nil provider selects the static English tables.
func NewCivilAdapter(tag string, provider locale.Provider) *CivilAdapter {
	return &CivilAdapter{
		localized: newLocalized(tag, provider),
		Clock:     RealClock{},
	}
}

// FromTime returns the calendar date of t in its own location.
func FromTime(t time.Time) datetime.CalendarDate {
	return datetime.CalendarDate{Year: t.Year(), Month: datetime.Month(t.Month()), Day: t.Day()}
}

// ToTime returns midnight UTC of the calendar date.
func ToTime(cd datetime.CalendarDate) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, time.UTC)
}

func (a *CivilAdapter) createDateWithOverflow(year, month, day int) datetime.CalendarDate {
	return FromTime(time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC))
}

func (a *CivilAdapter) GetYear(date datetime.CalendarDate) int  { return date.Year }
func (a *CivilAdapter) GetMonth(date datetime.CalendarDate) int { return int(date.Month) - 1 }
func (a *CivilAdapter) GetDate(date datetime.CalendarDate) int  { return date.Day }

func (a *CivilAdapter) GetDayOfWeek(date datetime.CalendarDate) int {
	return int(ToTime(date).Weekday())
}

func (a *CivilAdapter) GetYearName(date datetime.CalendarDate) string {
	return strconv.Itoa(date.Year)
}

func (a *CivilAdapter) GetNumDaysInMonth(date datetime.CalendarDate) int {
	return numDaysInMonth[datetime.CalendarDate](a, date)
}

func (a *CivilAdapter) Clone(date datetime.CalendarDate) datetime.CalendarDate { return date }

func (a *CivilAdapter) CreateDate(year, month, day int) (datetime.CalendarDate, error) {
	return createDate[datetime.CalendarDate](a, year, month, day)
}

func (a *CivilAdapter) Today() datetime.CalendarDate {
	return FromTime(a.Clock.Now())
}

// Parse tries config.ParseLayouts in order.
func (a *CivilAdapter) Parse(value string) *datetime.CalendarDate {
	t, empty := parseInput(value, time.UTC)
	if empty {
		return nil
	}
	if t.IsZero() {
		return Ptr(a.Invalid())
	}
	return Ptr(FromTime(t))
}

func (a *CivilAdapter) Format(date datetime.CalendarDate, f DisplayFormat) (string, error) {
	return format[datetime.CalendarDate](a, date, f)
}

func (a *CivilAdapter) AddCalendarYears(date datetime.CalendarDate, years int) datetime.CalendarDate {
	return a.AddCalendarMonths(date, years*config.MonthsPerYear)
}

func (a *CivilAdapter) AddCalendarMonths(date datetime.CalendarDate, months int) datetime.CalendarDate {
	return addCalendarMonths[datetime.CalendarDate](a, date, months)
}

func (a *CivilAdapter) AddCalendarDays(date datetime.CalendarDate, days int) datetime.CalendarDate {
	return a.createDateWithOverflow(date.Year, a.GetMonth(date), date.Day+days)
}

func (a *CivilAdapter) ToISO8601(date datetime.CalendarDate) string {
	return fmt.Sprintf(config.FormatDateInput, date.Year, int(date.Month), date.Day)
}

func (a *CivilAdapter) IsDateInstance(value any) bool {
	_, ok := value.(datetime.CalendarDate)
	return ok
}

// IsValid reports whether the month is 1-12 and the day exists in that month.
func (a *CivilAdapter) IsValid(date datetime.CalendarDate) bool {
	if date.Month < 1 || date.Month > 12 || date.Day < 1 {
		return false
	}
	return date.Day <= datetime.DaysInMonth(date.Year, date.Month)
}

func (a *CivilAdapter) Invalid() datetime.CalendarDate { return datetime.CalendarDate{} }

// Deserialize also accepts ISO-8601 strings and time.Time values.
func (a *CivilAdapter) Deserialize(value any) *datetime.CalendarDate {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		// The date is kept as written, whatever the offset.
		if t, ok := parseISO(v, time.UTC); ok {
			return Ptr(FromTime(t))
		}
	case time.Time:
		if !v.IsZero() {
			return Ptr(FromTime(v))
		}
	}
	return deserialize[datetime.CalendarDate](a, value)
}

func (a *CivilAdapter) CompareDate(first, second datetime.CalendarDate) int {
	return compareDate[datetime.CalendarDate](a, first, second)
}

func (a *CivilAdapter) SameDate(first, second *datetime.CalendarDate) bool {
	return sameDate[datetime.CalendarDate](a, first, second)
}

func (a *CivilAdapter) ClampDate(date datetime.CalendarDate, min, max *datetime.CalendarDate) datetime.CalendarDate {
	return clampDate[datetime.CalendarDate](a, date, min, max)
}

var _ DateAdapter[datetime.CalendarDate] = (*CivilAdapter)(nil)
