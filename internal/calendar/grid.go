package calendar

import (
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
	"github.com/tartampluch/go-rangepicker/internal/locale"
)

// NoValue marks today or the selection as outside the shown period.
const NoValue = -1

// Cell is one selectable entry of a grid. Value is the day (1-31) in the
// month view, the month index (0-11) in the year view and the year in the
// multi-year view.
type Cell struct {
	Value        int
	DisplayValue string
	AriaLabel    string
	Enabled      bool
	Classes      []string
}

// Weekday is a column header of the month view.
type Weekday struct {
	Long   string
	Narrow string
}

// Grid is the rendered state of one view.
type Grid struct {
	View  View
	Label string
	Rows  [][]Cell

	NumCols int

	// FirstRowOffset is the number of blank slots before the first cell.
	FirstRowOffset int

	// LabelMinRequiredCells is the blank run needed to draw Label inside the first row.
	LabelMinRequiredCells int

	// ActiveCell is the index of the active cell counted from the first cell.
	ActiveCell int

	TodayValue    int
	SelectedValue int

	// Month view only.
	Weekdays  []Weekday
	Highlight Highlight
}

// Cells returns the cells in display order.
func (g Grid) Cells() []Cell {
	var out []Cell
	for _, row := range g.Rows {
		out = append(out, row...)
	}
	return out
}

// Cell returns the cell holding value.
func (g Grid) Cell(value int) (Cell, bool) {
	for _, row := range g.Rows {
		for _, c := range row {
			if c.Value == value {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// IsActiveCell reports whether the cell at (row, col) of Rows is the active one.
func (g Grid) IsActiveCell(row, col int) bool {
	n := row*g.NumCols + col
	// Every row but the first starts on column 0 of the table.
	if row > 0 {
		n -= g.FirstRowOffset
	}
	return n == g.ActiveCell
}

// LabelInFirstRow reports whether the label fits before the first cell.
func (g Grid) LabelInFirstRow() bool {
	return g.FirstRowOffset >= g.LabelMinRequiredCells
}

// Bounds restricts which dates are enabled.
type Bounds[D any] struct {
	Min, Max  *D
	Filter    func(D) bool
	DateClass func(D) []string
}

func (b Bounds[D]) allows(a dateadapter.DateAdapter[D], date D) bool {
	return (b.Filter == nil || b.Filter(date)) &&
		(b.Min == nil || a.CompareDate(date, *b.Min) >= 0) &&
		(b.Max == nil || a.CompareDate(date, *b.Max) <= 0)
}

// MonthState is what a month grid needs besides the active date and bounds.
type MonthState[D any] struct {
	Selected  *D
	RangeMode bool
	Range     RangeState[D]
	Over      int
}

func firstOfMonth[D any](a dateadapter.DateAdapter[D], date D) D {
	return a.AddCalendarDays(date, 1-a.GetDate(date))
}

func firstOfYear[D any](a dateadapter.DateAdapter[D], date D) D {
	return a.AddCalendarMonths(firstOfMonth(a, date), -a.GetMonth(date))
}

func sameMonthAndYear[D any](a dateadapter.DateAdapter[D], d1, d2 D) bool {
	return a.GetMonth(d1) == a.GetMonth(d2) && a.GetYear(d1) == a.GetYear(d2)
}

// dayInMonth returns the day of date when it falls in the month of active, else missing.
func dayInMonth[D any](a dateadapter.DateAdapter[D], date *D, active D, missing int) int {
	if date == nil || !sameMonthAndYear(a, *date, active) {
		return missing
	}
	return a.GetDate(*date)
}

// format ignores the error: builders only format valid dates.
func format[D any](a dateadapter.DateAdapter[D], date D, f dateadapter.DisplayFormat) string {
	s, _ := a.Format(date, f)
	return s
}

// Weekdays returns the weekday headers rotated to start on the locale's first day.
func Weekdays[D any](a dateadapter.DateAdapter[D]) []Weekday {
	long := a.GetDayOfWeekNames(locale.Long)
	narrow := a.GetDayOfWeekNames(locale.Narrow)
	first := a.GetFirstDayOfWeek()

	days := make([]Weekday, 0, len(long))
	for i := range long {
		j := (first + i) % len(long)
		days = append(days, Weekday{Long: long[j], Narrow: narrow[j]})
	}
	return days
}

// BuildMonth lays out the days of the active month in weeks.
func BuildMonth[D any](a dateadapter.DateAdapter[D], active D, b Bounds[D], st MonthState[D]) Grid {
	first := firstOfMonth(a, active)
	offset := (config.DaysPerWeek + a.GetDayOfWeek(first) - a.GetFirstDayOfWeek()) % config.DaysPerWeek
	daysInMonth := a.GetNumDaysInMonth(active)
	names := a.GetDateNames()

	rows := [][]Cell{{}}
	for i, col := 0, offset; i < daysInMonth; i, col = i+1, col+1 {
		if col == config.DaysPerWeek {
			rows = append(rows, []Cell{})
			col = 0
		}
		date := a.AddCalendarDays(first, i)
		cell := Cell{
			Value:        i + 1,
			DisplayValue: names[i],
			AriaLabel:    format(a, date, dateadapter.DateA11yLabel),
			Enabled:      b.allows(a, date),
		}
		if b.DateClass != nil {
			cell.Classes = b.DateClass(date)
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], cell)
	}

	today := a.Today()
	return Grid{
		View:                  ViewMonth,
		Label:                 a.UpperCase(a.GetMonthNames(locale.Short)[a.GetMonth(active)]),
		Rows:                  rows,
		NumCols:               config.DaysPerWeek,
		FirstRowOffset:        offset,
		LabelMinRequiredCells: config.LabelMinRequiredCellsMonth,
		ActiveCell:            a.GetDate(active) - 1,
		TodayValue:            dayInMonth(a, &today, active, NoValue),
		SelectedValue:         dayInMonth(a, st.Selected, active, NoValue),
		Weekdays:              Weekdays(a),
		Highlight:             monthHighlight(a, active, st),
	}
}

func monthHighlight[D any](a dateadapter.DateAdapter[D], active D, st MonthState[D]) Highlight {
	if !st.RangeMode {
		return Highlight{Over: st.Over}
	}

	r := st.Range
	h := Highlight{
		RangeMode:     true,
		Begin:         dayInMonth(a, r.Begin, active, 0),
		End:           dayInMonth(a, r.End, active, 0),
		BeginSelected: r.Pending != nil,
		Over:          st.Over,
	}
	h.RangeFull = r.Begin != nil && r.End != nil && h.Begin == 0 && h.End == 0 &&
		a.CompareDate(*r.Begin, active) <= 0 && a.CompareDate(active, *r.End) <= 0
	h.BeforeSelected = r.Pending != nil && a.CompareDate(active, *r.Pending) < 0
	return h
}

// BuildYear lays out the twelve months of the active year in rows of four.
func BuildYear[D any](a dateadapter.DateAdapter[D], active D, b Bounds[D], selected *D) Grid {
	year := a.GetYear(active)
	jan := firstOfYear(a, active)
	names := a.GetMonthNames(locale.Short)

	monthOf := func(date *D) int {
		if date == nil || a.GetYear(*date) != year {
			return NoValue
		}
		return a.GetMonth(*date)
	}

	rows := make([][]Cell, 0, config.MonthsPerYear/config.MonthsPerRow)
	for m := 0; m < config.MonthsPerYear; m++ {
		if m%config.MonthsPerRow == 0 {
			rows = append(rows, make([]Cell, 0, config.MonthsPerRow))
		}
		date := a.AddCalendarMonths(jan, m)
		rows[len(rows)-1] = append(rows[len(rows)-1], Cell{
			Value:        m,
			DisplayValue: a.UpperCase(names[m]),
			AriaLabel:    format(a, date, dateadapter.MonthYearA11yLabel),
			Enabled:      monthEnabled(a, date, b),
		})
	}

	today := a.Today()
	return Grid{
		View:                  ViewYear,
		Label:                 a.GetYearName(active),
		Rows:                  rows,
		NumCols:               config.MonthsPerRow,
		LabelMinRequiredCells: config.LabelMinRequiredCellsYear,
		ActiveCell:            a.GetMonth(active),
		TodayValue:            monthOf(&today),
		SelectedValue:         monthOf(selected),
	}
}

// monthEnabled checks the month of first (a first day of month) against the
// month and year of the bounds, then looks for one day accepted by the filter.
func monthEnabled[D any](a dateadapter.DateAdapter[D], first D, b Bounds[D]) bool {
	year, month := a.GetYear(first), a.GetMonth(first)
	if b.Max != nil {
		maxYear, maxMonth := a.GetYear(*b.Max), a.GetMonth(*b.Max)
		if year > maxYear || (year == maxYear && month > maxMonth) {
			return false
		}
	}
	if b.Min != nil {
		minYear, minMonth := a.GetYear(*b.Min), a.GetMonth(*b.Min)
		if year < minYear || (year == minYear && month < minMonth) {
			return false
		}
	}
	if b.Filter == nil {
		return true
	}
	for date := first; a.GetMonth(date) == month; date = a.AddCalendarDays(date, 1) {
		if b.Filter(date) {
			return true
		}
	}
	return false
}

// BuildMultiYear lays out the page of years holding the active year.
func BuildMultiYear[D any](a dateadapter.DateAdapter[D], active D, b Bounds[D], selected *D) Grid {
	activeYear := a.GetYear(active)
	minYearOfPage := MinYearOfPage(a, active, b.Min, b.Max)
	jan := firstOfYear(a, active)

	rows := make([][]Cell, 0, config.YearsPerPage/config.YearsPerRow)
	for i := 0; i < config.YearsPerPage; i++ {
		if i%config.YearsPerRow == 0 {
			rows = append(rows, make([]Cell, 0, config.YearsPerRow))
		}
		year := minYearOfPage + i
		date := a.AddCalendarYears(jan, year-activeYear)
		name := a.GetYearName(date)
		rows[len(rows)-1] = append(rows[len(rows)-1], Cell{
			Value:        year,
			DisplayValue: name,
			AriaLabel:    name,
			Enabled:      yearEnabled(a, date, b),
		})
	}

	selectedYear := NoValue
	if selected != nil {
		selectedYear = a.GetYear(*selected)
	}
	return Grid{
		View:          ViewMultiYear,
		Rows:          rows,
		NumCols:       config.YearsPerRow,
		ActiveCell:    ActiveOffset(a, active, b.Min, b.Max),
		TodayValue:    a.GetYear(a.Today()),
		SelectedValue: selectedYear,
	}
}

func yearEnabled[D any](a dateadapter.DateAdapter[D], first D, b Bounds[D]) bool {
	year := a.GetYear(first)
	if (b.Max != nil && year > a.GetYear(*b.Max)) || (b.Min != nil && year < a.GetYear(*b.Min)) {
		return false
	}
	if b.Filter == nil {
		return true
	}
	for date := first; a.GetYear(date) == year; date = a.AddCalendarDays(date, 1) {
		if b.Filter(date) {
			return true
		}
	}
	return false
}
