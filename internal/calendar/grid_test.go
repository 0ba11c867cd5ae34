package calendar_test

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
)

type bounds = calendar.Bounds[time.Time]

func TestBuildMonth_Completeness(t *testing.T) {
	for _, tag := range []string{"en", "fr", "ar"} {
		a := newAdapter()
		a.SetLocale(tag)

		for year := 2019; year <= 2025; year++ {
			for month := time.January; month <= time.December; month++ {
				active := day(year, month, 1)
				grid := calendar.BuildMonth[time.Time](a, active, bounds{}, calendar.MonthState[time.Time]{})

				n := a.GetNumDaysInMonth(active)
				cells := grid.Cells()
				require.Len(t, cells, n)
				for i, c := range cells {
					assert.Equal(t, i+1, c.Value)
					assert.True(t, c.Enabled)
				}

				assert.LessOrEqual(t, grid.FirstRowOffset, 6)
				assert.Len(t, grid.Rows[0], 7-grid.FirstRowOffset)
				for _, row := range grid.Rows[1:] {
					assert.LessOrEqual(t, len(row), 7)
				}

				// The first cell sits under the column of its weekday.
				wantCol := (a.GetDayOfWeek(active) - a.GetFirstDayOfWeek() + 7) % 7
				assert.Equal(t, wantCol, grid.FirstRowOffset, "%s %d-%02d", tag, year, month)
			}
		}
	}
}

func TestBuildMonth_Layout(t *testing.T) {
	a := newAdapter()
	active := day(2021, time.March, 15)

	grid := calendar.BuildMonth[time.Time](a, active, bounds{}, calendar.MonthState[time.Time]{})

	assert.Equal(t, calendar.ViewMonth, grid.View)
	assert.Equal(t, "MAR", grid.Label)
	assert.Equal(t, 7, grid.NumCols)
	assert.Equal(t, 1, grid.FirstRowOffset, "March 1st 2021 is a Monday")
	assert.False(t, grid.LabelInFirstRow())
	assert.Len(t, grid.Rows, 5)
	assert.Equal(t, 14, grid.ActiveCell)
	assert.True(t, grid.IsActiveCell(2, 1))
	assert.False(t, grid.IsActiveCell(2, 2))
	assert.Equal(t, 15, grid.TodayValue)
	assert.Equal(t, calendar.NoValue, grid.SelectedValue)

	first := grid.Rows[0][0]
	assert.Equal(t, "1", first.DisplayValue)
	assert.Equal(t, "March 1, 2021", first.AriaLabel)

	require.Len(t, grid.Weekdays, 7)
	assert.Equal(t, calendar.Weekday{Long: "Sunday", Narrow: "S"}, grid.Weekdays[0])

	april := calendar.BuildMonth[time.Time](a, day(2021, time.April, 2), bounds{}, calendar.MonthState[time.Time]{Selected: &active})
	assert.Equal(t, calendar.NoValue, april.TodayValue)
	assert.Equal(t, calendar.NoValue, april.SelectedValue)
	assert.Equal(t, 4, april.FirstRowOffset)
	assert.True(t, april.LabelInFirstRow())
}

func TestWeekdays_Rotation(t *testing.T) {
	a := newAdapter()
	a.SetLocale("fr")

	days := calendar.Weekdays[time.Time](a)
	require.Len(t, days, 7)
	assert.Equal(t, "Monday", days[0].Long)
	assert.Equal(t, "Sunday", days[6].Long)

	a.SetLocale("ar")
	assert.Equal(t, "Saturday", calendar.Weekdays[time.Time](a)[0].Long)
}

func TestBuildMonth_BoundsFilterAndClasses(t *testing.T) {
	a := newAdapter()
	min := day(2021, time.March, 10)
	max := day(2021, time.March, 20)
	weekday := func(d time.Time) bool { return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday }
	classes := func(d time.Time) []string {
		if d.Day() == 17 {
			return []string{"holiday"}
		}
		return nil
	}

	grid := calendar.BuildMonth[time.Time](a, day(2021, time.March, 15), bounds{Min: &min, Max: &max, Filter: weekday, DateClass: classes}, calendar.MonthState[time.Time]{})

	enabled := map[int]bool{}
	for _, c := range grid.Cells() {
		enabled[c.Value] = c.Enabled
	}
	assert.False(t, enabled[9])
	assert.True(t, enabled[10])
	assert.False(t, enabled[13], "saturday")
	assert.False(t, enabled[14], "sunday")
	assert.True(t, enabled[19])
	assert.False(t, enabled[20], "saturday")
	assert.False(t, enabled[22])

	c17, ok := grid.Cell(17)
	require.True(t, ok)
	assert.Equal(t, []string{"holiday"}, c17.Classes)
	_, ok = grid.Cell(32)
	assert.False(t, ok)
}

func TestBuildMonth_RangeHighlight(t *testing.T) {
	a := newAdapter()
	begin := day(2021, time.February, 20)
	end := day(2021, time.April, 2)

	st := calendar.MonthState[time.Time]{
		RangeMode: true,
		Range:     calendar.RangeState[time.Time]{Begin: &begin, End: &end},
		Over:      15,
	}
	grid := calendar.BuildMonth[time.Time](a, day(2021, time.March, 15), bounds{}, st)
	assert.True(t, grid.Highlight.RangeFull)
	assert.Zero(t, grid.Highlight.Begin)
	assert.Zero(t, grid.Highlight.End)

	april := calendar.BuildMonth[time.Time](a, day(2021, time.April, 1), bounds{}, st)
	assert.False(t, april.Highlight.RangeFull)
	assert.Equal(t, 2, april.Highlight.End)
	assert.True(t, april.Highlight.IsSemiSelected(1))
	assert.False(t, april.Highlight.IsSemiSelected(3))

	pending := day(2021, time.March, 20)
	st.Range = calendar.RangeState[time.Time]{Begin: &pending, End: &pending, Pending: &pending}
	grid = calendar.BuildMonth[time.Time](a, day(2021, time.March, 15), bounds{}, st)
	assert.True(t, grid.Highlight.BeginSelected)
	assert.True(t, grid.Highlight.BeforeSelected)
	assert.Equal(t, 20, grid.Highlight.Begin)

	st.RangeMode = false
	grid = calendar.BuildMonth[time.Time](a, day(2021, time.March, 15), bounds{}, st)
	assert.Equal(t, calendar.Highlight{Over: 15}, grid.Highlight)
}

func TestBuildYear(t *testing.T) {
	a := newAdapter()
	active := day(2021, time.March, 15)
	selected := day(2021, time.July, 4)

	grid := calendar.BuildYear[time.Time](a, active, bounds{}, &selected)

	require.Len(t, grid.Rows, 3)
	for _, row := range grid.Rows {
		assert.Len(t, row, 4)
	}
	assert.Equal(t, "2021", grid.Label)
	assert.Equal(t, 2, grid.ActiveCell)
	assert.Equal(t, 2, grid.TodayValue)
	assert.Equal(t, 6, grid.SelectedValue)
	assert.Equal(t, 2, grid.LabelMinRequiredCells)

	jan := grid.Rows[0][0]
	assert.Equal(t, 0, jan.Value)
	assert.Equal(t, "JAN", jan.DisplayValue)
	assert.Equal(t, "January 2021", jan.AriaLabel)

	other := calendar.BuildYear[time.Time](a, day(2022, time.March, 1), bounds{}, &selected)
	assert.Equal(t, calendar.NoValue, other.TodayValue)
	assert.Equal(t, calendar.NoValue, other.SelectedValue)
}

func TestBuildYear_Enablement(t *testing.T) {
	a := newAdapter()
	min := day(2021, time.March, 31)
	max := day(2021, time.October, 1)

	grid := calendar.BuildYear[time.Time](a, day(2021, time.June, 1), bounds{Min: &min, Max: &max}, nil)
	for _, c := range grid.Cells() {
		assert.Equal(t, c.Value >= 2 && c.Value <= 9, c.Enabled, "month %d", c.Value)
	}

	// A month is enabled iff the filter accepts one of its days.
	only := day(2021, time.June, 30)
	filter := func(d time.Time) bool { return a.SameDate(&d, &only) }
	grid = calendar.BuildYear[time.Time](a, day(2021, time.June, 1), bounds{Filter: filter}, nil)
	for _, c := range grid.Cells() {
		assert.Equal(t, c.Value == 5, c.Enabled, "month %d", c.Value)
	}
}

func TestBuildMultiYear(t *testing.T) {
	a := newAdapter()
	active := day(2021, time.March, 15)

	grid := calendar.BuildMultiYear[time.Time](a, active, bounds{}, nil)
	require.Len(t, grid.Rows, 6)
	cells := grid.Cells()
	require.Len(t, cells, 24)
	assert.Equal(t, 2016, cells[0].Value)
	assert.Equal(t, 2039, cells[23].Value)
	assert.Equal(t, "2016", cells[0].DisplayValue)
	assert.Equal(t, 5, grid.ActiveCell)
	assert.Equal(t, 2021, grid.TodayValue)
	assert.Equal(t, calendar.NoValue, grid.SelectedValue)
	assert.Empty(t, grid.Label)

	min := day(2010, time.December, 31)
	max := day(2030, time.January, 1)
	grid = calendar.BuildMultiYear[time.Time](a, active, bounds{Min: &min, Max: &max}, nil)
	cells = grid.Cells()
	assert.Equal(t, 2007, cells[0].Value)
	assert.Equal(t, 2030, cells[23].Value)
	for _, c := range cells {
		assert.Equal(t, c.Value >= 2010, c.Enabled, "year %d", c.Value)
	}

	// A year is enabled iff the filter accepts one of its days.
	leap := day(2020, time.February, 29)
	filter := func(d time.Time) bool { return a.SameDate(&d, &leap) }
	grid = calendar.BuildMultiYear[time.Time](a, active, bounds{Filter: filter}, &leap)
	assert.Equal(t, 2020, grid.SelectedValue)
	for _, c := range grid.Cells() {
		assert.Equal(t, c.Value == 2020, c.Enabled, "year %d", c.Value)
	}
}

func TestBuildMonth_CivilAdapter(t *testing.T) {
	c := dateadapter.NewCivilAdapter("en", nil)
	c.Clock = dateadapter.FixedClock(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))

	grid := calendar.BuildMonth[datetime.CalendarDate](c, c.Today(), calendar.Bounds[datetime.CalendarDate]{}, calendar.MonthState[datetime.CalendarDate]{})
	assert.Len(t, grid.Cells(), 29)
	assert.Equal(t, 10, grid.TodayValue)
	assert.Equal(t, 4, grid.FirstRowOffset, "February 1st 2024 is a Thursday")
}
