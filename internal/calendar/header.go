package calendar

import (
	"fmt"

	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
)

// PeriodText is the text of the period button: "MAR 2021", "2021" or "2016 – 2039".
func (c *Calendar[D]) PeriodText() string {
	a := c.adapter
	switch c.view {
	case ViewMonth:
		return a.UpperCase(format(a, c.active, dateadapter.MonthYearLabel))
	case ViewYear:
		return a.GetYearName(c.active)
	}
	first := MinYearOfPage(a, c.active, c.min, c.max)
	return fmt.Sprintf("%d%s%d", first, config.PeriodSeparator, first+config.YearsPerPage-1)
}

// PeriodLabel is the accessible label of the period button.
func (c *Calendar[D]) PeriodLabel() string {
	if c.view == ViewMonth {
		return c.adapter.Label(config.TKeySwitchToMultiYearView)
	}
	return c.adapter.Label(config.TKeySwitchToMonthView)
}

// PreviousLabel is the accessible label of the previous button.
func (c *Calendar[D]) PreviousLabel() string {
	switch c.view {
	case ViewYear:
		return c.adapter.Label(config.TKeyPrevYearLabel)
	case ViewMultiYear:
		return c.adapter.Label(config.TKeyPrevMultiYearLabel)
	}
	return c.adapter.Label(config.TKeyPrevMonthLabel)
}

// NextLabel is the accessible label of the next button.
func (c *Calendar[D]) NextLabel() string {
	switch c.view {
	case ViewYear:
		return c.adapter.Label(config.TKeyNextYearLabel)
	case ViewMultiYear:
		return c.adapter.Label(config.TKeyNextMultiYearLabel)
	}
	return c.adapter.Label(config.TKeyNextMonthLabel)
}

// CurrentPeriodClicked moves to the next view of the period cycle.
func (c *Calendar[D]) CurrentPeriodClicked() {
	cycle := [3]View{ViewMonth, ViewMultiYear, ViewMonth}
	if c.order == OrderMonth {
		cycle = [3]View{ViewMonth, ViewYear, ViewMultiYear}
	}

	switch c.view {
	case ViewMonth:
		c.SetView(cycle[1])
	case ViewYear:
		c.SetView(cycle[2])
	default:
		c.SetView(cycle[0])
	}
}

// PreviousClicked shows the previous month, year or page.
func (c *Calendar[D]) PreviousClicked() {
	c.SetActiveDate(c.shift(-1))
}

// NextClicked shows the next month, year or page.
func (c *Calendar[D]) NextClicked() {
	c.SetActiveDate(c.shift(1))
}

func (c *Calendar[D]) shift(dir int) D {
	a := c.adapter
	switch c.view {
	case ViewMonth:
		return a.AddCalendarMonths(c.active, dir)
	case ViewYear:
		return a.AddCalendarYears(c.active, dir)
	}
	return a.AddCalendarYears(c.active, dir*config.YearsPerPage)
}

// PreviousEnabled reports whether the period before the shown one holds a date after min.
func (c *Calendar[D]) PreviousEnabled() bool {
	return c.min == nil || !c.isSameView(c.active, *c.min)
}

// NextEnabled reports whether the period after the shown one holds a date before max.
func (c *Calendar[D]) NextEnabled() bool {
	return c.max == nil || !c.isSameView(c.active, *c.max)
}

func (c *Calendar[D]) isSameView(d1, d2 D) bool {
	a := c.adapter
	switch c.view {
	case ViewMonth:
		return sameMonthAndYear(a, d1, d2)
	case ViewYear:
		return a.GetYear(d1) == a.GetYear(d2)
	}
	return IsSameMultiYearView(a, d1, d2, c.min, c.max)
}
