package calendar

import (
	"github.com/tartampluch/go-rangepicker/internal/config"
)

// Key is a navigation key understood by the calendar grid.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeySpace
)

// HandleKey applies a key press to the current view. modifier is the Alt key:
// it turns month paging into year paging in the month view and multiplies
// paging by ten in the other views. It reports whether the key was consumed.
func (c *Calendar[D]) HandleKey(k Key, modifier bool) bool {
	if k == KeyEnter || k == KeySpace {
		return c.handleSelectKey()
	}

	a := c.adapter
	old := c.active
	next, ok := c.navigate(k, modifier)
	if !ok {
		return false
	}
	c.SetActiveDate(next)

	if a.CompareDate(old, c.active) != 0 {
		c.log.Debug(config.MsgActiveChanged, config.LogKeyDate, a.ToISO8601(c.active))
		for _, l := range c.listeners {
			l.ActiveDateChanged(c.active)
		}
	}
	c.requestFocus()
	return true
}

// navigate returns the active date moved by k, not yet clamped.
func (c *Calendar[D]) navigate(k Key, modifier bool) (D, bool) {
	a := c.adapter
	d := c.active

	// Left and right follow the reading direction.
	step := 1
	if c.rtl {
		step = -1
	}

	switch c.view {
	case ViewMonth:
		switch k {
		case KeyLeft:
			return a.AddCalendarDays(d, -step), true
		case KeyRight:
			return a.AddCalendarDays(d, step), true
		case KeyUp:
			return a.AddCalendarDays(d, -config.DaysPerWeek), true
		case KeyDown:
			return a.AddCalendarDays(d, config.DaysPerWeek), true
		case KeyHome:
			return a.AddCalendarDays(d, 1-a.GetDate(d)), true
		case KeyEnd:
			return a.AddCalendarDays(d, a.GetNumDaysInMonth(d)-a.GetDate(d)), true
		case KeyPageUp:
			if modifier {
				return a.AddCalendarYears(d, -1), true
			}
			return a.AddCalendarMonths(d, -1), true
		case KeyPageDown:
			if modifier {
				return a.AddCalendarYears(d, 1), true
			}
			return a.AddCalendarMonths(d, 1), true
		}

	case ViewYear:
		switch k {
		case KeyLeft:
			return a.AddCalendarMonths(d, -step), true
		case KeyRight:
			return a.AddCalendarMonths(d, step), true
		case KeyUp:
			return a.AddCalendarMonths(d, -config.MonthsPerRow), true
		case KeyDown:
			return a.AddCalendarMonths(d, config.MonthsPerRow), true
		case KeyHome:
			return a.AddCalendarMonths(d, -a.GetMonth(d)), true
		case KeyEnd:
			return a.AddCalendarMonths(d, config.MonthsPerYear-1-a.GetMonth(d)), true
		case KeyPageUp:
			return a.AddCalendarYears(d, -pageDelta(1, modifier)), true
		case KeyPageDown:
			return a.AddCalendarYears(d, pageDelta(1, modifier)), true
		}

	case ViewMultiYear:
		offset := ActiveOffset(a, d, c.min, c.max)
		switch k {
		case KeyLeft:
			return a.AddCalendarYears(d, -step), true
		case KeyRight:
			return a.AddCalendarYears(d, step), true
		case KeyUp:
			return a.AddCalendarYears(d, -config.YearsPerRow), true
		case KeyDown:
			return a.AddCalendarYears(d, config.YearsPerRow), true
		case KeyHome:
			return a.AddCalendarYears(d, -offset), true
		case KeyEnd:
			return a.AddCalendarYears(d, config.YearsPerPage-offset-1), true
		case KeyPageUp:
			return a.AddCalendarYears(d, -pageDelta(config.YearsPerPage, modifier)), true
		case KeyPageDown:
			return a.AddCalendarYears(d, pageDelta(config.YearsPerPage, modifier)), true
		}
	}
	return d, false
}

func pageDelta(n int, modifier bool) int {
	if modifier {
		return n * config.PageJumpFactor
	}
	return n
}

// handleSelectKey selects the active cell of the current view.
func (c *Calendar[D]) handleSelectKey() bool {
	a := c.adapter

	switch c.view {
	case ViewYear:
		c.logIfErr(c.monthSelected(a.GetMonth(c.active)))
		c.requestFocus()
		return true
	case ViewMultiYear:
		c.logIfErr(c.yearSelected(a.GetYear(c.active)))
		c.requestFocus()
		return true
	}

	if c.filter != nil && !c.filter(c.active) {
		return false
	}
	emitted, err := c.daySelected(a.GetDate(c.active))
	c.logIfErr(err)
	if c.rng.Pending == nil && !emitted {
		c.userSelection()
	}
	if c.rng.Pending != nil || !c.closeAfter {
		c.requestFocus()
	}
	return true
}

func (c *Calendar[D]) logIfErr(err error) {
	if err != nil {
		c.log.Error(config.ErrCellOutOfRange, config.LogKeyError, err)
	}
}
