package calendar

import (
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
)

// ErrMissingAdapter is returned by New when no DateAdapter is given.
var ErrMissingAdapter = fmt.Errorf(config.ErrMissingProvider, "DateAdapter")

// Listener receives the notifications of a Calendar. Embed NopListener to
// implement only some of them.
type Listener[D any] interface {
	// SelectedChanged is called with the new single selection, nil after a reset.
	SelectedChanged(date *D)
	// RangeChanged is called with the committed range, nil after a reset.
	RangeChanged(r *Range[D])
	// BeginSelected is called after the first click of a range.
	BeginSelected(date D)
	ActiveDateChanged(date D)
	ViewChanged(view View)
	// YearSelected carries January 1st of the year picked in the multi-year view.
	YearSelected(date D)
	// MonthSelected carries the first day of the month picked in the year view.
	MonthSelected(date D)
	// UserSelection is called once per completed user selection.
	UserSelection()
}

// NopListener implements Listener with no-ops.
type NopListener[D any] struct{}

func (NopListener[D]) SelectedChanged(*D)     {}
func (NopListener[D]) RangeChanged(*Range[D]) {}
func (NopListener[D]) BeginSelected(D)        {}
func (NopListener[D]) ActiveDateChanged(D)    {}
func (NopListener[D]) ViewChanged(View)       {}
func (NopListener[D]) YearSelected(D)         {}
func (NopListener[D]) MonthSelected(D)        {}
func (NopListener[D]) UserSelection()         {}

// Surface renders a Calendar.
type Surface interface {
	// Rebuild redraws the grid from Calendar.Grid.
	Rebuild()
	// FocusActiveCell moves keyboard focus to the active cell. It is only
	// called through the scheduler, after the surface has been rebuilt.
	FocusActiveCell()
}

// Scheduler runs f after the surface has processed pending redraws.
type Scheduler func(f func())

type nopSurface struct{}

func (nopSurface) Rebuild()         {}
func (nopSurface) FocusActiveCell() {}

// Calendar is the view-state controller. It is not safe for concurrent use;
// every call must come from the goroutine owning the surface.
type Calendar[D any] struct {
	adapter dateadapter.DateAdapter[D]
	log     *slog.Logger

	min, max  *D
	filter    func(D) bool
	dateClass func(D) []string

	rangeMode    bool
	hoverEffect  bool
	closeAfter   bool
	order        PeriodOrder
	rtl          bool
	active       D
	view         View
	selected     *D
	rng          RangeState[D]
	cellOver     int
	grid         Grid
	listeners    []Listener[D]
	surface      Surface
	schedule     Scheduler
	focusPending bool
}

// New returns a Calendar showing opts.StartAt (or today) in opts.StartView.
func New[D any](adapter dateadapter.DateAdapter[D], opts Options[D], listeners ...Listener[D]) (*Calendar[D], error) {
	if adapter == nil {
		return nil, ErrMissingAdapter
	}

	c := &Calendar[D]{
		adapter:     adapter,
		log:         slog.With(config.LogKeyComponent, config.CompCalendar),
		filter:      opts.Filter,
		dateClass:   opts.DateClass,
		rangeMode:   opts.RangeMode,
		hoverEffect: opts.RangeHoverEffect,
		closeAfter:  opts.CloseAfterSelection,
		order:       opts.OrderPeriodLabel,
		rtl:         opts.RTL,
		view:        opts.StartView,
		listeners:   listeners,
		surface:     nopSurface{},
		schedule:    func(f func()) { f() },
	}
	c.min = c.valid(opts.Min)
	c.max = c.valid(opts.Max)
	c.selected = c.valid(opts.Selected)
	c.rng.Begin = c.valid(opts.Begin)
	c.rng.End = c.valid(opts.End)

	start := adapter.Today()
	if at := c.valid(opts.StartAt); at != nil {
		start = *at
	}
	c.setActive(start)
	c.rebuild()
	return c, nil
}

func (c *Calendar[D]) valid(date *D) *D {
	if date == nil {
		return nil
	}
	return dateadapter.ValidOrNil(c.adapter, c.adapter.Deserialize(*date))
}

// Attach connects the rendering surface and the scheduler used for deferred
// focus moves. A nil scheduler runs focus moves immediately.
func (c *Calendar[D]) Attach(s Surface, schedule Scheduler) {
	if s == nil {
		s = nopSurface{}
	}
	if schedule == nil {
		schedule = func(f func()) { f() }
	}
	c.surface = s
	c.schedule = schedule
	c.rebuild()
}

// AddListener registers l for notifications.
func (c *Calendar[D]) AddListener(l Listener[D]) {
	c.listeners = append(c.listeners, l)
}

func (c *Calendar[D]) Adapter() dateadapter.DateAdapter[D] { return c.adapter }
func (c *Calendar[D]) ActiveDate() D                       { return c.active }
func (c *Calendar[D]) View() View                          { return c.view }
func (c *Calendar[D]) Min() *D                             { return c.min }
func (c *Calendar[D]) Max() *D                             { return c.max }
func (c *Calendar[D]) Selected() *D                        { return c.selected }
func (c *Calendar[D]) Begin() *D                           { return c.rng.Begin }
func (c *Calendar[D]) End() *D                             { return c.rng.End }
func (c *Calendar[D]) RangeMode() bool                     { return c.rangeMode }
func (c *Calendar[D]) RTL() bool                           { return c.rtl }
func (c *Calendar[D]) OrderPeriodLabel() PeriodOrder       { return c.order }

// BeginSelected returns the first click of a range awaiting its second click.
func (c *Calendar[D]) BeginSelected() *D { return c.rng.Pending }

// Grid returns the grid of the current view.
func (c *Calendar[D]) Grid() Grid { return c.grid }

// SetActiveDate clamps date into the bounds and shows its period. An invalid
// date shows today.
func (c *Calendar[D]) SetActiveDate(date D) {
	c.setActive(date)
	c.rebuild()
}

func (c *Calendar[D]) setActive(date D) {
	a := c.adapter
	if v := c.valid(&date); v != nil {
		date = *v
	} else {
		date = a.Today()
	}
	c.active = a.ClampDate(date, c.min, c.max)
	c.cellOver = a.GetDate(c.active)
}

// SetView switches the view and schedules a focus move to its active cell.
func (c *Calendar[D]) SetView(v View) {
	if v == c.view {
		return
	}
	c.log.Debug(config.MsgViewChanged, config.LogKeyOld, c.view.String(), config.LogKeyNew, v.String())
	c.view = v
	c.rebuild()
	for _, l := range c.listeners {
		l.ViewChanged(v)
	}
	c.requestFocus()
}

// SetBounds replaces min and max; the active date is clamped again.
func (c *Calendar[D]) SetBounds(min, max *D) {
	c.min = c.valid(min)
	c.max = c.valid(max)
	c.log.Debug(config.MsgBoundsChanged)
	c.setActive(c.active)
	c.rebuild()
}

// SetFilter replaces the date filter.
func (c *Calendar[D]) SetFilter(filter func(D) bool) {
	c.filter = filter
	c.log.Debug(config.MsgBoundsChanged)
	c.rebuild()
}

// SetDateClass replaces the function styling day cells.
func (c *Calendar[D]) SetDateClass(fn func(D) []string) {
	c.dateClass = fn
	c.rebuild()
}

// SetSelected replaces the single selection without notifying listeners.
func (c *Calendar[D]) SetSelected(date *D) {
	c.selected = c.valid(date)
	c.rebuild()
}

// SetRange replaces the committed range without notifying listeners.
func (c *Calendar[D]) SetRange(begin, end *D) {
	c.rng.Begin = c.valid(begin)
	c.rng.End = c.valid(end)
	c.rebuild()
}

// SetBeginSelected restores a pending first click, or clears it when nil.
func (c *Calendar[D]) SetBeginSelected(date *D) {
	c.rng.Pending = c.valid(date)
	c.rebuild()
}

// SetRangeMode switches between single-date and range selection.
func (c *Calendar[D]) SetRangeMode(on bool) {
	c.rangeMode = on
	c.rebuild()
}

// SetRangeHoverEffect enables the hover preview of range mode.
func (c *Calendar[D]) SetRangeHoverEffect(on bool) {
	c.hoverEffect = on
}

// SetCloseAfterSelection controls whether focus stays in the grid after a selection.
func (c *Calendar[D]) SetCloseAfterSelection(on bool) {
	c.closeAfter = on
}

// SetOrderPeriodLabel changes the period label cycle.
func (c *Calendar[D]) SetOrderPeriodLabel(o PeriodOrder) {
	c.order = o
}

// SetRTL mirrors the left and right arrow keys.
func (c *Calendar[D]) SetRTL(rtl bool) {
	c.rtl = rtl
}

// Refresh rebuilds the grid, for example after a locale change.
func (c *Calendar[D]) Refresh() {
	c.rebuild()
}

func (c *Calendar[D]) bounds() Bounds[D] {
	return Bounds[D]{Min: c.min, Max: c.max, Filter: c.filter, DateClass: c.dateClass}
}

func (c *Calendar[D]) rebuild() {
	switch c.view {
	case ViewYear:
		c.grid = BuildYear(c.adapter, c.active, c.bounds(), c.selected)
	case ViewMultiYear:
		c.grid = BuildMultiYear(c.adapter, c.active, c.bounds(), c.selected)
	default:
		c.grid = BuildMonth(c.adapter, c.active, c.bounds(), MonthState[D]{
			Selected:  c.selected,
			RangeMode: c.rangeMode,
			Range:     c.rng,
			Over:      c.cellOver,
		})
	}
	c.surface.Rebuild()
}

// requestFocus schedules one focus move; further requests before it runs are merged.
func (c *Calendar[D]) requestFocus() {
	if c.focusPending {
		return
	}
	c.focusPending = true
	c.schedule(func() {
		if !c.focusPending {
			return
		}
		c.focusPending = false
		c.surface.FocusActiveCell()
	})
}

// CancelFocus drops a scheduled focus move that has not run yet.
func (c *Calendar[D]) CancelFocus() {
	if c.focusPending {
		c.log.Debug(config.MsgFocusDropped)
	}
	c.focusPending = false
}

// Hover records the day under the pointer for the range preview.
func (c *Calendar[D]) Hover(value int) {
	if !c.hoverEffect || c.view != ViewMonth {
		return
	}
	c.cellOver = value
	c.grid.Highlight.Over = value
	c.surface.Rebuild()
}

// SelectCell handles a click on the cell holding value. Clicks on disabled
// cells are ignored.
func (c *Calendar[D]) SelectCell(value int) error {
	cell, ok := c.grid.Cell(value)
	if !ok {
		return fmt.Errorf("%s: %d", config.ErrCellOutOfRange, value)
	}
	if !cell.Enabled {
		return nil
	}

	switch c.view {
	case ViewYear:
		return c.monthSelected(value)
	case ViewMultiYear:
		return c.yearSelected(value)
	default:
		_, err := c.daySelected(value)
		return err
	}
}

// daySelected applies a click on a day of the active month and reports
// whether a user selection was emitted.
func (c *Calendar[D]) daySelected(day int) (bool, error) {
	a := c.adapter
	date, err := a.CreateDate(a.GetYear(c.active), a.GetMonth(c.active), day)
	if err != nil {
		return false, err
	}

	if c.rangeMode {
		r := c.rng.Pick(a, date)
		if r == nil {
			c.log.Debug(config.MsgBeginSelected, config.LogKeyDate, a.ToISO8601(date))
			for _, l := range c.listeners {
				l.BeginSelected(date)
			}
		} else {
			c.log.Debug(config.MsgRangeCommitted,
				config.LogKeyBegin, a.ToISO8601(r.Begin),
				config.LogKeyEnd, a.ToISO8601(r.End),
			)
			for _, l := range c.listeners {
				l.RangeChanged(r)
			}
			c.userSelection()
		}
		c.setActive(date)
		c.rebuild()
		c.requestFocus()
		return r != nil, nil
	}

	if c.grid.SelectedValue == day {
		return false, nil
	}
	if !a.SameDate(&date, c.selected) {
		c.selected = &date
		c.log.Debug(config.MsgDateSelected, config.LogKeyDate, a.ToISO8601(date))
		for _, l := range c.listeners {
			l.SelectedChanged(&date)
		}
	}
	c.userSelection()
	c.rebuild()
	return true, nil
}

func (c *Calendar[D]) userSelection() {
	for _, l := range c.listeners {
		l.UserSelection()
	}
}

// monthSelected drills down from the year view into month.
func (c *Calendar[D]) monthSelected(month int) error {
	a := c.adapter
	year := a.GetYear(c.active)
	normalized, err := a.CreateDate(year, month, 1)
	if err != nil {
		return err
	}
	for _, l := range c.listeners {
		l.MonthSelected(normalized)
	}
	day := min(a.GetDate(c.active), a.GetNumDaysInMonth(normalized))
	target, err := a.CreateDate(year, month, day)
	if err != nil {
		return err
	}
	c.goToDateInView(target, ViewMonth)
	return nil
}

// yearSelected drills down from the multi-year view into year.
func (c *Calendar[D]) yearSelected(year int) error {
	a := c.adapter
	normalized, err := a.CreateDate(year, 0, 1)
	if err != nil {
		return err
	}
	for _, l := range c.listeners {
		l.YearSelected(normalized)
	}
	month := a.GetMonth(c.active)
	firstOfMonth, err := a.CreateDate(year, month, 1)
	if err != nil {
		return err
	}
	day := min(a.GetDate(c.active), a.GetNumDaysInMonth(firstOfMonth))
	target, err := a.CreateDate(year, month, day)
	if err != nil {
		return err
	}
	c.goToDateInView(target, ViewYear)
	return nil
}

func (c *Calendar[D]) goToDateInView(date D, v View) {
	c.setActive(date)
	if v == c.view {
		c.rebuild()
		return
	}
	c.SetView(v)
}

// Reset clears the selection: the single date, or the range and any pending click.
func (c *Calendar[D]) Reset() {
	c.log.Debug(config.MsgRangeReset, config.LogKeyRangeMode, c.rangeMode)
	if !c.rangeMode {
		c.selected = nil
		c.rebuild()
		for _, l := range c.listeners {
			l.SelectedChanged(nil)
		}
		return
	}
	c.rng.Reset()
	c.rebuild()
	for _, l := range c.listeners {
		l.RangeChanged(nil)
	}
}
