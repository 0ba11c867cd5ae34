package ui

import (
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/config"
)

// FyneScheduler defers focus moves until fyne has processed pending redraws.
func FyneScheduler(f func()) {
	fyne.Do(f)
}

var navKeys = map[fyne.KeyName]calendar.Key{
	fyne.KeyLeft:     calendar.KeyLeft,
	fyne.KeyRight:    calendar.KeyRight,
	fyne.KeyUp:       calendar.KeyUp,
	fyne.KeyDown:     calendar.KeyDown,
	fyne.KeyHome:     calendar.KeyHome,
	fyne.KeyEnd:      calendar.KeyEnd,
	fyne.KeyPageUp:   calendar.KeyPageUp,
	fyne.KeyPageDown: calendar.KeyPageDown,
	fyne.KeyReturn:   calendar.KeyEnter,
	fyne.KeyEnter:    calendar.KeyEnter,
	fyne.KeySpace:    calendar.KeySpace,
}

// KeyFor maps a fyne key to a calendar navigation key.
func KeyFor(name fyne.KeyName) (calendar.Key, bool) {
	k, ok := navKeys[name]
	return k, ok
}

func isAlt(name fyne.KeyName) bool {
	return name == desktop.KeyAltLeft || name == desktop.KeyAltRight
}

// gridShape changes whenever the cell layout has to be rebuilt.
type gridShape struct {
	view       calendar.View
	cols       int
	offset     int
	count      int
	labelInRow bool
}

func shapeOf(g calendar.Grid) gridShape {
	return gridShape{
		view:       g.View,
		cols:       g.NumCols,
		offset:     g.FirstRowOffset,
		count:      len(g.Cells()),
		labelInRow: g.Label != "" && g.LabelInFirstRow(),
	}
}

// CalendarView draws a calendar.Calendar and forwards pointer and keyboard
// input to it. It implements calendar.Surface.
type CalendarView struct {
	widget.BaseWidget

	cal *calendar.Calendar[time.Time]

	period, prev, next *widget.Button
	header             *fyne.Container
	label              *widget.Label
	rowLabel           *widget.Label
	weekdays           *fyne.Container
	body               *fyne.Container
	content            *fyne.Container

	cells   []*dayCell
	shape   gridShape
	focused bool
	alt     bool
	hovered int
}

// NewCalendarView attaches a new view to cal. schedule defaults to FyneScheduler.
func NewCalendarView(cal *calendar.Calendar[time.Time], schedule calendar.Scheduler) *CalendarView {
	if schedule == nil {
		schedule = FyneScheduler
	}

	v := &CalendarView{cal: cal, shape: gridShape{cols: -1}}
	v.ExtendBaseWidget(v)

	v.period = widget.NewButton("", cal.CurrentPeriodClicked)
	v.prev = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), cal.PreviousClicked)
	v.next = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), cal.NextClicked)
	for _, b := range []*widget.Button{v.prev, v.next} {
		b.Importance = widget.LowImportance
	}

	v.header = container.NewBorder(nil, nil, v.prev, v.next, v.period)
	if cal.RTL() {
		v.header = container.NewBorder(nil, nil, v.next, v.prev, v.period)
	}

	v.label = widget.NewLabel("")
	v.label.TextStyle = fyne.TextStyle{Bold: true}
	v.rowLabel = widget.NewLabel("")
	v.rowLabel.TextStyle = fyne.TextStyle{Bold: true}

	labels := make([]fyne.CanvasObject, config.DaysPerWeek)
	for i := range labels {
		l := widget.NewLabel("")
		l.Alignment = fyne.TextAlignCenter
		labels[i] = l
	}
	v.weekdays = container.NewGridWithColumns(config.DaysPerWeek, labels...)
	v.body = container.NewStack()
	v.content = container.NewBorder(container.NewVBox(v.header, v.weekdays, v.label), nil, nil, nil, v.body)

	cal.Attach(v, schedule)
	return v
}

// Calendar returns the controller drawn by the view.
func (v *CalendarView) Calendar() *calendar.Calendar[time.Time] {
	return v.cal
}

func (v *CalendarView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// Rebuild redraws the header and the cells from the calendar grid. Cells are
// updated in place while the layout of the grid is unchanged.
func (v *CalendarView) Rebuild() {
	g := v.cal.Grid()

	v.period.SetText(v.cal.PeriodText())
	setEnabled(v.prev, v.cal.PreviousEnabled())
	setEnabled(v.next, v.cal.NextEnabled())

	if g.View == calendar.ViewMonth && len(g.Weekdays) == config.DaysPerWeek {
		for i, wd := range g.Weekdays {
			v.weekdays.Objects[i].(*widget.Label).SetText(wd.Narrow)
		}
		v.weekdays.Show()
	} else {
		v.weekdays.Hide()
	}

	if g.Label != "" && !g.LabelInFirstRow() {
		v.label.SetText(g.Label)
		v.label.Show()
	} else {
		v.label.Hide()
	}
	v.rowLabel.SetText(g.Label)

	if s := shapeOf(g); s != v.shape {
		v.layoutCells(g, s)
	}
	for i, c := range g.Cells() {
		v.cells[i].update(g, c, v.focused && i == g.ActiveCell)
	}
}

func (v *CalendarView) layoutCells(g calendar.Grid, s gridShape) {
	v.shape = s
	v.hovered = 0

	objs := make([]fyne.CanvasObject, 0, s.offset+s.count)
	for i := 0; i < s.offset; i++ {
		if i == 0 && s.labelInRow {
			objs = append(objs, v.rowLabel)
			continue
		}
		objs = append(objs, layout.NewSpacer())
	}

	v.cells = v.cells[:0]
	for range s.count {
		c := newDayCell(v.cellTapped, v.cellHovered)
		v.cells = append(v.cells, c)
		objs = append(objs, container.NewStack(c.outline, c))
	}

	v.body.Objects = []fyne.CanvasObject{container.NewGridWithColumns(max(s.cols, 1), objs...)}
	v.body.Refresh()
}

// FocusActiveCell gives keyboard focus to the view and outlines the active cell.
func (v *CalendarView) FocusActiveCell() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(v); c != nil && c.Focused() != v {
		c.Focus(v)
	}
	v.focused = true
	v.markActive()
}

func (v *CalendarView) markActive() {
	active := v.cal.Grid().ActiveCell
	for i, c := range v.cells {
		c.outline.Hidden = !v.focused || i != active
		c.outline.Refresh()
	}
}

func (v *CalendarView) cellTapped(value int) {
	if err := v.cal.SelectCell(value); err != nil {
		slog.Warn(config.ErrCellOutOfRange,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, value,
			config.LogKeyError, err,
		)
	}
}

func (v *CalendarView) cellHovered(value int) {
	if value == v.hovered {
		return
	}
	v.hovered = value
	v.cal.Hover(value)
}

func (v *CalendarView) FocusGained() {
	v.focused = true
	v.markActive()
}

func (v *CalendarView) FocusLost() {
	v.focused = false
	v.alt = false
	v.markActive()
}

func (v *CalendarView) TypedRune(rune) {}

// TypedKey forwards navigation and selection keys to the calendar.
func (v *CalendarView) TypedKey(ev *fyne.KeyEvent) {
	if k, ok := KeyFor(ev.Name); ok {
		v.cal.HandleKey(k, v.alt)
	}
}

// KeyDown tracks the Alt modifier.
func (v *CalendarView) KeyDown(ev *fyne.KeyEvent) {
	if isAlt(ev.Name) {
		v.alt = true
	}
}

func (v *CalendarView) KeyUp(ev *fyne.KeyEvent) {
	if isAlt(ev.Name) {
		v.alt = false
	}
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// dayCell is one button of the grid. It reports pointer hovers.
type dayCell struct {
	widget.Button

	value   int
	onHover func(int)
	outline *canvas.Rectangle
}

func newDayCell(onTap, onHover func(int)) *dayCell {
	c := &dayCell{onHover: onHover}
	c.OnTapped = func() { onTap(c.value) }
	c.ExtendBaseWidget(c)

	c.outline = canvas.NewRectangle(color.Transparent)
	c.outline.StrokeColor = theme.Color(theme.ColorNameFocus)
	c.outline.StrokeWidth = 2
	c.outline.Hide()
	return c
}

func (c *dayCell) MouseIn(e *desktop.MouseEvent) {
	c.Button.MouseIn(e)
	if c.onHover != nil && !c.Disabled() {
		c.onHover(c.value)
	}
}

func (c *dayCell) update(g calendar.Grid, cell calendar.Cell, active bool) {
	c.value = cell.Value
	c.Text = cell.DisplayValue
	c.Importance = importance(g, cell)
	if cell.Enabled {
		c.Enable()
	} else {
		c.Disable()
	}
	c.outline.Hidden = !active
	c.outline.Refresh()
	c.Refresh()
}

// importance maps the highlight of a cell to a button style.
func importance(g calendar.Grid, c calendar.Cell) widget.Importance {
	h, v := g.Highlight, c.Value
	switch {
	case v == g.SelectedValue, h.RangeMode && (h.IsBegin(v) || h.IsEnd(v)):
		return widget.HighImportance
	case h.IsSemiSelected(v), h.IsBetweenOverAndBegin(v):
		return widget.MediumImportance
	case v == g.TodayValue:
		return widget.SuccessImportance
	}
	return widget.LowImportance
}
