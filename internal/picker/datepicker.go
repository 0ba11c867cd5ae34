package picker

import (
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
)

// Options configures a Datepicker.
type Options[D any] struct {
	// StartAt is the date the calendar opens on. When nil the calendar opens
	// on the input value (the begin date in range mode), then on today.
	StartAt          *D
	StartView        calendar.View
	OrderPeriodLabel calendar.PeriodOrder
	DateClass        func(D) []string

	RangeMode           bool
	RangeHoverEffect    bool
	CloseAfterSelection bool
	// SelectFirstDateOnClose commits a one-day range when the picker closes
	// between the two clicks of a range.
	SelectFirstDateOnClose bool
	RTL                    bool
}

// DefaultOptions returns the options of a single-date picker.
func DefaultOptions[D any]() Options[D] {
	return Options[D]{
		RangeHoverEffect:    config.DefaultHoverEffect,
		CloseAfterSelection: config.DefaultCloseAfter,
	}
}

// Datepicker owns the committed value and the Calendar shown while it is open.
type Datepicker[D any] struct {
	adapter dateadapter.DateAdapter[D]
	log     *slog.Logger
	opts    Options[D]

	selected      *D
	begin, end    *D
	beginSelected *D

	opened   bool
	disabled bool
	input    *Input[D]
	cal      *calendar.Calendar[D]

	listeners []func(Value[D])

	// OnYearSelected receives January 1st of a year picked in the multi-year view.
	OnYearSelected func(D)
	// OnMonthSelected receives the first day of a month picked in the year view.
	OnMonthSelected func(D)
	OnOpened        func(*calendar.Calendar[D])
	OnClosed        func()
}

// New returns a closed Datepicker.
func New[D any](adapter dateadapter.DateAdapter[D], opts Options[D]) (*Datepicker[D], error) {
	if adapter == nil {
		return nil, calendar.ErrMissingAdapter
	}
	d := &Datepicker[D]{
		adapter: adapter,
		log:     slog.With(config.LogKeyComponent, config.CompPicker),
		opts:    opts,
	}
	d.opts.StartAt = d.valid(opts.StartAt)
	return d, nil
}

func (d *Datepicker[D]) valid(date *D) *D {
	if date == nil {
		return nil
	}
	return dateadapter.ValidOrNil(d.adapter, d.adapter.Deserialize(*date))
}

func (d *Datepicker[D]) Adapter() dateadapter.DateAdapter[D] { return d.adapter }
func (d *Datepicker[D]) RangeMode() bool                     { return d.opts.RangeMode }
func (d *Datepicker[D]) Selected() *D                        { return d.selected }
func (d *Datepicker[D]) Begin() *D                           { return d.begin }
func (d *Datepicker[D]) End() *D                             { return d.end }
func (d *Datepicker[D]) Opened() bool                        { return d.opened }
func (d *Datepicker[D]) Disabled() bool                      { return d.disabled }
func (d *Datepicker[D]) Input() *Input[D]                    { return d.input }

// BeginSelected returns the first click of a range not yet committed.
func (d *Datepicker[D]) BeginSelected() *D { return d.beginSelected }

// Calendar returns the calendar of an open picker, nil when closed.
func (d *Datepicker[D]) Calendar() *calendar.Calendar[D] { return d.cal }

// Value returns the committed value for the current mode.
func (d *Datepicker[D]) Value() Value[D] {
	if d.opts.RangeMode {
		return RangeValue(d.begin, d.end)
	}
	return SingleValue(d.selected)
}

// StartAt returns the date the calendar opens on, nil meaning today.
func (d *Datepicker[D]) StartAt() *D {
	if d.opts.StartAt != nil || d.input == nil {
		return d.opts.StartAt
	}
	v := d.input.Value()
	if d.opts.RangeMode {
		return v.Begin
	}
	return v.Date
}

func (d *Datepicker[D]) SetStartAt(date *D) {
	d.opts.StartAt = d.valid(date)
}

// SetDisabled disables the picker; a disabled picker does not open.
func (d *Datepicker[D]) SetDisabled(disabled bool) {
	d.disabled = disabled
}

// OnSelectionChanged registers fn to receive every committed value change.
func (d *Datepicker[D]) OnSelectionChanged(fn func(Value[D])) {
	d.listeners = append(d.listeners, fn)
}

func (d *Datepicker[D]) emit(v Value[D]) {
	for _, fn := range d.listeners {
		fn(v)
	}
}

// Select commits a single date. Listeners are only notified when the date changes.
func (d *Datepicker[D]) Select(date *D) {
	old := d.selected
	d.selected = d.valid(date)
	if d.cal != nil {
		d.cal.SetSelected(d.selected)
	}
	if !d.adapter.SameDate(old, d.selected) {
		d.log.Debug(config.MsgDateSelected, config.LogKeyDate, d.iso(d.selected))
		d.emit(SingleValue(d.selected))
	}
}

// SelectRange commits a range, or clears it when r is nil. Any pending first
// click is dropped. Listeners are only notified when begin or end changes.
func (d *Datepicker[D]) SelectRange(r *calendar.Range[D]) {
	d.beginSelected = nil

	var begin, end *D
	if r != nil {
		begin, end = dateadapter.Ptr(r.Begin), dateadapter.Ptr(r.End)
	}
	changed := !d.adapter.SameDate(begin, d.begin) || !d.adapter.SameDate(end, d.end)
	d.begin, d.end = begin, end
	if d.cal != nil {
		d.cal.SetRange(begin, end)
	}
	if changed {
		d.log.Debug(config.MsgRangeCommitted, config.LogKeyBegin, d.iso(begin), config.LogKeyEnd, d.iso(end))
		d.emit(RangeValue(begin, end))
	}
}

// SetBeginSelected records the first click of a range.
func (d *Datepicker[D]) SetBeginSelected(date *D) {
	d.beginSelected = d.valid(date)
}

// Open builds the calendar and returns it. Opening an open picker returns
// its calendar; a disabled picker returns nil.
func (d *Datepicker[D]) Open() (*calendar.Calendar[D], error) {
	if d.opened || d.disabled {
		return d.cal, nil
	}
	if d.input == nil {
		return nil, ErrNoInput
	}

	cal, err := calendar.New(d.adapter, calendar.Options[D]{
		Min:                 d.input.Min(),
		Max:                 d.input.Max(),
		Filter:              d.input.Filter(),
		DateClass:           d.opts.DateClass,
		StartAt:             d.StartAt(),
		StartView:           d.opts.StartView,
		OrderPeriodLabel:    d.opts.OrderPeriodLabel,
		RangeMode:           d.opts.RangeMode,
		RangeHoverEffect:    d.opts.RangeHoverEffect,
		CloseAfterSelection: d.opts.CloseAfterSelection,
		RTL:                 d.opts.RTL,
		Selected:            d.selected,
		Begin:               d.begin,
		End:                 d.end,
	}, calendarEvents[D]{d: d})
	if err != nil {
		return nil, err
	}

	d.cal = cal
	d.opened = true
	d.log.Debug(config.MsgPickerOpened,
		config.LogKeyRangeMode, d.opts.RangeMode,
		config.LogKeyView, cal.View().String(),
	)
	if d.OnOpened != nil {
		d.OnOpened(cal)
	}
	return cal, nil
}

// Close drops the calendar. With SelectFirstDateOnClose, a pending first
// click is committed as a one-day range.
func (d *Datepicker[D]) Close() {
	if !d.opened {
		return
	}
	if d.beginSelected != nil && d.opts.SelectFirstDateOnClose {
		first := *d.beginSelected
		d.SelectRange(&calendar.Range[D]{Begin: first, End: first})
	}

	d.cal.CancelFocus()
	d.cal.Attach(nil, nil)
	d.cal = nil
	d.opened = false
	d.log.Debug(config.MsgPickerClosed)
	if d.OnClosed != nil {
		d.OnClosed()
	}
}

func (d *Datepicker[D]) registerInput(in *Input[D]) error {
	if d.input != nil {
		return ErrInputRegistered
	}
	d.input = in
	return nil
}

// inputChanged takes a value typed or set on the input.
func (d *Datepicker[D]) inputChanged(v Value[D]) {
	a := d.adapter
	switch {
	case v.IsZero():
		d.selected, d.begin, d.end = nil, nil, nil
	case d.opts.RangeMode:
		if v.Complete() && a.CompareDate(*v.Begin, *v.End) <= 0 {
			d.begin, d.end = v.Begin, v.End
		} else {
			d.begin, d.end = nil, nil
		}
	default:
		d.selected = v.Date
	}

	if d.cal != nil {
		d.cal.SetSelected(d.selected)
		d.cal.SetRange(d.begin, d.end)
	}
}

// boundsChanged pushes the input bounds into an open calendar.
func (d *Datepicker[D]) boundsChanged() {
	if d.cal == nil || d.input == nil {
		return
	}
	d.cal.SetBounds(d.input.Min(), d.input.Max())
	d.cal.SetFilter(d.input.Filter())
}

func (d *Datepicker[D]) iso(date *D) string {
	if date == nil {
		return ""
	}
	return d.adapter.ToISO8601(*date)
}

// String describes the committed value.
func (d *Datepicker[D]) String() string {
	if d.opts.RangeMode {
		return fmt.Sprintf("%s%s%s", d.iso(d.begin), config.RangeSeparator, d.iso(d.end))
	}
	return d.iso(d.selected)
}

// calendarEvents forwards the notifications of the open calendar.
type calendarEvents[D any] struct {
	calendar.NopListener[D]
	d *Datepicker[D]
}

func (e calendarEvents[D]) SelectedChanged(date *D) {
	e.d.Select(date)
}

func (e calendarEvents[D]) RangeChanged(r *calendar.Range[D]) {
	e.d.SelectRange(r)
}

func (e calendarEvents[D]) BeginSelected(date D) {
	e.d.SetBeginSelected(&date)
}

func (e calendarEvents[D]) YearSelected(date D) {
	if e.d.OnYearSelected != nil {
		e.d.OnYearSelected(date)
	}
}

func (e calendarEvents[D]) MonthSelected(date D) {
	if e.d.OnMonthSelected != nil {
		e.d.OnMonthSelected(date)
	}
}

func (e calendarEvents[D]) UserSelection() {
	if e.d.opts.CloseAfterSelection {
		e.d.Close()
	}
}
