package picker

import (
	"fmt"
	"log/slog"
	"strings"

	"cloudeng.io/errors"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
)

// Input is the text side of a Datepicker: it parses typed text into a value,
// formats committed values back into text and validates them.
type Input[D any] struct {
	adapter dateadapter.DateAdapter[D]
	log     *slog.Logger
	picker  *Datepicker[D]

	text           string
	value          Value[D]
	lastValueValid bool
	readOnly       bool

	min, max *D
	filter   func(D) bool

	// OnDateInput is called after every text change and every committed selection.
	OnDateInput func(Value[D])
	// OnDateChange is called when the text is submitted and after every committed selection.
	OnDateChange func(Value[D])
}

// NewInput attaches a new Input to picker. A picker accepts a single input.
func NewInput[D any](picker *Datepicker[D]) (*Input[D], error) {
	if picker == nil {
		return nil, fmt.Errorf(config.ErrMissingProvider, "Datepicker")
	}
	in := &Input[D]{
		adapter:        picker.adapter,
		log:            slog.With(config.LogKeyComponent, config.CompPicker),
		picker:         picker,
		lastValueValid: true,
	}
	if err := picker.registerInput(in); err != nil {
		return nil, err
	}
	picker.OnSelectionChanged(in.selectionChanged)
	return in, nil
}

func (in *Input[D]) Text() string           { return in.text }
func (in *Input[D]) Value() Value[D]        { return in.value }
func (in *Input[D]) Min() *D                { return in.min }
func (in *Input[D]) Max() *D                { return in.max }
func (in *Input[D]) Filter() func(D) bool   { return in.filter }
func (in *Input[D]) SetReadOnly(ro bool)    { in.readOnly = ro }
func (in *Input[D]) Picker() *Datepicker[D] { return in.picker }

func (in *Input[D]) deserialize(date *D) *D {
	if date == nil {
		return nil
	}
	return in.adapter.Deserialize(*date)
}

func (in *Input[D]) validOrNil(date *D) *D {
	return dateadapter.ValidOrNil(in.adapter, date)
}

// SetMin sets the earliest valid date; invalid dates clear it.
func (in *Input[D]) SetMin(date *D) {
	in.min = in.validOrNil(in.deserialize(date))
	in.picker.boundsChanged()
}

// SetMax sets the latest valid date; invalid dates clear it.
func (in *Input[D]) SetMax(date *D) {
	in.max = in.validOrNil(in.deserialize(date))
	in.picker.boundsChanged()
}

// SetFilter sets the predicate a date must satisfy to be valid.
func (in *Input[D]) SetFilter(filter func(D) bool) {
	in.filter = filter
	in.picker.boundsChanged()
}

// SetValue sets the value programmatically and rewrites the text. A range
// whose begin is after its end is stored as no value.
func (in *Input[D]) SetValue(v Value[D]) {
	a := in.adapter

	if in.picker.RangeMode() {
		begin, end := in.deserialize(v.Begin), in.deserialize(v.End)
		in.lastValueValid = begin == nil || end == nil || a.IsValid(*begin) && a.IsValid(*end)
		next := RangeValue(in.validOrNil(begin), in.validOrNil(end))
		in.text = in.format(next)
		if !sameValue(a, in.value, next) {
			if next.Complete() && a.CompareDate(*next.Begin, *next.End) > 0 {
				next = Value[D]{}
			}
			in.value = next
			in.picker.inputChanged(next)
		}
		return
	}

	date := in.deserialize(v.Date)
	in.lastValueValid = date == nil || a.IsValid(*date)
	old := in.value
	in.value = SingleValue(in.validOrNil(date))
	in.text = in.format(in.value)
	if !a.SameDate(old.Date, in.value.Date) {
		in.picker.inputChanged(in.value)
	}
}

// OnInput parses text typed by the user. In range mode the text is cut at the
// middle of its dash-separated parts and both halves must parse.
func (in *Input[D]) OnInput(text string) {
	a := in.adapter
	in.text = text

	var v Value[D]
	if in.picker.RangeMode() {
		parts := strings.Split(text, config.RangeSplitChar)
		if len(parts) > 1 {
			position := len(parts) / 2
			begin := a.Parse(strings.Join(parts[:position], config.RangeSplitChar))
			end := a.Parse(strings.Join(parts[position:], config.RangeSplitChar))
			in.lastValueValid = begin == nil || end == nil || a.IsValid(*begin) && a.IsValid(*end)
			begin, end = in.validOrNil(begin), in.validOrNil(end)
			if begin != nil && end != nil {
				v = RangeValue(begin, end)
			}
		}
	} else {
		date := a.Parse(text)
		in.lastValueValid = date == nil || a.IsValid(*date)
		v = SingleValue(in.validOrNil(date))
	}

	in.log.Debug(config.MsgInputParsed, config.LogKeyText, text, config.LogKeyValid, in.lastValueValid)
	in.value = v
	in.picker.inputChanged(v)
	if in.OnDateInput != nil {
		in.OnDateInput(v)
	}
}

// Submit reports the current value as changed, like a change event on the field.
func (in *Input[D]) Submit() {
	if in.OnDateChange != nil {
		in.OnDateChange(in.value)
	}
}

// Blur reformats the text when it holds a value.
func (in *Input[D]) Blur() {
	if !in.value.IsZero() {
		in.text = in.format(in.value)
	}
}

// LocaleChanged rewrites the text with the current locale.
func (in *Input[D]) LocaleChanged() {
	in.text = in.format(in.value)
}

// HandleKey opens the picker on Alt+Down unless the input is read-only.
func (in *Input[D]) HandleKey(k calendar.Key, alt bool) (bool, error) {
	if !alt || k != calendar.KeyDown || in.readOnly {
		return false, nil
	}
	_, err := in.picker.Open()
	return err == nil, err
}

func (in *Input[D]) selectionChanged(v Value[D]) {
	in.SetValue(v)
	if in.OnDateInput != nil {
		in.OnDateInput(in.value)
	}
	if in.OnDateChange != nil {
		in.OnDateChange(in.value)
	}
}

func (in *Input[D]) format(v Value[D]) string {
	if in.picker.RangeMode() {
		if !v.Complete() {
			return ""
		}
		return in.formatDate(*v.Begin) + config.RangeSeparator + in.formatDate(*v.End)
	}
	if v.Date == nil {
		return ""
	}
	return in.formatDate(*v.Date)
}

func (in *Input[D]) formatDate(date D) string {
	s, err := in.adapter.Format(date, dateadapter.DateInput)
	if err != nil {
		in.log.Warn(config.ErrInvalidDate, config.LogKeyError, err)
	}
	return s
}

// Validate checks the current value against the parse, min, max, filter and
// range rules. All failures are returned together as an errors.M.
func (in *Input[D]) Validate() error {
	errs := &errors.M{}
	errs.Append(
		in.validateParse(),
		in.validateMin(),
		in.validateMax(),
		in.validateFilter(),
		in.validateRange(),
	)
	return errs.Err()
}

// dates returns the valid dates of the value for the current mode.
func (in *Input[D]) dates() []D {
	var out []D
	candidates := []*D{in.value.Date}
	if in.picker.RangeMode() {
		candidates = []*D{in.value.Begin, in.value.End}
	}
	for _, d := range candidates {
		if d = in.validOrNil(in.deserialize(d)); d != nil {
			out = append(out, *d)
		}
	}
	return out
}

func (in *Input[D]) validateParse() error {
	if in.lastValueValid {
		return nil
	}
	return ParseError{Text: in.text}
}

func (in *Input[D]) validateMin() error {
	if in.min == nil {
		return nil
	}
	for _, d := range in.dates() {
		if in.adapter.CompareDate(*in.min, d) > 0 {
			return MinError[D]{Min: *in.min, Actual: d}
		}
	}
	return nil
}

func (in *Input[D]) validateMax() error {
	if in.max == nil {
		return nil
	}
	for _, d := range in.dates() {
		if in.adapter.CompareDate(*in.max, d) < 0 {
			return MaxError[D]{Max: *in.max, Actual: d}
		}
	}
	return nil
}

func (in *Input[D]) validateFilter() error {
	if in.filter == nil {
		return nil
	}
	for _, d := range in.dates() {
		if !in.filter(d) {
			return FilterError{}
		}
	}
	return nil
}

func (in *Input[D]) validateRange() error {
	if !in.picker.RangeMode() {
		return nil
	}
	dates := in.dates()
	if len(dates) == 2 && in.adapter.CompareDate(dates[0], dates[1]) > 0 {
		return RangeError{}
	}
	return nil
}
