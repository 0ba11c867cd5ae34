// Package picker connects a calendar to the value it edits: the Datepicker
// owns the committed selection and the Input reads and writes it as text.
package picker

import (
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
)

// Value is the value of a datepicker: Date in single mode, Begin and End in
// range mode. The zero Value is "no value".
type Value[D any] struct {
	Date       *D
	Begin, End *D
}

// SingleValue returns a single-mode value.
func SingleValue[D any](date *D) Value[D] {
	return Value[D]{Date: date}
}

// RangeValue returns a range-mode value.
func RangeValue[D any](begin, end *D) Value[D] {
	return Value[D]{Begin: begin, End: end}
}

// IsZero reports whether v holds no date at all.
func (v Value[D]) IsZero() bool {
	return v.Date == nil && v.Begin == nil && v.End == nil
}

// Complete reports whether v is a range with both ends set.
func (v Value[D]) Complete() bool {
	return v.Begin != nil && v.End != nil
}

// Range returns the committed range of v, if complete.
func (v Value[D]) Range() (calendar.Range[D], bool) {
	if !v.Complete() {
		return calendar.Range[D]{}, false
	}
	return calendar.Range[D]{Begin: *v.Begin, End: *v.End}, true
}

func sameValue[D any](a dateadapter.DateAdapter[D], v1, v2 Value[D]) bool {
	return a.SameDate(v1.Date, v2.Date) && a.SameDate(v1.Begin, v2.Begin) && a.SameDate(v1.End, v2.End)
}
