// Package calendar holds the date-range calendar core: grid builders for the
// month, year and multi-year views, multi-year paging, the two-click range
// state machine and the Calendar controller that ties them to a rendering
// surface.
package calendar

import (
	"fmt"

	"github.com/tartampluch/go-rangepicker/internal/config"
)

// View is the granularity shown by the calendar.
type View int

const (
	ViewMonth View = iota
	ViewYear
	ViewMultiYear
)

func (v View) String() string {
	switch v {
	case ViewMonth:
		return config.ViewNameMonth
	case ViewYear:
		return config.ViewNameYear
	case ViewMultiYear:
		return config.ViewNameMultiYear
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView converts "month", "year" or "multi-year" into a View.
func ParseView(s string) (View, error) {
	switch s {
	case config.ViewNameMonth:
		return ViewMonth, nil
	case config.ViewNameYear:
		return ViewYear, nil
	case config.ViewNameMultiYear:
		return ViewMultiYear, nil
	}
	return ViewMonth, fmt.Errorf("%s: %q", config.ErrUnknownView, s)
}

// PeriodOrder controls the cycle of views when the period label is clicked.
type PeriodOrder int

const (
	// OrderMultiYear cycles month > multi-year > month.
	OrderMultiYear PeriodOrder = iota
	// OrderMonth cycles month > year > multi-year > month.
	OrderMonth
)

func (o PeriodOrder) String() string {
	if o == OrderMonth {
		return config.OrderPeriodMonth
	}
	return config.OrderPeriodMultiYear
}

// ParsePeriodOrder converts "month" or "multi-year" into a PeriodOrder.
func ParsePeriodOrder(s string) (PeriodOrder, error) {
	switch s {
	case config.OrderPeriodMonth:
		return OrderMonth, nil
	case config.OrderPeriodMultiYear:
		return OrderMultiYear, nil
	}
	return OrderMultiYear, fmt.Errorf("%s: %q", config.ErrUnknownOrder, s)
}

// Options configures a Calendar. Invalid dates are treated as absent.
type Options[D any] struct {
	Min, Max *D

	// Filter reports whether a date may be selected. Nil accepts every date.
	Filter func(D) bool

	// DateClass returns extra style classes for a day cell.
	DateClass func(D) []string

	// StartAt is the date shown first. Nil starts at today.
	StartAt *D

	StartView        View
	OrderPeriodLabel PeriodOrder

	RangeMode           bool
	RangeHoverEffect    bool
	CloseAfterSelection bool

	// RTL mirrors the left and right arrow keys.
	RTL bool

	Selected   *D
	Begin, End *D
}

// DefaultOptions returns the options of a single-date calendar with the hover
// preview and close-after-selection enabled.
func DefaultOptions[D any]() Options[D] {
	return Options[D]{
		StartView:           ViewMonth,
		OrderPeriodLabel:    OrderMultiYear,
		RangeHoverEffect:    config.DefaultHoverEffect,
		CloseAfterSelection: config.DefaultCloseAfter,
	}
}
