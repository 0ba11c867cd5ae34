package picker

import (
	"fmt"

	"cloudeng.io/errors"
	"github.com/tartampluch/go-rangepicker/internal/config"
)

var (
	// ErrInputRegistered is returned when a second Input is attached to a Datepicker.
	ErrInputRegistered = errors.New(config.ErrInputRegistered)

	// ErrNoInput is returned by Open when no Input is attached.
	ErrNoInput = errors.New(config.ErrNoInput)
)

// ParseError reports text that could not be read as a date.
type ParseError struct {
	Text string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %q", config.ErrParse, e.Text)
}

// MinError reports a date before the minimum.
type MinError[D any] struct {
	Min, Actual D
}

func (e MinError[D]) Error() string {
	return fmt.Sprintf("%s: %v < %v", config.ErrMin, e.Actual, e.Min)
}

// MaxError reports a date after the maximum.
type MaxError[D any] struct {
	Max, Actual D
}

func (e MaxError[D]) Error() string {
	return fmt.Sprintf("%s: %v > %v", config.ErrMax, e.Actual, e.Max)
}

// FilterError reports a date rejected by the date filter.
type FilterError struct{}

func (FilterError) Error() string { return config.ErrFilter }

// RangeError reports a range whose begin is after its end.
type RangeError struct{}

func (RangeError) Error() string { return config.ErrRange }
