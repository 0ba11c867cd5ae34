package picker_test

import (
	"errors"
	"testing"
	"time"

	cerrors "cloudeng.io/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/picker"
)

func TestOnInput_Single(t *testing.T) {
	p, in, _ := newPicker(t, picker.DefaultOptions[time.Time]())

	var typed []picker.Value[time.Time]
	in.OnDateInput = func(v picker.Value[time.Time]) { typed = append(typed, v) }

	in.OnInput("2021/03/05")
	require.NotNil(t, in.Value().Date)
	assert.Equal(t, day(2021, time.March, 5), *in.Value().Date)
	assert.Equal(t, day(2021, time.March, 5), *p.Selected())
	assert.NoError(t, in.Validate())
	assert.Equal(t, "2021/03/05", in.Text())

	in.Blur()
	assert.Equal(t, "2021-03-05", in.Text())

	in.OnInput("not a date")
	assert.True(t, in.Value().IsZero())
	assert.Nil(t, p.Selected())
	var pe picker.ParseError
	require.ErrorAs(t, in.Validate(), &pe)
	assert.Equal(t, "not a date", pe.Text)

	in.OnInput("")
	assert.NoError(t, in.Validate(), "empty text is no value, not a parse error")
	assert.Len(t, typed, 3)
}

func TestOnInput_Range(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantBegin time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{
			name:      "iso dates",
			text:      "2021-03-05 - 2021-03-20",
			wantBegin: day(2021, time.March, 5),
			wantEnd:   day(2021, time.March, 20),
		},
		{
			name:      "slash dates",
			text:      "3/5/2021 - 3/20/2021",
			wantBegin: day(2021, time.March, 5),
			wantEnd:   day(2021, time.March, 20),
		},
		{
			name:    "reversed",
			text:    "2021-03-20 - 2021-03-05",
			wantErr: picker.RangeError{},
		},
		{
			name:    "single date",
			text:    "2021-03-05",
			wantErr: picker.ParseError{Text: "2021-03-05"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, in, _ := newPicker(t, rangeOptions())
			in.OnInput(tt.text)

			err := in.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p.Begin(), "invalid ranges are not committed")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBegin, *p.Begin())
			assert.Equal(t, tt.wantEnd, *p.End())
		})
	}
}

func TestValidate_Bounds(t *testing.T) {
	weekday := func(d time.Time) bool {
		return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
	}

	tests := []struct {
		name   string
		text   string
		check  func(t *testing.T, err error)
		single bool
	}{
		{
			name:   "inside",
			text:   "2021-03-15",
			single: true,
			check:  func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:   "before min",
			text:   "2021-03-05",
			single: true,
			check: func(t *testing.T, err error) {
				var me picker.MinError[time.Time]
				require.ErrorAs(t, err, &me)
				assert.Equal(t, day(2021, time.March, 10), me.Min)
				assert.Equal(t, day(2021, time.March, 5), me.Actual)
			},
		},
		{
			name:   "after max",
			text:   "2021-03-25",
			single: true,
			check: func(t *testing.T, err error) {
				var me picker.MaxError[time.Time]
				require.ErrorAs(t, err, &me)
				assert.Equal(t, day(2021, time.March, 25), me.Actual)
			},
		},
		{
			name:   "filtered",
			text:   "2021-03-13",
			single: true,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, picker.FilterError{}) },
		},
		{
			name: "range across both bounds",
			text: "2021-03-05 - 2021-03-25",
			check: func(t *testing.T, err error) {
				var m *cerrors.M
				require.True(t, errors.As(err, &m))
				assert.Len(t, m.Unwrap(), 2)
				assert.ErrorAs(t, err, new(picker.MinError[time.Time]))
				assert.ErrorAs(t, err, new(picker.MaxError[time.Time]))
			},
		},
		{
			name: "range end filtered",
			text: "2021-03-12 - 2021-03-14",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, picker.FilterError{})
				assert.NotErrorIs(t, err, picker.RangeError{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := rangeOptions()
			o.RangeMode = !tt.single
			_, in, _ := newPicker(t, o)
			in.SetMin(ptr(day(2021, time.March, 10)))
			in.SetMax(ptr(day(2021, time.March, 20)))
			in.SetFilter(weekday)

			in.OnInput(tt.text)
			tt.check(t, in.Validate())
		})
	}
}

func TestSetValue(t *testing.T) {
	p, in, _ := newPicker(t, rangeOptions())

	in.SetValue(picker.RangeValue(ptr(day(2021, time.March, 20)), ptr(day(2021, time.March, 5))))
	assert.True(t, in.Value().IsZero(), "a reversed range is no value")
	assert.Equal(t, "2021-03-20 - 2021-03-05", in.Text())
	assert.Nil(t, p.Begin())

	in.SetValue(picker.RangeValue(ptr(day(2021, time.March, 5)), nil))
	assert.Empty(t, in.Text())
	assert.NoError(t, in.Validate())

	in.SetValue(picker.RangeValue(ptr(time.Time{}), ptr(day(2021, time.March, 5))))
	assert.ErrorAs(t, in.Validate(), new(picker.ParseError))

	s, single, _ := newPicker(t, picker.DefaultOptions[time.Time]())
	single.SetValue(picker.SingleValue(ptr(day(2021, time.April, 1))))
	assert.Equal(t, "2021-04-01", single.Text())
	assert.Equal(t, day(2021, time.April, 1), *s.Selected())
}

func TestBoundsReachOpenCalendar(t *testing.T) {
	p, in, _ := newPicker(t, picker.DefaultOptions[time.Time]())

	cal, err := p.Open()
	require.NoError(t, err)

	min := day(2021, time.March, 20)
	in.SetMin(&min)
	assert.Equal(t, min, *cal.Min())
	assert.Equal(t, min, cal.ActiveDate())

	in.SetFilter(func(d time.Time) bool { return d.Day() != 25 })
	c25, ok := cal.Grid().Cell(25)
	require.True(t, ok)
	assert.False(t, c25.Enabled)

	// Typing while open moves the calendar selection.
	in.OnInput("2021-03-22")
	assert.Equal(t, 22, cal.Grid().SelectedValue)
}

func TestHandleKey_OpensOnAltDown(t *testing.T) {
	p, in, _ := newPicker(t, picker.DefaultOptions[time.Time]())

	ok, err := in.HandleKey(calendar.KeyDown, false)
	assert.NoError(t, err)
	assert.False(t, ok)

	in.SetReadOnly(true)
	ok, _ = in.HandleKey(calendar.KeyDown, true)
	assert.False(t, ok)
	assert.False(t, p.Opened())

	in.SetReadOnly(false)
	ok, err = in.HandleKey(calendar.KeyDown, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, p.Opened())
}

func TestLocaleChanged(t *testing.T) {
	a := newAdapter()
	p, err := picker.New[time.Time](a, picker.DefaultOptions[time.Time]())
	require.NoError(t, err)
	in, err := picker.NewInput(p)
	require.NoError(t, err)

	in.SetValue(picker.SingleValue(ptr(day(2021, time.March, 5))))
	a.SetLocale("fr")
	in.LocaleChanged()
	assert.Equal(t, "2021-03-05", in.Text(), "the input format is locale independent")
}
