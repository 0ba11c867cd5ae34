// Package export writes committed date ranges as iCalendar all-day events.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
)

// ErrEmptyRange is returned for a range missing its begin or end.
var ErrEmptyRange = errors.New(config.ErrExportEmpty)

// Exporter turns ranges into VCALENDAR documents holding one VEVENT.
type Exporter[D any] struct {
	Adapter dateadapter.DateAdapter[D]
	Clock   dateadapter.Clock // Stamps DTSTAMP; RealClock when nil.

	// Summary is the SUMMARY of the event, config.DefaultEventSummary when empty.
	Summary string
}

// EncodeValue encodes the range held by a picker value.
func (e *Exporter[D]) EncodeValue(begin, end *D) ([]byte, error) {
	if begin == nil || end == nil {
		return nil, ErrEmptyRange
	}
	return e.Encode(calendar.Range[D]{Begin: *begin, End: *end})
}

// Encode returns the iCalendar document of r. The event spans whole days:
// DTEND is the day after r.End, as all-day events use an exclusive end.
func (e *Exporter[D]) Encode(r calendar.Range[D]) ([]byte, error) {
	a := e.Adapter
	if a == nil {
		return nil, calendar.ErrMissingAdapter
	}
	if !a.IsValid(r.Begin) || !a.IsValid(r.End) {
		return nil, ErrEmptyRange
	}
	if a.CompareDate(r.Begin, r.End) > 0 {
		r.Begin, r.End = r.End, r.Begin
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	var clock dateadapter.Clock = dateadapter.RealClock{}
	if e.Clock != nil {
		clock = e.Clock
	}

	summary := e.Summary
	if summary == "" {
		summary = config.DefaultEventSummary
	}

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, a.ToISO8601(r.Begin), a.ToISO8601(r.End), config.ICalDomain))
	event.Props.SetText(config.PropSummary, summary)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(clock.Now().UTC())
	event.Props.Set(dtStamp)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(civil(a, r.Begin))
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(config.PropDTEnd)
	dtEnd.SetDate(civil(a, a.AddCalendarDays(r.End, 1)))
	event.Props.Set(dtEnd)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyBegin, a.ToISO8601(r.Begin),
		config.LogKeyEnd, a.ToISO8601(r.End),
		config.LogKeyBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// Write encodes r into w.
func (e *Exporter[D]) Write(w io.Writer, r calendar.Range[D]) error {
	data, err := e.Encode(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}

// civil returns midnight UTC of the calendar day of date.
func civil[D any](a dateadapter.DateAdapter[D], date D) time.Time {
	return time.Date(a.GetYear(date), time.Month(a.GetMonth(date)+1), a.GetDate(date), 0, 0, 0, 0, time.UTC)
}
