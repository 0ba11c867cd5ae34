package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/config"
)

// DateEntry is an Entry that only accepts the characters of a date or a
// date range, and reports Alt+Down as a request to open the calendar.
type DateEntry struct {
	widget.Entry

	// OnKey receives navigation keys with the state of the Alt modifier. It
	// reports whether the key was consumed.
	OnKey func(k calendar.Key, alt bool) bool

	alt bool
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops characters that cannot appear in a date. Pasted text is
// not filtered; the Validator reports it instead.
func (e *DateEntry) TypedRune(r rune) {
	if strings.ContainsRune(config.DateEntryRunes, r) {
		e.Entry.TypedRune(r)
	}
}

func (e *DateEntry) TypedKey(ev *fyne.KeyEvent) {
	if k, ok := KeyFor(ev.Name); ok && e.OnKey != nil && k == calendar.KeyDown {
		if e.OnKey(k, e.alt) {
			return
		}
	}
	e.Entry.TypedKey(ev)
}

func (e *DateEntry) KeyDown(ev *fyne.KeyEvent) {
	if isAlt(ev.Name) {
		e.alt = true
	}
	e.Entry.KeyDown(ev)
}

func (e *DateEntry) KeyUp(ev *fyne.KeyEvent) {
	if isAlt(ev.Name) {
		e.alt = false
	}
	e.Entry.KeyUp(ev)
}

func (e *DateEntry) FocusLost() {
	e.alt = false
	e.Entry.FocusLost()
}
