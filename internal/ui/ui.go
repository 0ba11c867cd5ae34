package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
	"github.com/tartampluch/go-rangepicker/internal/locale"
	"github.com/tartampluch/go-rangepicker/internal/picker"
)

// Bounds restricts the dates the picker accepts. Nil fields are unbounded.
type Bounds struct {
	Min, Max *time.Time
	StartAt  *time.Time
	Filter   func(time.Time) bool
}

// RangepickerApp encapsulates the UI state, preferences and the picker.
type RangepickerApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Bundle      *locale.Bundle
	Clock       dateadapter.Clock // Injected clock for testability.
	Bounds      Bounds

	Adapter *dateadapter.TimeAdapter
	Picker  *picker.Datepicker[time.Time]
	Input   *picker.Input[time.Time]

	SupportedLanguages []string

	// Schedule defers calendar focus moves; FyneScheduler when nil.
	Schedule calendar.Scheduler

	entry          *DateEntry
	toggle         *widget.Button
	calendarBox    *fyne.Container
	calView        *CalendarView
	selectionLabel *widget.Label
	settingsWindow fyne.Window
}

// NewRangepickerApp constructs the application. A nil bundle is loaded from
// the embedded translations by SetupI18n.
func NewRangepickerApp(a fyne.App, bundle *locale.Bundle, b Bounds) *RangepickerApp {
	return &RangepickerApp{
		App:                a,
		Preferences:        a.Preferences(),
		Bundle:             bundle,
		Clock:              dateadapter.RealClock{},
		Bounds:             b,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run builds the main window and blocks in the UI loop.
func (app *RangepickerApp) Run() error {
	if err := app.Build(); err != nil {
		return err
	}
	app.Window.ShowAndRun()
	return nil
}

// Build creates the picker and the main window without showing it.
func (app *RangepickerApp) Build() error {
	app.SetupI18n()

	app.Adapter = dateadapter.NewTimeAdapter(app.Language(), app.providerOrNil())
	app.Adapter.Clock = app.Clock
	if err := app.buildPicker(); err != nil {
		return err
	}

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(config.AppName,
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), app.ShowSettingsWindow),
	)))
	app.Window.SetContent(app.buildContent())
	app.Window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	app.syncEntry()
	app.updateSelection()
	return nil
}

func (app *RangepickerApp) providerOrNil() locale.Provider {
	if app.Bundle == nil {
		return nil
	}
	return app.Bundle
}

// loadOptions assembles the picker options from the preferences.
func (app *RangepickerApp) loadOptions() picker.Options[time.Time] {
	opts := picker.DefaultOptions[time.Time]()
	log := slog.With(config.LogKeyComponent, config.CompUI)

	view, err := calendar.ParseView(app.Preferences.StringWithFallback(config.PrefStartView, config.DefaultStartView))
	if err != nil {
		log.Warn(config.ErrUnknownView, config.LogKeyError, err)
	}
	opts.StartView = view

	order, err := calendar.ParsePeriodOrder(app.Preferences.StringWithFallback(config.PrefOrderPeriod, config.DefaultOrderPeriod))
	if err != nil {
		log.Warn(config.ErrUnknownOrder, config.LogKeyError, err)
	}
	opts.OrderPeriodLabel = order

	opts.RangeMode = app.Preferences.Bool(config.PrefRangeMode)
	opts.RangeHoverEffect = app.Preferences.BoolWithFallback(config.PrefHoverEffect, config.DefaultHoverEffect)
	opts.CloseAfterSelection = app.Preferences.BoolWithFallback(config.PrefCloseAfter, config.DefaultCloseAfter)
	opts.SelectFirstDateOnClose = app.Preferences.Bool(config.PrefFirstOnClose)
	opts.RTL = app.Preferences.Bool(config.PrefRTL)
	opts.StartAt = app.Bounds.StartAt
	return opts
}

// buildPicker replaces the picker and its input. Text typed in the previous
// input is parsed again by the new one.
func (app *RangepickerApp) buildPicker() error {
	if app.Picker != nil {
		app.Picker.Close()
	}

	p, err := picker.New[time.Time](app.Adapter, app.loadOptions())
	if err != nil {
		return err
	}
	in, err := picker.NewInput(p)
	if err != nil {
		return err
	}
	in.SetMin(app.Bounds.Min)
	in.SetMax(app.Bounds.Max)
	in.SetFilter(app.Bounds.Filter)

	p.OnOpened = app.showCalendar
	p.OnClosed = app.hideCalendar
	in.OnDateChange = func(picker.Value[time.Time]) {
		app.syncEntry()
		app.updateSelection()
	}

	app.Picker, app.Input = p, in
	if app.entry != nil && app.entry.Text != "" {
		in.OnInput(app.entry.Text)
		app.entry.Validate()
	}
	return nil
}

func (app *RangepickerApp) buildContent() fyne.CanvasObject {
	app.entry = NewDateEntry()
	app.entry.Validator = func(s string) error {
		if app.Input.Text() != s {
			app.Input.OnInput(s)
		}
		return app.localizeError(app.Input.Validate())
	}
	app.entry.OnChanged = func(s string) {
		if app.Input.Text() != s {
			app.Input.OnInput(s)
		}
		app.updateSelection()
	}
	app.entry.OnSubmitted = func(string) {
		app.Input.Blur()
		app.Input.Submit()
	}
	app.entry.OnKey = func(k calendar.Key, alt bool) bool {
		ok, err := app.Input.HandleKey(k, alt)
		if err != nil {
			app.showError(err)
		}
		return ok
	}

	app.toggle = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), app.ToggleCalendar)
	today := widget.NewButton(app.GetMsg(config.TKeyBtnToday), app.SelectToday)
	reset := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnReset), theme.ContentClearIcon(), app.Reset)
	settings := widget.NewButtonWithIcon("", theme.SettingsIcon(), app.ShowSettingsWindow)

	app.calendarBox = container.NewStack()
	app.calendarBox.Hide()

	app.selectionLabel = widget.NewLabel("")
	app.selectionLabel.Wrapping = fyne.TextWrapWord

	row := container.NewBorder(nil, nil, nil, app.toggle, app.entry)
	actions := container.NewGridWithColumns(3, today, reset, settings)

	return container.NewPadded(container.NewBorder(
		container.NewVBox(row, actions),
		app.selectionLabel,
		nil, nil,
		app.calendarBox,
	))
}

// ToggleCalendar opens the picker, or closes it when open.
func (app *RangepickerApp) ToggleCalendar() {
	if app.Picker.Opened() {
		app.Picker.Close()
		return
	}
	if _, err := app.Picker.Open(); err != nil {
		app.showError(err)
	}
}

func (app *RangepickerApp) showCalendar(cal *calendar.Calendar[time.Time]) {
	app.calView = NewCalendarView(cal, app.Schedule)
	app.calendarBox.Objects = []fyne.CanvasObject{app.calView}
	app.calendarBox.Show()
	app.calendarBox.Refresh()

	schedule := app.Schedule
	if schedule == nil {
		schedule = FyneScheduler
	}
	schedule(app.calView.FocusActiveCell)
}

func (app *RangepickerApp) hideCalendar() {
	app.calView = nil
	app.calendarBox.Objects = nil
	app.calendarBox.Hide()
	app.calendarBox.Refresh()
	if app.Window != nil && app.entry != nil {
		app.Window.Canvas().Focus(app.entry)
	}
}

// SelectToday commits today, as a one-day range in range mode.
func (app *RangepickerApp) SelectToday() {
	today := app.Adapter.Today()
	if app.Picker.RangeMode() {
		app.Picker.SelectRange(&calendar.Range[time.Time]{Begin: today, End: today})
	} else {
		app.Picker.Select(&today)
	}
	if cal := app.Picker.Calendar(); cal != nil {
		cal.SetActiveDate(today)
	}
}

// Reset clears the selection.
func (app *RangepickerApp) Reset() {
	if cal := app.Picker.Calendar(); cal != nil {
		cal.Reset()
	} else if app.Picker.RangeMode() {
		app.Picker.SelectRange(nil)
	} else {
		app.Picker.Select(nil)
	}
	app.syncEntry()
	app.updateSelection()
}

// syncEntry copies the input text into the entry.
func (app *RangepickerApp) syncEntry() {
	if app.entry == nil || app.entry.Text == app.Input.Text() {
		return
	}
	app.entry.SetText(app.Input.Text())
}

func (app *RangepickerApp) updateSelection() {
	if app.selectionLabel == nil {
		return
	}
	app.selectionLabel.SetText(app.selectionText())
}

// selectionText describes the committed value with long month names.
func (app *RangepickerApp) selectionText() string {
	v := app.Picker.Value()
	label := func(d time.Time) string {
		s, err := app.Adapter.Format(d, dateadapter.DateA11yLabel)
		if err != nil {
			return app.Adapter.ToISO8601(d)
		}
		return s
	}

	switch {
	case app.Picker.RangeMode() && v.Complete():
		return app.GetMsg(config.TKeyLblSelection) + ": " + label(*v.Begin) + config.PeriodSeparator + label(*v.End)
	case !app.Picker.RangeMode() && v.Date != nil:
		return app.GetMsg(config.TKeyLblSelection) + ": " + label(*v.Date)
	}
	return app.GetMsg(config.TKeyLblNoSelection)
}

func (app *RangepickerApp) showError(err error) {
	slog.Error(config.ErrAppFailed, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
	if app.Window != nil {
		dialog.ShowError(err, app.Window)
	}
}
