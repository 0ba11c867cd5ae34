package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-rangepicker/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect   *widget.Select
	viewSelect   *widget.Select
	orderSelect  *widget.Select
	checkRange   *widget.Check
	checkHover   *widget.Check
	checkClose   *widget.Check
	checkFirst   *widget.Check
	checkRTL     *widget.Check
	rangeOptions *fyne.Container
}

// ShowSettingsWindow displays the preferences of the picker.
func (app *RangepickerApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblStartView), sw.viewSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblOrderPeriod), sw.orderSelect),
	)

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.saveSettings(sw)
		w.Close()
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footer := widget.NewLabel(config.AppName + " " + config.Version)
	footer.Alignment = fyne.TextAlignCenter
	footer.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		form,
		sw.checkRange,
		sw.rangeOptions,
		sw.checkClose,
		sw.checkRTL,
		container.NewGridWithColumns(2, btnCancel, btnSave),
		footer,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets builds the widgets from the current preferences.
func (app *RangepickerApp) newSettingsWidgets() *settingsWidgets {
	p := app.Preferences
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Language())

	sw.viewSelect = widget.NewSelect([]string{config.ViewNameMonth, config.ViewNameYear, config.ViewNameMultiYear}, nil)
	sw.viewSelect.SetSelected(p.StringWithFallback(config.PrefStartView, config.DefaultStartView))

	sw.orderSelect = widget.NewSelect([]string{config.OrderPeriodMultiYear, config.OrderPeriodMonth}, nil)
	sw.orderSelect.SetSelected(p.StringWithFallback(config.PrefOrderPeriod, config.DefaultOrderPeriod))

	sw.checkHover = widget.NewCheck(app.GetMsg(config.TKeyLblHoverEffect), nil)
	sw.checkHover.SetChecked(p.BoolWithFallback(config.PrefHoverEffect, config.DefaultHoverEffect))
	sw.checkFirst = widget.NewCheck(app.GetMsg(config.TKeyLblFirstOnClose), nil)
	sw.checkFirst.SetChecked(p.Bool(config.PrefFirstOnClose))
	sw.rangeOptions = container.NewVBox(sw.checkHover, sw.checkFirst)

	// Range-only options are hidden in single mode.
	sw.checkRange = widget.NewCheck(app.GetMsg(config.TKeyLblRangeMode), func(on bool) {
		if on {
			sw.rangeOptions.Show()
		} else {
			sw.rangeOptions.Hide()
		}
	})
	sw.checkRange.SetChecked(p.Bool(config.PrefRangeMode))
	if !sw.checkRange.Checked {
		sw.rangeOptions.Hide()
	}

	sw.checkClose = widget.NewCheck(app.GetMsg(config.TKeyLblCloseAfter), nil)
	sw.checkClose.SetChecked(p.BoolWithFallback(config.PrefCloseAfter, config.DefaultCloseAfter))
	sw.checkRTL = widget.NewCheck(app.GetMsg(config.TKeyLblRTL), nil)
	sw.checkRTL.SetChecked(p.Bool(config.PrefRTL))
	return sw
}

// saveSettings persists the preferences and rebuilds the picker with them.
func (app *RangepickerApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgPrefsSaved, config.LogKeyComponent, config.CompUISet)

	p := app.Preferences
	if sw.langSelect.Selected != "" {
		p.SetString(config.PrefLanguage, sw.langSelect.Selected)
	}
	if sw.viewSelect.Selected != "" {
		p.SetString(config.PrefStartView, sw.viewSelect.Selected)
	}
	if sw.orderSelect.Selected != "" {
		p.SetString(config.PrefOrderPeriod, sw.orderSelect.Selected)
	}
	p.SetBool(config.PrefRangeMode, sw.checkRange.Checked)
	p.SetBool(config.PrefHoverEffect, sw.checkHover.Checked)
	p.SetBool(config.PrefFirstOnClose, sw.checkFirst.Checked)
	p.SetBool(config.PrefCloseAfter, sw.checkClose.Checked)
	p.SetBool(config.PrefRTL, sw.checkRTL.Checked)

	app.UpdateLocalizer()
	if err := app.buildPicker(); err != nil {
		app.showError(err)
		return
	}
	app.syncEntry()
	app.updateSelection()
}
