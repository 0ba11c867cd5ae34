package ui

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/locale"
	"github.com/tartampluch/go-rangepicker/internal/picker"
)

// SetupI18n loads the embedded translations and detects available languages.
// Without a bundle the application falls back to the static English tables.
func (app *RangepickerApp) SetupI18n() {
	if app.Bundle == nil {
		b, err := locale.NewBundle()
		if err != nil {
			slog.Error(config.ErrLocalesAccess,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyError, err,
			)
		} else {
			app.Bundle = b
		}
	}
	if app.Bundle != nil {
		app.SupportedLanguages = app.Bundle.Languages()
		slices.Sort(app.SupportedLanguages)
	}
	app.UpdateLocalizer()
}

// Language returns the language preference.
func (app *RangepickerApp) Language() string {
	return app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
}

// UpdateLocalizer points the date adapter at the language preference and
// redraws what depends on it.
func (app *RangepickerApp) UpdateLocalizer() {
	lang := app.Language()
	if app.Adapter == nil {
		return
	}
	if app.Adapter.Locale() == lang {
		return
	}

	slog.Debug(config.MsgLocaleLoaded,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLang, lang,
	)
	app.Adapter.SetLocale(lang)
	if app.Input != nil {
		app.Input.LocaleChanged()
	}
	if app.Picker != nil && app.Picker.Calendar() != nil {
		app.Picker.Calendar().Refresh()
	}
}

// GetMsg is a helper to translate a key safely.
func (app *RangepickerApp) GetMsg(key string) string {
	var p locale.Provider = locale.Static{}
	if app.Bundle != nil {
		p = app.Bundle
	}
	msg := p.Label(app.Language(), key)
	if msg == key {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
		)
	}
	return msg
}

// localizeError replaces the validation errors of the input with a
// translated message. The first failing rule wins.
func (app *RangepickerApp) localizeError(err error) error {
	if err == nil {
		return nil
	}

	key := config.TKeyErrParse
	switch {
	case errors.As(err, new(picker.ParseError)):
	case errors.As(err, new(picker.MinError[time.Time])):
		key = config.TKeyErrMin
	case errors.As(err, new(picker.MaxError[time.Time])):
		key = config.TKeyErrMax
	case errors.Is(err, picker.FilterError{}):
		key = config.TKeyErrFilter
	case errors.Is(err, picker.RangeError{}):
		key = config.TKeyErrRange
	}
	return errors.New(app.GetMsg(key))
}
