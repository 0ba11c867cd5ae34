package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-rangepicker/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Bundle is a Provider backed by the go-i18n message files embedded in the
// binary. Missing messages fall back to Static.
type Bundle struct {
	bundle    *i18n.Bundle
	languages []string
	fallback  Static

	mu         sync.Mutex
	localizers map[string]*i18n.Localizer
}

// NewBundle loads every embedded active.<lang>.json file.
func NewBundle() (*Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleFileExtension, json.Unmarshal)

	entries, err := localeFS.ReadDir(config.LocaleDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocaleFilePrefix) || !strings.HasSuffix(name, config.LocaleFileSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		lang := strings.TrimSuffix(strings.TrimPrefix(name, config.LocaleFilePrefix), config.LocaleFileSuffix)
		if lang == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join(config.LocaleDir, name)); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		detected = append(detected, lang)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
			config.LogKeyFile, name,
		)
	}

	return &Bundle{
		bundle:     bundle,
		languages:  detected,
		localizers: make(map[string]*i18n.Localizer),
	}, nil
}

// Languages returns the languages found in the embedded message files.
func (b *Bundle) Languages() []string {
	return append([]string(nil), b.languages...)
}

// MonthNames returns the 12 month names of the tag.
func (b *Bundle) MonthNames(tag string, style Style) []string {
	if names, ok := b.series(tag, config.TKeyMonthFmt, style, config.MonthsPerYear); ok {
		return names
	}
	return b.fallback.MonthNames(tag, style)
}

// DayOfWeekNames returns the 7 weekday names of the tag, Sunday first.
func (b *Bundle) DayOfWeekNames(tag string, style Style) []string {
	if names, ok := b.series(tag, config.TKeyDayFmt, style, config.WeekdayCount); ok {
		return names
	}
	return b.fallback.DayOfWeekNames(tag, style)
}

// FirstDayOfWeek resolves the tag with x/text so that variants such as
// "de_CH" or "sr-Cyrl-RS" reach the static table entries.
func (b *Bundle) FirstDayOfWeek(tag string) int {
	t, err := language.Parse(tag)
	if err != nil {
		return b.fallback.FirstDayOfWeek(tag)
	}

	base, _ := t.Base()
	keys := []string{strings.ToLower(t.String())}
	if script, conf := t.Script(); conf == language.Exact {
		keys = append(keys, strings.ToLower(base.String()+config.LocaleSeparator+script.String()))
	}
	if region, conf := t.Region(); conf == language.Exact {
		keys = append(keys, strings.ToLower(base.String()+config.LocaleSeparator+region.String()))
	}
	keys = append(keys, base.String())

	if d, ok := lookupFirstDay(keys...); ok {
		return d
	}
	return config.DefaultFirstWeekday
}

// Label returns the translated intl label for key.
func (b *Bundle) Label(tag, key string) string {
	if msg, ok := b.message(tag, key); ok {
		return msg
	}
	return b.fallback.Label(tag, key)
}

// Upper upper-cases s with the casing rules of the tag.
func (b *Bundle) Upper(tag, s string) string {
	return upper(tag, s)
}

func (b *Bundle) series(tag, format string, style Style, n int) ([]string, bool) {
	names := make([]string, n)
	for i := range names {
		msg, ok := b.message(tag, fmt.Sprintf(format, style, i))
		if !ok {
			return nil, false
		}
		names[i] = msg
	}
	return names, true
}

func (b *Bundle) message(tag, id string) (string, bool) {
	msg, err := b.localizer(tag).Localize(&i18n.LocalizeConfig{MessageID: id})
	if msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, tag,
			config.LogKeyKey, id,
			config.LogKeyError, err,
		)
		return "", false
	}
	return msg, true
}

func (b *Bundle) localizer(tag string) *i18n.Localizer {
	b.mu.Lock()
	defer b.mu.Unlock()
	if l, ok := b.localizers[tag]; ok {
		return l
	}
	l := i18n.NewLocalizer(b.bundle, tag)
	b.localizers[tag] = l
	return l
}
