package locale_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/locale"
)

func TestFirstDayOfWeek_Table(t *testing.T) {
	tests := []struct {
		tag  string
		want int
	}{
		{"en", 0},
		{"en-US", 0},
		{"en-GB", 1},
		{"fr", 1},
		{"fr-CA", 1}, // falls back to the language prefix
		{"ar", 6},
		{"ar-TN", 1},
		{"fa", 6},
		{"pt", 1},
		{"pt-BR", 0},
		{"tzm-latn", 6},
		{"ja", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.FirstDayOfWeek(tt.tag))
			assert.Equal(t, tt.want, locale.Static{}.FirstDayOfWeek(tt.tag))
		})
	}
}

func TestStatic_Names(t *testing.T) {
	s := locale.Static{}

	long := s.MonthNames("en", locale.Long)
	require.Len(t, long, 12)
	assert.Equal(t, "January", long[0])
	assert.Equal(t, "December", long[11])
	assert.Equal(t, "Mar", s.MonthNames("en", locale.Short)[2])
	assert.Equal(t, "S", s.DayOfWeekNames("en", locale.Narrow)[0])
	assert.Len(t, s.DayOfWeekNames("en", locale.Long), 7)

	// Callers may not corrupt the shared tables.
	long[0] = "mutated"
	assert.Equal(t, "January", s.MonthNames("en", locale.Long)[0])
}

func TestStatic_LabelsAndUpper(t *testing.T) {
	s := locale.Static{}
	assert.Equal(t, "Previous 20 years", s.Label("en", config.TKeyPrevMultiYearLabel))
	assert.Equal(t, "Choose date", s.Label("fr", config.TKeySwitchToMonthView))
	assert.Equal(t, "unknown_key", s.Label("en", "unknown_key"))
	assert.Equal(t, "MAR", s.Upper("en", "Mar"))
	assert.Equal(t, "İ", s.Upper("tr", "i"), "Turkish casing rules apply")
}

func TestBundle_LoadsEmbeddedLocales(t *testing.T) {
	b, err := locale.NewBundle()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"de", "en", "fr"}, b.Languages())

	assert.Equal(t, "janvier", b.MonthNames("fr", locale.Long)[0])
	assert.Equal(t, "Dez.", b.MonthNames("de", locale.Short)[11])
	assert.Equal(t, "dimanche", b.DayOfWeekNames("fr-CH", locale.Long)[0])
	assert.Equal(t, "Mois précédent", b.Label("fr", config.TKeyPrevMonthLabel))
	assert.Equal(t, "Next month", b.Label("en", config.TKeyNextMonthLabel))

	// Unknown languages use the default language of the bundle.
	assert.Equal(t, "January", b.MonthNames("ja", locale.Long)[0])
}

func TestBundle_FirstDayOfWeek(t *testing.T) {
	b, err := locale.NewBundle()
	require.NoError(t, err)

	tests := []struct {
		tag  string
		want int
	}{
		{"de_CH", 1},
		{"en-GB", 1},
		{"en-US", 0},
		{"sr-Cyrl-RS", 1},
		{"pt-BR", 0},
		{"ar-MA", 6},
		{"not a tag!", 0},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, b.FirstDayOfWeek(tt.tag))
		})
	}
}

// TestLocales_Integrity ensures every locale file carries every key the English file has.
func TestLocales_Integrity(t *testing.T) {
	load := func(lang string) map[string]string {
		raw, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
		require.NoError(t, err)
		var m map[string]string
		require.NoError(t, json.Unmarshal(raw, &m))
		return m
	}

	reference := load(config.DefaultLanguage)
	for _, style := range []locale.Style{locale.Long, locale.Short, locale.Narrow} {
		for i := 0; i < 12; i++ {
			assert.Contains(t, reference, fmt.Sprintf(config.TKeyMonthFmt, style, i))
		}
		for i := 0; i < 7; i++ {
			assert.Contains(t, reference, fmt.Sprintf(config.TKeyDayFmt, style, i))
		}
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			messages := load(lang)
			for key := range reference {
				assert.NotEmpty(t, messages[key], "missing key %s", key)
			}
		})
	}
}
