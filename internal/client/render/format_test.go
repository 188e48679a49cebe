package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatter_Local(t *testing.T) {
	f := NewFormatter("en", "EUR")

	tests := []struct {
		name string
		want string
		n    float64
		dec  int
	}{
		{name: "grouping", n: 3_616_000, dec: 0, want: "3,616,000"},
		{name: "fixed fraction", n: 280, dec: 2, want: "280.00"},
		{name: "half rounds up", n: 1234.5, dec: 0, want: "1,235"},
		{name: "fraction rounded", n: 98.456, dec: 2, want: "98.46"},
		{name: "zero", n: 0, dec: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Local(tt.n, tt.dec))
		})
	}
}

func TestFormatter_Foreign(t *testing.T) {
	assert.Equal(t, "€5,500.00", NewFormatter("en", "EUR").Foreign(5500))
	assert.Equal(t, "€1,900.00", NewFormatter("en", "").Foreign(1900))
	assert.Equal(t, "$1,045.50", NewFormatter("en", "usd").Foreign(1045.5))
}

func TestFormatter_CurrencyCode(t *testing.T) {
	assert.Equal(t, "EUR", NewFormatter("en", "").CurrencyCode())
	assert.Equal(t, "USD", NewFormatter("en", " usd ").CurrencyCode())
}

func TestFormatter_Percent(t *testing.T) {
	f := NewFormatter("en", "EUR")

	assert.Equal(t, "30", f.Percent(30))
	assert.Equal(t, "12.5", f.Percent(12.5))
}

func TestFormatter_T(t *testing.T) {
	assert.Equal(t, "No saved calculations.", NewFormatter("en", "").T("noHistory"))
	assert.Equal(t, "Aucun calcul enregistré.", NewFormatter("fr", "").T("noHistory"))
	assert.Equal(t, "✓ Yes (19%)", NewFormatter("en", "").T("tvaYes"))
	assert.Equal(t, "Total USD", NewFormatter("en", "").T("totalForeign", "USD"))
}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{lang: "en", want: language.English},
		{lang: "en-US", want: language.English},
		{lang: "es-DZ", want: language.Spanish},
		{lang: "ar", want: language.Arabic},
		{lang: "fr", want: language.French},
		{lang: "", want: language.French},
		{lang: "de", want: language.French},
		{lang: "xx", want: language.French},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchLanguage(tt.lang))
		})
	}
}

func TestTimestampFormatter(t *testing.T) {
	at := time.Date(2026, time.February, 17, 10, 5, 9, 0, time.UTC)

	assert.Equal(t, "17/02/2026 10:05:09", TimestampFormatter("fr")(at))
	assert.Equal(t, "2/17/2026, 10:05:09 AM", TimestampFormatter("en")(at))
	assert.Equal(t, "17/2/2026, 10:05:09", TimestampFormatter("es")(at))
	// Неизвестный язык: французский формат
	assert.Equal(t, "17/02/2026 10:05:09", TimestampFormatter("de")(at))
}

// Каждый ключ переведен на все языки
func TestTranslations_Complete(t *testing.T) {
	en := translations[language.English]
	for _, tag := range supported {
		dict, ok := translations[tag]
		if !assert.True(t, ok, tag.String()) {
			continue
		}
		for key := range en {
			assert.Contains(t, dict, key, "%s: missing %q", tag, key)
		}
	}
}
