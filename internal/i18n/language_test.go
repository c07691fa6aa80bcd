package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Language
		wantOK bool
	}{
		{"en", English, true},
		{"ru", Russian, true},
		{" RU ", Russian, true},
		{"de", "", false},
		{"", "", false},
		{"en-US", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNormalize_UnsupportedFallsBackToRussian(t *testing.T) {
	for _, in := range []string{"", "de", "xx", "english", "null"} {
		assert.Equal(t, Russian, Normalize(in), in)
	}
	assert.Equal(t, English, Normalize("en"))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		saved   string
		locales []string
		want    Language
	}{
		{name: "saved wins", saved: "en", locales: []string{"ru-RU"}, want: English},
		{name: "unsupported saved ignored", saved: "fr", locales: []string{"en-GB"}, want: English},
		{name: "first supported locale", locales: []string{"de-DE", "ru-RU", "en-US"}, want: Russian},
		{name: "posix locale", locales: []string{"en_US.UTF-8"}, want: English},
		{name: "posix with modifier", locales: []string{"ru_RU@euro"}, want: Russian},
		{name: "C locale skipped", locales: []string{"C", "POSIX"}, want: Russian},
		{name: "garbage skipped", locales: []string{"", "!!", "en"}, want: English},
		{name: "nothing usable", locales: []string{"de", "fr-FR"}, want: Default},
		{name: "no input", want: Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.saved, tt.locales))
		})
	}
}

func TestLanguage_Valid(t *testing.T) {
	assert.True(t, English.Valid())
	assert.False(t, Language("de").Valid())
}
