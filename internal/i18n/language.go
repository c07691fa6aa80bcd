// Package i18n holds the supported UI languages, preferred-language
// detection and the label catalog rendered by every display surface.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"

	// Default is used when no saved or system preference is usable.
	Default = Russian
)

// Supported lists the UI languages in menu order.
func Supported() []Language {
	return []Language{English, Russian}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case English, Russian:
		return true
	}
	return false
}

func (l Language) String() string {
	return string(l)
}

// Parse accepts a stored language code ("en", " RU ") and reports whether
// it names a supported language.
func Parse(s string) (Language, bool) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", false
	}
	return l, true
}

// Normalize coerces s to a supported language, falling back to Default.
func Normalize(s string) Language {
	if l, ok := Parse(s); ok {
		return l
	}
	return Default
}

// Detect picks the UI language: the saved preference when it is
// supported, else the first locale whose primary subtag is supported, else
// Default. Locales may be BCP 47 ("en-US") or POSIX ("ru_RU.UTF-8").
func Detect(saved string, locales []string) Language {
	if l, ok := Parse(saved); ok {
		return l
	}
	for _, loc := range locales {
		if l, ok := primarySubtag(loc); ok {
			return l
		}
	}
	return Default
}

func primarySubtag(locale string) (Language, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" {
		return "", false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return "", false
	}
	return Parse(base.String())
}
