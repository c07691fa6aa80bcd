package i18n

import "fmt"

// Key names one translatable label.
type Key string

// Catalog maps each language to its label set.
type Catalog map[Language]map[Key]string

// DefaultCatalog returns the built-in English/Russian labels.
func DefaultCatalog() Catalog {
	return Catalog{
		English: englishMessages,
		Russian: russianMessages,
	}
}

// T returns the label for key in lang. Missing labels fall back to
// English, then to the key itself so a gap is visible instead of blank.
func (c Catalog) T(lang Language, key Key) string {
	if msg, ok := c[lang][key]; ok {
		return msg
	}
	if msg, ok := c[English][key]; ok {
		return msg
	}
	return string(key)
}

// Tf formats the label for key with args.
func (c Catalog) Tf(lang Language, key Key, args ...any) string {
	return fmt.Sprintf(c.T(lang, key), args...)
}
