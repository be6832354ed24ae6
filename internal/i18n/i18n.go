// Package i18n provides translated UI and dialogue strings.
//
// Message IDs are the English strings. A missing translation falls back to
// the ID, so English works without any catalog entries.
package i18n

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// Supported locales, in menu order.
var Supported = []string{"en", "ko"}

// Default is the locale used when none is configured.
const Default = "en"

// untranslated formats IDs for a nil catalog.
var untranslated = gotext.NewPo()

// Catalog translates message IDs for one locale.
type Catalog struct {
	locale string
	po     *gotext.Po
}

// New loads the catalog for locale.
func New(locale string) (*Catalog, error) {
	data, err := locales.ReadFile("locales/" + locale + ".po")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q: %w", locale, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{locale: locale, po: po}, nil
}

// MustNew loads an embedded catalog, panicking on error.
func MustNew(locale string) *Catalog {
	c, err := New(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locale returns the catalog's locale code.
func (c *Catalog) Locale() string {
	return c.locale
}

// Get translates id and formats it with vars.
func (c *Catalog) Get(id string, vars ...any) string {
	if c == nil || c.po == nil {
		return untranslated.Get(id, vars...)
	}
	return c.po.Get(id, vars...)
}

// Next returns the catalog for the locale after this one in Supported.
func (c *Catalog) Next() *Catalog {
	for i, l := range Supported {
		if l == c.locale {
			return MustNew(Supported[(i+1)%len(Supported)])
		}
	}
	return MustNew(Default)
}

// LanguageName returns the translated name of a locale.
func (c *Catalog) LanguageName() string {
	switch c.locale {
	case "ko":
		return c.Get("Korean")
	default:
		return c.Get("English")
	}
}
