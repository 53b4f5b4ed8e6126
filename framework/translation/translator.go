// Package translation provides the translator the bridge binds as
// "translator": per-locale key/value lines loaded from YAML or JSON files,
// :name placeholder replacement, and pipe-separated plural forms — the
// Laravel trans()/trans_choice() surface.
package translation

import (
	"strconv"
	"strings"
	"sync"
)

// Translator resolves translation keys for an active locale with a fallback.
type Translator struct {
	mu       sync.RWMutex
	loader   *Loader
	locale   string
	fallback string
	loaded   map[string]map[string]string // locale → lines
}

// NewTranslator creates a translator. fallback may equal locale.
func NewTranslator(loader *Loader, locale, fallback string) *Translator {
	return &Translator{
		loader:   loader,
		locale:   locale,
		fallback: fallback,
		loaded:   make(map[string]map[string]string),
	}
}

// Locale returns the active locale.
func (t *Translator) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// SetLocale switches the active locale.
func (t *Translator) SetLocale(locale string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locale = locale
}

// T translates a key, applying :name placeholder replacements.
// Unknown keys return the key itself, like Laravel's trans().
//
//	t.T("messages.welcome", map[string]string{"name": "Eva"})
func (t *Translator) T(key string, replacements ...map[string]string) string {
	line, ok := t.line(key)
	if !ok {
		return key
	}
	return replacePlaceholders(line, replacements...)
}

// Choice translates a pluralized key: the line holds pipe-separated forms
// ("one apple|:count apples"); n picks the form (two forms: singular for
// n == 1, plural otherwise; one form: always). :count is replaced with n.
func (t *Translator) Choice(key string, n int, replacements ...map[string]string) string {
	line, ok := t.line(key)
	if !ok {
		return key
	}

	forms := strings.Split(line, "|")
	form := forms[0]
	if len(forms) > 1 && n != 1 {
		form = forms[len(forms)-1]
	}

	form = strings.ReplaceAll(form, ":count", strconv.Itoa(n))
	return replacePlaceholders(form, replacements...)
}

// Has reports whether a key translates in the active or fallback locale.
func (t *Translator) Has(key string) bool {
	_, ok := t.line(key)
	return ok
}

// line finds a key in the active locale, then the fallback.
func (t *Translator) line(key string) (string, bool) {
	t.mu.RLock()
	locale, fallback := t.locale, t.fallback
	t.mu.RUnlock()

	if line, ok := t.lines(locale)[key]; ok {
		return line, true
	}
	if fallback != "" && fallback != locale {
		if line, ok := t.lines(fallback)[key]; ok {
			return line, true
		}
	}
	return "", false
}

// lines returns a locale's lines, loading and caching them on first use.
// Load failures degrade to an empty line set.
func (t *Translator) lines(locale string) map[string]string {
	t.mu.RLock()
	lines, ok := t.loaded[locale]
	t.mu.RUnlock()
	if ok {
		return lines
	}

	loaded, err := t.loader.Load(locale)
	if err != nil {
		loaded = map[string]string{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if prior, ok := t.loaded[locale]; ok {
		return prior
	}
	t.loaded[locale] = loaded
	return loaded
}

// replacePlaceholders substitutes :name markers.
func replacePlaceholders(line string, replacements ...map[string]string) string {
	for _, set := range replacements {
		for name, value := range set {
			line = strings.ReplaceAll(line, ":"+name, value)
		}
	}
	return line
}
