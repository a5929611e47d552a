package language

import (
	"log"

	"github.com/jonathan/resume-site/internal/storage"
)

// PreferenceKey is the storage key the selected language persists under.
const PreferenceKey = "resume-lang"

// Preference is the persisted language selection. Reads degrade to the
// default language on storage failure or invalid stored values; the page
// must render regardless.
type Preference struct {
	store storage.Store
}

// NewPreference creates a Preference backed by store.
func NewPreference(store storage.Store) *Preference {
	return &Preference{store: store}
}

// Current returns the persisted language, falling back to the default when
// no valid preference is stored.
func (p *Preference) Current() Language {
	v, ok, err := p.store.Get(PreferenceKey)
	if err != nil {
		log.Printf("[LANG] failed to read language preference: %v", err)
		return Default
	}
	if !ok {
		return Default
	}
	lang := Language(v)
	if !IsValid(lang) {
		log.Printf("[LANG] ignoring invalid stored language %q", v)
		return Default
	}
	return lang
}

// Set persists lang, normalizing invalid values to the default with a
// warning rather than failing.
func (p *Preference) Set(lang Language) (Language, error) {
	lang = Normalize(lang)
	if err := p.store.Set(PreferenceKey, string(lang)); err != nil {
		return lang, err
	}
	return lang, nil
}

// Toggle cycles to the next supported language and persists it. It returns
// the previous and new values so callers can report the transition.
func (p *Preference) Toggle() (previous, next Language, err error) {
	previous = p.Current()
	next = Next(previous)
	if err := p.store.Set(PreferenceKey, string(next)); err != nil {
		return previous, next, err
	}
	return previous, next, nil
}
