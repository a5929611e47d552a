// Package language holds the two-valued language selection for the resume
// page and its persisted preference.
package language

import "log"

// Language is a supported resume language code.
type Language string

// Supported languages. English is the default.
const (
	English Language = "en"
	Korean  Language = "ko"
)

// Default is the language assumed before any preference is stored.
const Default = English

// Supported is the fixed ordered set Toggle cycles through.
var Supported = []Language{English, Korean}

// IsValid reports whether lang is in the supported set.
func IsValid(lang Language) bool {
	for _, l := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// Next returns the language following lang in the ordered set, wrapping at
// the end. Unknown inputs restart the cycle at the default.
func Next(lang Language) Language {
	for i, l := range Supported {
		if l == lang {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return Default
}

// Normalize returns lang when valid, otherwise the default with a warning.
// Malformed runtime inputs never propagate as errors.
func Normalize(lang Language) Language {
	if IsValid(lang) {
		return lang
	}
	log.Printf("[LANG] invalid language %q, falling back to %q", lang, Default)
	return Default
}
