// Package locale resolves the request locale and translates user-facing
// messages. Locales form a closed enum; negotiation always lands on a
// supported value, so lookups never fall through at runtime.
package locale

import "golang.org/x/text/language"

// Locale is a supported UI locale tag.
type Locale string

const (
	EnGB Locale = "en-GB"
	FrFR Locale = "fr-FR"
)

// supported lists the allow-list in matcher priority order; the first entry
// is the hard default.
var supported = []Locale{EnGB, FrFR}

var matcher = language.NewMatcher([]language.Tag{
	language.MustParse(string(EnGB)),
	language.MustParse(string(FrFR)),
})

// Default is the locale used when nothing else resolves.
func Default() Locale {
	return supported[0]
}

// Parse validates a raw cookie value against the allow-list.
func Parse(s string) (Locale, bool) {
	for _, l := range supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Negotiate picks the best supported locale for an Accept-Language header.
// An empty or unparseable header yields the default.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default()
	}
	_, idx := language.MatchStrings(matcher, acceptLanguage)
	if idx < 0 || idx >= len(supported) {
		return Default()
	}
	return supported[idx]
}
