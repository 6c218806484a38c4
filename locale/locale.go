// Package locale resolves the active locale for a request path. Every
// user-facing page path is prefixed with one of the supported locale codes;
// paths without a prefix resolve to the default locale and are candidates
// for a canonicalising redirect.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported language code.
type Locale string

const (
	English    Locale = "en"
	French     Locale = "fr"
	Portuguese Locale = "pt"

	// Default is the locale assumed when a path carries no prefix.
	Default = English
)

// Supported lists every locale the application serves, default first.
var Supported = []Locale{English, French, Portuguese}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Portuguese,
})

// IsSupported reports whether code is one of the supported locale codes.
func IsSupported(code string) bool {
	for _, l := range Supported {
		if string(l) == code {
			return true
		}
	}
	return false
}

// Parse returns the Locale for code, or Default if code is not supported.
func Parse(code string) Locale {
	if IsSupported(code) {
		return Locale(code)
	}
	return Default
}

// Resolve splits a request path into its locale and the remaining path.
// "/fr/profile" resolves to (French, "/profile", true); "/profile" resolves
// to (Default, "/profile", false). A bare "/fr" strips to "/". Resolve is a
// pure function of the path string.
func Resolve(path string) (Locale, string, bool) {
	if path == "" {
		path = "/"
	}
	trimmed := strings.TrimPrefix(path, "/")
	code, rest, _ := strings.Cut(trimmed, "/")
	if !IsSupported(code) {
		return Default, path, false
	}
	if rest == "" {
		return Locale(code), "/", true
	}
	return Locale(code), "/" + rest, true
}

// Prefix returns path with the locale prefix applied. The root path maps to
// "/{locale}" so canonical URLs are always locale-qualified.
func Prefix(l Locale, path string) string {
	if path == "" || path == "/" {
		return "/" + string(l)
	}
	return "/" + string(l) + path
}

// FromAcceptLanguage picks the closest supported locale for an
// Accept-Language header value, falling back to Default.
func FromAcceptLanguage(header string) Locale {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}
