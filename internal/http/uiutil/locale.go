package uiutil

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam selects a language for the request and persists it.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "lang"
)

// Locale is a supported presentation language.
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
)

var (
	supportedTags = []language.Tag{language.Russian, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// ParseLocale maps a BCP 47 value to a supported locale.
func ParseLocale(value string) (Locale, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ru":
		return LocaleRU, true
	case "en":
		return LocaleEN, true
	default:
		return "", false
	}
}

// ResolveLocale picks the locale for r from the lang query parameter, then the
// lang cookie, then Accept-Language. The bool reports whether the query
// parameter chose it and should be persisted with SetLocaleCookie.
func ResolveLocale(r *http.Request, fallback Locale) (Locale, bool) {
	if _, ok := months[fallback]; !ok {
		fallback = LocaleRU
	}
	if r == nil {
		return fallback, false
	}

	if loc, ok := ParseLocale(r.URL.Query().Get(LangParam)); ok {
		return loc, true
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if loc, ok := ParseLocale(cookie.Value); ok {
			return loc, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if _, idx, conf := matcher.Match(tags...); conf != language.No {
				return Locale(supportedTags[idx].String()), false
			}
		}
	}

	return fallback, false
}

// SetLocaleCookie persists the chosen locale for a year.
func SetLocaleCookie(w http.ResponseWriter, loc Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(loc),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
