package datefmt

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	defaultLocaleQueryParam = "lang"
	defaultLocaleCookie     = "locale"
	localeCookieMaxAge      = 30 * 24 * time.Hour
)

type middlewareConfig struct {
	supported  []string
	queryParam string
	cookieName string
	persist    bool
}

// MiddlewareOption configures LocaleMiddleware
type MiddlewareOption func(*middlewareConfig)

// WithSupportedLocales restricts negotiation to locales; the first one is
// used when nothing matches.
func WithSupportedLocales(locales ...string) MiddlewareOption {
	return func(c *middlewareConfig) {
		for _, locale := range locales {
			if locale = strings.TrimSpace(locale); locale != "" {
				c.supported = append(c.supported, locale)
			}
		}
	}
}

// WithLocaleQueryParam sets the query parameter read first, "lang" by default.
// An empty name disables it.
func WithLocaleQueryParam(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.queryParam = name
	}
}

// WithLocaleCookie sets the cookie read after the query parameter. An empty
// name disables it.
func WithLocaleCookie(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.cookieName = name
	}
}

// WithPersistLocale stores a locale chosen through the query parameter in
// the locale cookie.
func WithPersistLocale() MiddlewareOption {
	return func(c *middlewareConfig) {
		c.persist = true
	}
}

// LocaleMiddleware negotiates the request locale from the query parameter,
// the locale cookie and Accept-Language, in that order, and stores it in
// the request context for Formatter.WithContext and ContextLocaleProvider.
func LocaleMiddleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		queryParam: defaultLocaleQueryParam,
		cookieName: defaultLocaleCookie,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	negotiator := newLocaleNegotiator(cfg.supported)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var fromQuery string
			if cfg.queryParam != "" {
				fromQuery = strings.TrimSpace(r.URL.Query().Get(cfg.queryParam))
			}

			var fromCookie string
			if cfg.cookieName != "" {
				if c, err := r.Cookie(cfg.cookieName); err == nil {
					fromCookie = strings.TrimSpace(c.Value)
				}
			}

			locale := negotiator.negotiate(fromQuery, fromCookie, r.Header.Get("Accept-Language"))
			if locale == "" {
				next.ServeHTTP(w, r)
				return
			}

			if cfg.persist && fromQuery != "" && cfg.cookieName != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.cookieName,
					Value:    locale,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(localeCookieMaxAge),
				})
			}

			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), locale)))
		})
	}
}

type localeNegotiator struct {
	supported []string
	matcher   language.Matcher
}

func newLocaleNegotiator(supported []string) *localeNegotiator {
	n := &localeNegotiator{}
	if len(supported) == 0 {
		return n
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, locale := range supported {
		tag, err := parseLocale(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		n.supported = append(n.supported, locale)
	}
	if len(tags) > 0 {
		n.matcher = language.NewMatcher(tags)
	}
	return n
}

// negotiate returns the supported locale closest to the first usable
// candidate. Without a supported list the first well-formed candidate wins.
func (n *localeNegotiator) negotiate(query, cookie, acceptLanguage string) string {
	for _, candidate := range []string{query, cookie} {
		if candidate == "" {
			continue
		}
		tag, err := parseLocale(candidate)
		if err != nil {
			continue
		}
		if n.matcher == nil {
			return candidate
		}
		if locale, ok := n.match(tag); ok {
			return locale
		}
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if n.matcher == nil {
				return tags[0].String()
			}
			if locale, ok := n.match(tags...); ok {
				return locale
			}
		}
	}

	if len(n.supported) > 0 {
		return n.supported[0]
	}
	return ""
}

func (n *localeNegotiator) match(tags ...language.Tag) (string, bool) {
	_, index, confidence := n.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return n.supported[index], true
}
