package datefmt

import "strings"

// DefaultLocale is used when neither the caller nor the request supplies one.
const DefaultLocale = "en_US"

// LocaleHandler resolves the effective locale for a formatting call
type LocaleHandler interface {
	// Locale returns explicit when non empty, otherwise the request or default locale.
	Locale(explicit string) string
}

// CurrentLocaleProvider probes the locale of the active request, if any.
type CurrentLocaleProvider interface {
	CurrentLocale() (string, bool)
}

// CurrentLocaleFunc adapts a bare function to CurrentLocaleProvider
type CurrentLocaleFunc func() (string, bool)

// CurrentLocale implements CurrentLocaleProvider for CurrentLocaleFunc
func (fn CurrentLocaleFunc) CurrentLocale() (string, bool) {
	if fn == nil {
		return "", false
	}
	return fn()
}

// NoCurrentLocale never reports an active request, for batch jobs and tests.
var NoCurrentLocale CurrentLocaleProvider = CurrentLocaleFunc(func() (string, bool) {
	return "", false
})

// StaticLocale always reports locale as the request locale.
func StaticLocale(locale string) CurrentLocaleProvider {
	return CurrentLocaleFunc(func() (string, bool) {
		return locale, locale != ""
	})
}

type localeHandler struct {
	defaultLocale string
	provider      CurrentLocaleProvider
}

var _ LocaleHandler = &localeHandler{}

// NewLocaleHandler builds the three tier resolver: explicit, request, default.
func NewLocaleHandler(defaultLocale string, provider CurrentLocaleProvider) LocaleHandler {
	defaultLocale = strings.TrimSpace(defaultLocale)
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	if provider == nil {
		provider = NoCurrentLocale
	}
	return &localeHandler{
		defaultLocale: defaultLocale,
		provider:      provider,
	}
}

func (h *localeHandler) Locale(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if locale, ok := h.provider.CurrentLocale(); ok && locale != "" {
		return locale
	}

	return h.defaultLocale
}
