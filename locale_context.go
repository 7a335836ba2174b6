package datefmt

import "context"

type localeContextKey struct{}

// WithLocale returns a copy of ctx carrying the request locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the request locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, ok := ctx.Value(localeContextKey{}).(string)
	if !ok || locale == "" {
		return "", false
	}
	return locale, true
}

// ContextLocaleProvider exposes the locale stored in ctx as a CurrentLocaleProvider.
func ContextLocaleProvider(ctx context.Context) CurrentLocaleProvider {
	return CurrentLocaleFunc(func() (string, bool) {
		return LocaleFromContext(ctx)
	})
}
