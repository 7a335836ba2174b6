package datefmt

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// parseLocale parses a POSIX or BCP 47 locale identifier.
func parseLocale(locale string) (language.Tag, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return language.Und, nil
	}
	return language.Parse(normalized)
}

// overrideKey truncates a resolved locale to the key used for override lookup.
// Only the first two characters are kept, so "fr_FR" reads the "fr" entry.
func overrideKey(locale string) string {
	if len(locale) > 2 {
		return locale[:2]
	}
	return locale
}
