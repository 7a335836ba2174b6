package datefmt

import (
	"fmt"
	"sort"
	"strings"
)

const (
	sectionDate = "date"
	sectionTime = "time"
)

// LocaleFormats holds the override patterns for one locale.
type LocaleFormats struct {
	Date map[Precision]string
	Time map[Precision]string
}

// LocalizedFormats maps a locale code to its override patterns.
// It is read only once built by NewLocalizedFormats.
type LocalizedFormats map[string]LocaleFormats

// RawLocalizedFormats is the unvalidated override tree: locale → section → token → pattern.
type RawLocalizedFormats map[string]map[string]map[string]string

// NewLocalizedFormats validates raw and returns an immutable override table.
// Every token key must be a valid precision, every section date or time.
func NewLocalizedFormats(raw RawLocalizedFormats) (LocalizedFormats, error) {
	if len(raw) == 0 {
		return LocalizedFormats{}, nil
	}

	result := make(LocalizedFormats, len(raw))
	for locale, sections := range raw {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale in localized formats", ErrInvalidArgument)
		}

		entry := LocaleFormats{}
		for section, patterns := range sections {
			parsed, err := parseSection(locale, section, patterns)
			if err != nil {
				return nil, err
			}

			switch strings.ToLower(strings.TrimSpace(section)) {
			case sectionDate:
				entry.Date = mergePatterns(entry.Date, parsed)
			case sectionTime:
				entry.Time = mergePatterns(entry.Time, parsed)
			default:
				return nil, fmt.Errorf("%w: locale %q: unrecognized section %q", ErrInvalidArgument, locale, section)
			}
		}
		result[locale] = entry
	}

	return result, nil
}

func parseSection(locale, section string, patterns map[string]string) (map[Precision]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	out := make(map[Precision]string, len(patterns))
	for token, pattern := range patterns {
		if strings.TrimSpace(token) == "" {
			return nil, fmt.Errorf("%w: %q in %s.%s", ErrInvalidFormatType, token, locale, section)
		}
		precision, err := ParsePrecision(token)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", locale, section, err)
		}
		out[precision] = pattern
	}
	return out, nil
}

func mergePatterns(dst, src map[Precision]string) map[Precision]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[Precision]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Clone returns a deep copy of the table.
func (f LocalizedFormats) Clone() LocalizedFormats {
	if f == nil {
		return nil
	}
	out := make(LocalizedFormats, len(f))
	for locale, entry := range f {
		out[locale] = entry.clone()
	}
	return out
}

// Locales returns the overridden locale codes, sorted.
func (f LocalizedFormats) Locales() []string {
	if len(f) == 0 {
		return nil
	}
	locales := make([]string, 0, len(f))
	for locale := range f {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Has reports whether locale has an entry, regardless of its content.
func (f LocalizedFormats) Has(locale string) bool {
	if f == nil {
		return false
	}
	_, ok := f[locale]
	return ok
}

// Pattern returns the override for locale/section/precision.
// Looking up a precision outside the valid set fails with ErrInvalidFormatType.
func (f LocalizedFormats) Pattern(locale, section string, precision Precision) (string, bool, error) {
	if !precision.Valid() {
		return "", false, fmt.Errorf("%w: %s", ErrInvalidFormatType, precision)
	}

	entry, ok := f[locale]
	if !ok {
		return "", false, nil
	}

	var patterns map[Precision]string
	switch section {
	case sectionDate:
		patterns = entry.Date
	case sectionTime:
		patterns = entry.Time
	default:
		return "", false, fmt.Errorf("%w: unrecognized section %q", ErrInvalidArgument, section)
	}

	pattern, ok := patterns[precision.Resolve()]
	return pattern, ok, nil
}

// Raw converts the table back into its token keyed form.
func (f LocalizedFormats) Raw() RawLocalizedFormats {
	if f == nil {
		return nil
	}
	out := make(RawLocalizedFormats, len(f))
	for locale, entry := range f {
		out[locale] = map[string]map[string]string{
			sectionDate: rawPatterns(entry.Date),
			sectionTime: rawPatterns(entry.Time),
		}
	}
	return out
}

func rawPatterns(patterns map[Precision]string) map[string]string {
	out := make(map[string]string, len(patterns))
	for precision, pattern := range patterns {
		out[precision.String()] = pattern
	}
	return out
}

func (e LocaleFormats) clone() LocaleFormats {
	out := LocaleFormats{}
	if len(e.Date) > 0 {
		out.Date = make(map[Precision]string, len(e.Date))
		for k, v := range e.Date {
			out.Date[k] = v
		}
	}
	if len(e.Time) > 0 {
		out.Time = make(map[Precision]string, len(e.Time))
		for k, v := range e.Time {
			out.Time[k] = v
		}
	}
	return out
}

// mergeLocalizedFormats overlays src onto dst pattern by pattern.
func mergeLocalizedFormats(dst, src LocalizedFormats) LocalizedFormats {
	if dst == nil {
		dst = make(LocalizedFormats, len(src))
	}
	for locale, entry := range src {
		existing := dst[locale]
		existing.Date = mergePatterns(existing.Date, entry.Date)
		existing.Time = mergePatterns(existing.Time, entry.Time)
		dst[locale] = existing
	}
	return dst
}
