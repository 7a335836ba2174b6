package datefmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// PatternSource supplies the built-in pattern for a locale and precision pair.
type PatternSource interface {
	DefaultPattern(locale string, date, time Precision) (string, error)
}

// PatternSourceFunc adapts a bare function to PatternSource
type PatternSourceFunc func(locale string, date, time Precision) (string, error)

// DefaultPattern implements PatternSource for PatternSourceFunc
func (fn PatternSourceFunc) DefaultPattern(locale string, date, time Precision) (string, error) {
	return fn(locale, date, time)
}

const cldrRootLocale = "root"

// CLDRPatternSource resolves gregorian patterns from the generated CLDR tables.
type CLDRPatternSource struct {
	bundles map[string]cldrCalendarPatterns
}

var _ PatternSource = &CLDRPatternSource{}

// NewCLDRPatternSource returns a source backed by the bundled CLDR data.
func NewCLDRPatternSource() *CLDRPatternSource {
	return &CLDRPatternSource{bundles: cldrPatterns}
}

// DefaultPattern returns the CLDR pattern for locale. When both precisions
// are set, the date and time patterns are joined with the dateTimeFormat
// glue selected by the date precision.
func (s *CLDRPatternSource) DefaultPattern(locale string, date, time Precision) (string, error) {
	date = date.Resolve()
	time = time.Resolve()

	if !date.Valid() || !time.Valid() {
		return "", fmt.Errorf("%w: %s/%s", ErrInvalidFormatType, date, time)
	}
	if date == PrecisionNone && time == PrecisionNone {
		return "", fmt.Errorf("%w: date and time precision cannot both be none", ErrInvalidArgument)
	}

	bundle, err := s.bundle(locale)
	if err != nil {
		return "", err
	}

	var datePattern, timePattern string
	if date != PrecisionNone {
		datePattern = bundle.Date[styleIndex(date)]
	}
	if time != PrecisionNone {
		timePattern = bundle.Time[styleIndex(time)]
	}

	switch {
	case timePattern == "":
		return datePattern, nil
	case datePattern == "":
		return timePattern, nil
	}

	glue := bundle.DateTime[styleIndex(date)]
	if glue == "" {
		glue = "{1} {0}"
	}
	return strings.NewReplacer("{1}", datePattern, "{0}", timePattern).Replace(glue), nil
}

// Locales lists the locales with bundled pattern data.
func (s *CLDRPatternSource) Locales() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), generatedPatternLocales...)
}

// bundle walks the CLDR parent chain of locale (en-AU, en-001, en) and
// returns the first bundled entry, or root when none is bundled.
func (s *CLDRPatternSource) bundle(locale string) (cldrCalendarPatterns, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return cldrCalendarPatterns{}, fmt.Errorf("%w: locale %q is not recognized: %v", ErrLibrary, locale, err)
	}

	for current := tag; current != language.Und; current = current.Parent() {
		if bundle, ok := s.bundles[current.String()]; ok {
			return bundle, nil
		}
	}

	if bundle, ok := s.bundles[cldrRootLocale]; ok {
		return bundle, nil
	}

	return cldrCalendarPatterns{}, fmt.Errorf("%w: no pattern data for locale %q", ErrLibrary, locale)
}

// styleIndex maps a non-none precision to its CLDR length slot.
func styleIndex(p Precision) int {
	style, err := p.Style()
	if err != nil || style < 0 {
		return StyleMedium
	}
	return style
}
