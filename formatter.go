package datefmt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DateTimeFormatter resolves localized patterns and renders values with them.
// Precision arguments are case-insensitive tokens; an empty token means medium.
type DateTimeFormatter interface {
	DateFormat(locale, dateType string, alphaOnly bool) (string, error)
	TimeFormat(locale, timeType string, alphaOnly bool) (string, error)
	DateTimeFormat(locale, dateType, timeType string, alphaOnly bool) (string, error)

	FormatDate(value any, locale, dateType string, timeZone any) (string, error)
	FormatTime(value any, locale, timeType string, timeZone any) (string, error)
	FormatDateTime(value any, locale, dateType, timeType string, timeZone any) (string, error)
}

// Formatter is the production DateTimeFormatter. It is safe for concurrent
// use; the override table is copied on construction and never mutated.
type Formatter struct {
	handler  LocaleHandler
	formats  LocalizedFormats
	patterns PatternSource
	renderer Renderer
	location *time.Location
	logger   *zap.Logger
}

var _ DateTimeFormatter = &Formatter{}

// FormatterOption mutates a Formatter during construction
type FormatterOption func(*Formatter)

func WithFormatterPatternSource(source PatternSource) FormatterOption {
	return func(f *Formatter) {
		if source != nil {
			f.patterns = source
		}
	}
}

func WithFormatterRenderer(renderer Renderer) FormatterOption {
	return func(f *Formatter) {
		if renderer != nil {
			f.renderer = renderer
		}
	}
}

// WithFormatterLocation sets the time zone used when callers pass none.
func WithFormatterLocation(loc *time.Location) FormatterOption {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

func WithFormatterLogger(logger *zap.Logger) FormatterOption {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFormatter builds a Formatter around a locale handler and override table.
func NewFormatter(handler LocaleHandler, formats LocalizedFormats, opts ...FormatterOption) *Formatter {
	if handler == nil {
		handler = NewLocaleHandler(DefaultLocale, NoCurrentLocale)
	}

	f := &Formatter{
		handler:  handler,
		formats:  formats.Clone(),
		patterns: NewCLDRPatternSource(),
		renderer: NewPatternRenderer(),
		location: time.Local,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}

	return f
}

// WithContext returns a copy of f that reads the request locale from ctx.
func (f *Formatter) WithContext(ctx context.Context) *Formatter {
	clone := *f
	clone.handler = &contextLocaleHandler{ctx: ctx, next: f.handler}
	return &clone
}

// Locale resolves the effective locale for explicit.
func (f *Formatter) Locale(explicit string) string {
	return f.handler.Locale(explicit)
}

// Formats returns a copy of the override table.
func (f *Formatter) Formats() LocalizedFormats {
	return f.formats.Clone()
}

func (f *Formatter) DateFormat(locale, dateType string, alphaOnly bool) (string, error) {
	return f.DateTimeFormat(locale, dateType, PrecisionNone.String(), alphaOnly)
}

func (f *Formatter) TimeFormat(locale, timeType string, alphaOnly bool) (string, error) {
	return f.DateTimeFormat(locale, PrecisionNone.String(), timeType, alphaOnly)
}

// DateTimeFormat returns the effective pattern for locale. With alphaOnly
// every character that is not an ASCII letter is removed.
func (f *Formatter) DateTimeFormat(locale, dateType, timeType string, alphaOnly bool) (string, error) {
	date, tm, err := parsePrecisions(dateType, timeType)
	if err != nil {
		return "", err
	}
	if date == PrecisionNone && tm == PrecisionNone {
		return "", fmt.Errorf("%w: date and time types cannot both be none", ErrInvalidFormatType)
	}

	format, err := f.LocalizedDateTimeFormat(locale, date, tm)
	if err != nil {
		return "", err
	}

	if alphaOnly {
		format = alphaOnlyPattern(format)
	}
	return format, nil
}

// LocalizedDateTimeFormat picks between the override table and the pattern
// source. Overrides are keyed by the first two characters of the resolved
// locale; the pattern source always sees the full locale.
func (f *Formatter) LocalizedDateTimeFormat(locale string, date, tm Precision) (string, error) {
	resolved := f.handler.Locale(locale)
	key := overrideKey(resolved)

	if f.IsLocaleSurcharged(key) {
		f.logger.Debug("using localized format overrides",
			zap.String("op", "datefmt.LocalizedDateTimeFormat"),
			zap.String("locale", resolved),
			zap.String("override", key),
			zap.Stringer("date", date),
			zap.Stringer("time", tm),
		)
		return f.SurchargedFormat(resolved, date, tm)
	}

	return f.DefaultFormat(resolved, date, tm)
}

// IsLocaleSurcharged reports whether the override table has an entry for locale.
func (f *Formatter) IsLocaleSurcharged(locale string) bool {
	return f.formats.Has(locale)
}

// SurchargedFormat combines override fragments, falling back to the pattern
// source for each missing component. Date comes first, joined by one space.
func (f *Formatter) SurchargedFormat(locale string, date, tm Precision) (string, error) {
	resolved := f.handler.Locale(locale)
	key := overrideKey(resolved)
	date = date.Resolve()
	tm = tm.Resolve()

	var dateFormat, timeFormat string

	if date != PrecisionNone {
		pattern, err := f.TypeFormat(key, date, sectionDate)
		if err != nil {
			return "", err
		}
		if pattern == "" {
			if pattern, err = f.DefaultFormat(resolved, date, PrecisionNone); err != nil {
				return "", err
			}
		}
		dateFormat = pattern
	}

	if tm != PrecisionNone {
		pattern, err := f.TypeFormat(key, tm, sectionTime)
		if err != nil {
			return "", err
		}
		if pattern == "" {
			if pattern, err = f.DefaultFormat(resolved, PrecisionNone, tm); err != nil {
				return "", err
			}
		}
		timeFormat = pattern
	}

	switch {
	case dateFormat == "":
		return timeFormat, nil
	case timeFormat == "":
		return dateFormat, nil
	}
	return dateFormat + " " + timeFormat, nil
}

// TypeFormat returns the override for locale/section/precision, or "" when
// none is configured. Invalid precisions fail with ErrInvalidFormatType.
func (f *Formatter) TypeFormat(locale string, precision Precision, section string) (string, error) {
	pattern, ok, err := f.formats.Pattern(locale, section, precision)
	if err != nil {
		return "", err
	}
	if !ok || pattern == "" {
		f.logger.Debug("no localized override, using default pattern",
			zap.String("op", "datefmt.TypeFormat"),
			zap.String("locale", locale),
			zap.String("section", section),
			zap.Stringer("precision", precision),
		)
		return "", nil
	}
	return pattern, nil
}

// DefaultFormat returns the built-in pattern from the pattern source.
func (f *Formatter) DefaultFormat(locale string, date, tm Precision) (string, error) {
	return f.patterns.DefaultPattern(locale, date, tm)
}

// FormatDate renders the date component only; dateType none is rejected.
func (f *Formatter) FormatDate(value any, locale, dateType string, timeZone any) (string, error) {
	if isNilValue(value) {
		return "", nil
	}
	if err := validateSingleType(dateType); err != nil {
		return "", err
	}
	return f.Format(value, locale, dateType, PrecisionNone.String(), timeZone)
}

// FormatTime renders the time component only; timeType none is rejected.
func (f *Formatter) FormatTime(value any, locale, timeType string, timeZone any) (string, error) {
	if isNilValue(value) {
		return "", nil
	}
	if err := validateSingleType(timeType); err != nil {
		return "", err
	}
	return f.Format(value, locale, PrecisionNone.String(), timeType, timeZone)
}

// FormatDateTime renders both components; at most one may be none.
func (f *Formatter) FormatDateTime(value any, locale, dateType, timeType string, timeZone any) (string, error) {
	if isNilValue(value) {
		return "", nil
	}
	date, tm, err := parsePrecisions(dateType, timeType)
	if err != nil {
		return "", err
	}
	if date == PrecisionNone && tm == PrecisionNone {
		return "", fmt.Errorf("%w: date and time types cannot both be none", ErrInvalidArgument)
	}
	return f.Format(value, locale, dateType, timeType, timeZone)
}

// Format renders value with the pattern resolved for locale. A nil value
// yields "" and no error. value may be a time.Time, a Unix timestamp as a
// number or digit only string, or any string dateparse understands.
func (f *Formatter) Format(value any, locale, dateType, timeType string, timeZone any) (string, error) {
	if isNilValue(value) {
		return "", nil
	}

	loc, err := f.TimeZone(timeZone)
	if err != nil {
		return "", err
	}

	// Zone-less strings are read in the formatter default zone, then converted.
	t, err := toTime(value, f.location)
	if err != nil {
		if errors.Is(err, errValueOutOfRange) {
			return "", f.formatFailure(value, err)
		}
		return "", err
	}

	resolved := f.handler.Locale(locale)

	pattern, err := f.DateTimeFormat(resolved, dateType, timeType, false)
	if err != nil {
		return "", err
	}

	result, err := f.renderer.Render(t.In(loc), resolved, pattern)
	if err != nil {
		return "", f.formatFailure(value, err)
	}

	return result, nil
}

// TimeZone resolves a time zone argument: nil or "" selects the formatter
// default, a string is loaded from the tz database, a *time.Location is used as is.
func (f *Formatter) TimeZone(timeZone any) (*time.Location, error) {
	switch tz := timeZone.(type) {
	case nil:
		return f.location, nil
	case *time.Location:
		if tz == nil {
			return f.location, nil
		}
		return tz, nil
	case string:
		name := strings.TrimSpace(tz)
		if name == "" {
			return f.location, nil
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: the %q value is not a supported time zone: %v", ErrInvalidArgument, tz, err)
		}
		return loc, nil
	default:
		return nil, fmt.Errorf("%w: unsupported time zone of type %T", ErrInvalidArgument, timeZone)
	}
}

// TimeZoneName returns the canonical name of the resolved time zone.
func (f *Formatter) TimeZoneName(timeZone any) (string, error) {
	loc, err := f.TimeZone(timeZone)
	if err != nil {
		return "", err
	}
	return loc.String(), nil
}

func (f *Formatter) formatFailure(value any, err error) error {
	ferr := newFormatError(value, err)
	f.logger.Warn("value cannot be formatted",
		zap.String("op", "datefmt.Format"),
		zap.String("type", ferr.Type),
		zap.Error(err),
	)
	return ferr
}

func parsePrecisions(dateType, timeType string) (Precision, Precision, error) {
	date, err := ParsePrecision(dateType)
	if err != nil {
		return PrecisionDefault, PrecisionDefault, err
	}
	tm, err := ParsePrecision(timeType)
	if err != nil {
		return PrecisionDefault, PrecisionDefault, err
	}
	return date, tm, nil
}

func validateSingleType(token string) error {
	precision, err := ParsePrecision(token)
	if err != nil {
		return err
	}
	if precision == PrecisionNone {
		return fmt.Errorf("%w: the %q value is not a supported type", ErrInvalidArgument, token)
	}
	return nil
}

func alphaOnlyPattern(pattern string) string {
	var builder strings.Builder
	builder.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		if isASCIILetter(pattern[i]) {
			builder.WriteByte(pattern[i])
		}
	}
	return builder.String()
}

type contextLocaleHandler struct {
	ctx  context.Context
	next LocaleHandler
}

func (h *contextLocaleHandler) Locale(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if locale, ok := LocaleFromContext(h.ctx); ok {
		return locale
	}
	return h.next.Locale("")
}
