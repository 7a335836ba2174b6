package datefmt

import (
	"fmt"
	"reflect"
	"strconv"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the map key or struct field holding the locale when
	// template data is passed in place of a locale string. Defaults to "Locale".
	LocaleKey string
}

// TemplateHelpers exposes the formatter to html/template and text/template.
//
// Functions return patterns:
//
//	{{ localized_date_format .Locale "short" }}
//	{{ localized_datetime_format . "short" "medium" true }}
//
// Filters render values, the value first as with a direct call:
//
//	{{ localized_date .CreatedAt .Locale "long" "Europe/Paris" }}
//	{{ .CreatedAt | localized_datetime }}
//
// A pipeline passes the piped value as the last argument, so filters only
// take a locale, types or a zone in call form. Piping works when nothing
// follows the filter name.
//
// Trailing arguments are optional and default like the Go methods do.
func TemplateHelpers(f DateTimeFormatter, cfg HelperConfig) map[string]any {
	if f == nil {
		f = NewFormatter(nil, nil)
	}
	localeKey := cfg.LocaleKey

	return map[string]any{
		"localized_date_format": func(args ...any) (string, error) {
			a, err := parseHelperArgs(args, localeKey, 3)
			if err != nil {
				return "", fmt.Errorf("localized_date_format: %w", err)
			}
			alpha, err := a.boolean(2)
			if err != nil {
				return "", fmt.Errorf("localized_date_format: %w", err)
			}
			return f.DateFormat(a.locale, a.str(1), alpha)
		},
		"localized_time_format": func(args ...any) (string, error) {
			a, err := parseHelperArgs(args, localeKey, 3)
			if err != nil {
				return "", fmt.Errorf("localized_time_format: %w", err)
			}
			alpha, err := a.boolean(2)
			if err != nil {
				return "", fmt.Errorf("localized_time_format: %w", err)
			}
			return f.TimeFormat(a.locale, a.str(1), alpha)
		},
		"localized_datetime_format": func(args ...any) (string, error) {
			a, err := parseHelperArgs(args, localeKey, 4)
			if err != nil {
				return "", fmt.Errorf("localized_datetime_format: %w", err)
			}
			alpha, err := a.boolean(3)
			if err != nil {
				return "", fmt.Errorf("localized_datetime_format: %w", err)
			}
			return f.DateTimeFormat(a.locale, a.str(1), a.str(2), alpha)
		},

		"localized_date": func(value any, args ...any) (string, error) {
			a, err := parseHelperArgs(args, localeKey, 3)
			if err != nil {
				return "", fmt.Errorf("localized_date: %w", err)
			}
			return f.FormatDate(value, a.locale, a.str(1), a.at(2))
		},
		"localized_time": func(value any, args ...any) (string, error) {
			a, err := parseHelperArgs(args, localeKey, 3)
			if err != nil {
				return "", fmt.Errorf("localized_time: %w", err)
			}
			return f.FormatTime(value, a.locale, a.str(1), a.at(2))
		},
		"localized_datetime": func(value any, args ...any) (string, error) {
			a, err := parseHelperArgs(args, localeKey, 4)
			if err != nil {
				return "", fmt.Errorf("localized_datetime: %w", err)
			}
			return f.FormatDateTime(value, a.locale, a.str(1), a.str(2), a.at(3))
		},

		"localized_locale": func(data any) string {
			locale := extractLocale(data, localeKey)
			if resolver, ok := f.(interface{ Locale(string) string }); ok {
				return resolver.Locale(locale)
			}
			return locale
		},
	}
}

type helperArgs struct {
	locale string
	values []any
}

func parseHelperArgs(args []any, localeKey string, limit int) (helperArgs, error) {
	if len(args) > limit {
		return helperArgs{}, fmt.Errorf("%w: expected at most %d arguments, got %d", ErrInvalidArgument, limit, len(args))
	}

	out := helperArgs{values: args}
	if len(args) > 0 {
		out.locale = extractLocale(args[0], localeKey)
	}
	return out, nil
}

func (a helperArgs) at(i int) any {
	if i < len(a.values) {
		return a.values[i]
	}
	return nil
}

func (a helperArgs) str(i int) string {
	switch v := a.at(i).(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (a helperArgs) boolean(i int) (bool, error) {
	switch v := a.at(i).(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		if v == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: alpha only flag %q", ErrInvalidArgument, v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: alpha only flag of type %T", ErrInvalidArgument, v)
	}
}

// extractLocale reads the locale from template data using the configured key.
// It handles strings, maps and structs (like a page view model). An empty
// result lets the formatter fall back to the request or default locale.
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return ""
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	switch d := data.(type) {
	case string:
		return d
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
		return ""
	case map[string]string:
		return d[localeKey]
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
