package datefmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"text/template"
	"time"
)

func newHelperFormatter(t *testing.T) *Formatter {
	t.Helper()

	formats, err := NewLocalizedFormats(RawLocalizedFormats{
		"fr": {"date": {"short": "dd/MM/yy"}},
	})
	if err != nil {
		t.Fatalf("NewLocalizedFormats: %v", err)
	}
	return NewFormatter(NewLocaleHandler("en_US", nil), formats, WithFormatterLocation(time.UTC))
}

func TestTemplateHelpersFormatFunctions(t *testing.T) {
	helpers := TemplateHelpers(newHelperFormatter(t), HelperConfig{LocaleKey: "current_locale"})

	dateFormat, ok := helpers["localized_date_format"].(func(...any) (string, error))
	if !ok {
		t.Fatalf("localized_date_format helper signature mismatch: %T", helpers["localized_date_format"])
	}

	ctx := map[string]any{"current_locale": "fr_FR"}
	if got, err := dateFormat(ctx, "short"); err != nil || got != "dd/MM/yy" {
		t.Fatalf("localized_date_format inferred locale = %q, %v", got, err)
	}

	if got, err := dateFormat("en_US", "short", true); err != nil || got != "Mdyy" {
		t.Fatalf("localized_date_format alpha only = %q, %v", got, err)
	}

	if got, err := dateFormat(); err != nil || got != "MMM d, y" {
		t.Fatalf("localized_date_format defaults = %q, %v", got, err)
	}

	datetimeFormat := helpers["localized_datetime_format"].(func(...any) (string, error))
	if got, err := datetimeFormat("fr", "short", "short"); err != nil || got != "dd/MM/yy HH:mm" {
		t.Fatalf("localized_datetime_format = %q, %v", got, err)
	}

	timeFormat := helpers["localized_time_format"].(func(...any) (string, error))
	if got, err := timeFormat("de", "short", "false"); err != nil || got != "HH:mm" {
		t.Fatalf("localized_time_format = %q, %v", got, err)
	}

	if _, err := dateFormat("en", "short", "maybe"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad flag, got %v", err)
	}

	if _, err := dateFormat("en", "short", false, "extra"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for extra argument, got %v", err)
	}
}

func TestTemplateHelpersFormatFilters(t *testing.T) {
	helpers := TemplateHelpers(newHelperFormatter(t), HelperConfig{})

	localizedDate := helpers["localized_date"].(func(any, ...any) (string, error))
	localizedTime := helpers["localized_time"].(func(any, ...any) (string, error))
	localizedDateTime := helpers["localized_datetime"].(func(any, ...any) (string, error))

	if got, err := localizedDate(int64(1700000000), "fr_FR", "short"); err != nil || got != "14/11/23" {
		t.Fatalf("localized_date = %q, %v", got, err)
	}

	if got, err := localizedTime("1700000000", "fr_FR", "short", "Europe/Paris"); err != nil || got != "23:13" {
		t.Fatalf("localized_time = %q, %v", got, err)
	}

	if got, err := localizedDateTime(int64(1700000000), "en_US", "short", "short"); err != nil || got != "11/14/23, 10:13 PM" {
		t.Fatalf("localized_datetime = %q, %v", got, err)
	}

	if got, err := localizedDate(nil, "fr_FR", "none"); err != nil || got != "" {
		t.Fatalf("localized_date nil = %q, %v", got, err)
	}

	if _, err := localizedDate(int64(0), "fr_FR", "none"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestTemplateHelpersInTemplate(t *testing.T) {
	helpers := TemplateHelpers(newHelperFormatter(t), HelperConfig{})

	tmpl := template.Must(template.New("page").Funcs(helpers).Parse(
		`{{ localized_locale . }} {{ localized_date .At . "short" }} {{ .At | localized_time }} [{{ localized_date_format . "short" true }}]`,
	))

	data := struct {
		Locale string
		At     time.Time
	}{
		Locale: "fr_FR",
		At:     time.Unix(1700000000, 0),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := buf.String(); got != "fr_FR 14/11/23 10:13:20 PM [ddMMyy]" {
		t.Fatalf("rendered template = %q", got)
	}
}

func TestTemplateHelpersSurfaceErrors(t *testing.T) {
	helpers := TemplateHelpers(newHelperFormatter(t), HelperConfig{})

	tmpl := template.Must(template.New("page").Funcs(helpers).Parse(
		`{{ localized_date_format "fr" "superfull" }}`,
	))

	err := tmpl.Execute(&bytes.Buffer{}, nil)
	if err == nil || !strings.Contains(err.Error(), "invalid format type") {
		t.Fatalf("expected invalid format type error, got %v", err)
	}
}

func TestTemplateHelpersLocaleHelper(t *testing.T) {
	helpers := TemplateHelpers(newHelperFormatter(t), HelperConfig{LocaleKey: "locale"})

	currentLocale := helpers["localized_locale"].(func(any) string)

	if got := currentLocale(map[string]string{"locale": "es"}); got != "es" {
		t.Fatalf("localized_locale map = %q", got)
	}

	if got := currentLocale("fr"); got != "fr" {
		t.Fatalf("localized_locale string = %q", got)
	}

	if got := currentLocale(nil); got != "en_US" {
		t.Fatalf("localized_locale default = %q", got)
	}
}

func TestExtractLocaleFromStruct(t *testing.T) {
	type page struct {
		Locale string
		Lang   string
	}

	if got := extractLocale(&page{Locale: "de"}, ""); got != "de" {
		t.Fatalf("extractLocale pointer = %q", got)
	}

	if got := extractLocale(page{Lang: "it"}, "Lang"); got != "it" {
		t.Fatalf("extractLocale custom key = %q", got)
	}

	var missing *page
	if got := extractLocale(missing, ""); got != "" {
		t.Fatalf("extractLocale nil pointer = %q", got)
	}

	if got := extractLocale(42, ""); got != "" {
		t.Fatalf("extractLocale int = %q", got)
	}
}
