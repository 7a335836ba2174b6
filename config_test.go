package datefmt

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != DefaultLocale {
		t.Fatalf("expected default locale %q, got %q", DefaultLocale, cfg.DefaultLocale)
	}
	if cfg.Logger == nil || cfg.LocaleProvider == nil {
		t.Fatal("expected logger and locale provider defaults")
	}

	formatter, err := cfg.BuildFormatter()
	if err != nil {
		t.Fatalf("BuildFormatter: %v", err)
	}
	if got := formatter.Locale(""); got != DefaultLocale {
		t.Fatalf("formatter locale = %q", got)
	}
}

func TestNewConfigLoaderOverridesInlineFormats(t *testing.T) {
	cfg, err := NewConfig(
		WithDefaultLocale("fr_FR"),
		WithLocalizedFormats(RawLocalizedFormats{
			"fr": {"date": {"short": "inline", "long": "d MMMM y"}},
		}),
		WithFormatsLoader(NewFileLoader(filepath.Join("testdata", "formats_override.yaml"))),
		WithDefaultTimeZone("Europe/Paris"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	formatter, err := cfg.BuildFormatter()
	if err != nil {
		t.Fatalf("BuildFormatter: %v", err)
	}

	if got, err := formatter.DateFormat("", "short", false); err != nil || got != "dd.MM.yy" {
		t.Fatalf("short date = %q, %v", got, err)
	}
	if got, err := formatter.DateFormat("", "long", false); err != nil || got != "d MMMM y" {
		t.Fatalf("long date = %q, %v", got, err)
	}

	if got, err := formatter.FormatTime(int64(1700000000), "", "short", nil); err != nil || got != "23:13" {
		t.Fatalf("short time in Europe/Paris = %q, %v", got, err)
	}
}

func TestNewConfigPropagatesLoaderErrors(t *testing.T) {
	_, err := NewConfig(
		WithFormatsLoader(NewFileLoader(filepath.Join("testdata", "formats_superfull.yaml"))),
	)
	if !errors.Is(err, ErrInvalidFormatType) {
		t.Fatalf("expected ErrInvalidFormatType, got %v", err)
	}
}

func TestNewConfigRejectsInvalidOptions(t *testing.T) {
	if _, err := NewConfig(WithDefaultTimeZone("Nowhere/Special")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for time zone, got %v", err)
	}

	if _, err := NewConfig(WithDefaultLocale(" ")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty locale, got %v", err)
	}

	_, err := NewConfig(WithLocalizedFormats(RawLocalizedFormats{
		"fr": {"date": {"superfull": "EEEE"}},
	}))
	if !errors.Is(err, ErrInvalidFormatType) {
		t.Fatalf("expected ErrInvalidFormatType, got %v", err)
	}
}

func TestNewConfigWarnsOnUnreachableOverrides(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	_, err := NewConfig(
		WithLogger(zap.New(core)),
		WithFormatsLoader(NewFileLoader(filepath.Join("testdata", "formats_unreachable.json"))),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	entries := logs.FilterMessage("localized format override is unreachable").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["locale"] != "en_GB" || fields["lookup_key"] != "en" {
		t.Fatalf("unexpected warning fields: %v", fields)
	}
}

func TestConfigCustomCollaborators(t *testing.T) {
	renderer := RendererFunc(func(t time.Time, locale, pattern string) (string, error) {
		return locale + "|" + pattern, nil
	})

	cfg, err := NewConfig(
		WithLocaleProvider(StaticLocale("de_DE")),
		WithPatternSource(PatternSourceFunc(func(locale string, date, tm Precision) (string, error) {
			return "pattern", nil
		})),
		WithRenderer(renderer),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	helpers, err := cfg.TemplateHelpers(HelperConfig{})
	if err != nil {
		t.Fatalf("TemplateHelpers: %v", err)
	}

	localizedDate := helpers["localized_date"].(func(any, ...any) (string, error))
	got, err := localizedDate(int64(0))
	if err != nil {
		t.Fatalf("localized_date: %v", err)
	}
	if got != "de_DE|pattern" {
		t.Fatalf("localized_date = %q", got)
	}
}
