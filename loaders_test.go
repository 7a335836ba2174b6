package datefmt

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func TestFileLoaderJSONAndYAML(t *testing.T) {
	loader := NewFileLoader(
		filepath.Join("testdata", "formats_fr.json"),
		filepath.Join("testdata", "formats_override.yaml"),
		filepath.Join("testdata", "formats_bare.json"),
		filepath.Join("testdata", "formats_bare.yml"),
	)

	formats, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := RawLocalizedFormats{
		"de": {"date": {"short": "dd.MM.yyyy"}, "time": {}},
		"es": {"date": {"full": "EEEE d 'de' MMMM"}, "time": {}},
		"fr": {
			"date": {"short": "dd.MM.yy", "long": "d MMMM y"},
			"time": {"short": "HH'h'mm"},
		},
		"it": {"date": {}, "time": {"medium": "HH:mm:ss"}},
	}
	if diff := cmp.Diff(want, formats.Raw()); diff != "" {
		t.Fatalf("loaded formats mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLoaderRejectsInvalidToken(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "formats_superfull.yaml"))

	if _, err := loader.Load(); !errors.Is(err, ErrInvalidFormatType) {
		t.Fatalf("expected ErrInvalidFormatType, got %v", err)
	}
}

func TestFileLoaderUnsupportedExtension(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "formats_fr.json"), "unsupported.txt")

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFileLoaderWithoutPaths(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error when no paths are configured")
	}
}

func TestDecodeFormatsYAMLRejectsNonMapping(t *testing.T) {
	if _, err := decodeFormatsYAML([]byte("fr: [short, long]\n")); err == nil {
		t.Fatal("expected error for a list where a mapping is expected")
	}

	if _, err := decodeFormatsYAML([]byte("fr:\n  date:\n    short: [dd, MM]\n")); err == nil {
		t.Fatal("expected error for a non string pattern")
	}

	if _, err := decodeFormatsYAML([]byte("")); err == nil {
		t.Fatal("expected error for an empty document")
	}
}

func TestViperLoaderReadsConfiguredKey(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join("testdata", "datefmt.yaml"))
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	formats, err := NewViperLoader(v, "").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := RawLocalizedFormats{
		"fr": {
			"date": {"short": "dd/MM/yy"},
			"time": {"short": "HH'h'mm"},
		},
	}
	if diff := cmp.Diff(want, formats.Raw()); diff != "" {
		t.Fatalf("viper formats mismatch (-want +got):\n%s", diff)
	}
}

func TestViperLoaderMissingKeyIsEmpty(t *testing.T) {
	formats, err := NewViperLoader(viper.New(), "formats").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(formats) != 0 {
		t.Fatalf("expected no overrides, got %v", formats)
	}
}

func TestViperLoaderValidatesTokens(t *testing.T) {
	v := viper.New()
	v.Set("localized_formats", map[string]any{
		"fr": map[string]any{
			"date": map[string]any{"superfull": "EEEE d MMMM y"},
		},
	})

	if _, err := NewViperLoader(v, "").Load(); !errors.Is(err, ErrInvalidFormatType) {
		t.Fatalf("expected ErrInvalidFormatType, got %v", err)
	}
}
