package datefmt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePrecisionTokens(t *testing.T) {
	cases := map[string]Precision{
		"none":     PrecisionNone,
		"SHORT":    PrecisionShort,
		" Medium ": PrecisionMedium,
		"long":     PrecisionLong,
		"Full":     PrecisionFull,
		"":         PrecisionMedium,
	}

	for token, want := range cases {
		got, err := ParsePrecision(token)
		if err != nil {
			t.Fatalf("ParsePrecision(%q): %v", token, err)
		}
		if got != want {
			t.Fatalf("ParsePrecision(%q) = %s, want %s", token, got, want)
		}
	}
}

func TestParsePrecisionRejectsUnknownToken(t *testing.T) {
	for _, token := range []string{"superfull", "tiny", "0"} {
		if _, err := ParsePrecision(token); !errors.Is(err, ErrInvalidFormatType) {
			t.Fatalf("ParsePrecision(%q) error = %v, want ErrInvalidFormatType", token, err)
		}
	}
}

func TestPrecisionStyleRoundTrip(t *testing.T) {
	wantStyles := map[string]int{
		"none":   StyleNone,
		"short":  StyleShort,
		"medium": StyleMedium,
		"long":   StyleLong,
		"full":   StyleFull,
	}

	for token, wantStyle := range wantStyles {
		precision, err := ParsePrecision(token)
		if err != nil {
			t.Fatalf("ParsePrecision(%q): %v", token, err)
		}
		style, err := precision.Style()
		if err != nil {
			t.Fatalf("%s.Style(): %v", token, err)
		}
		if style != wantStyle {
			t.Fatalf("%s.Style() = %d, want %d", token, style, wantStyle)
		}

		back, err := PrecisionFromStyle(style)
		if err != nil {
			t.Fatalf("PrecisionFromStyle(%d): %v", style, err)
		}
		if back.String() != token {
			t.Fatalf("round trip of %q yielded %q", token, back.String())
		}
	}

	if _, err := PrecisionFromStyle(7); !errors.Is(err, ErrInvalidFormatType) {
		t.Fatalf("expected ErrInvalidFormatType for unknown style, got %v", err)
	}
}

func TestPrecisionDefaultResolvesToMedium(t *testing.T) {
	var p Precision
	if p.Resolve() != PrecisionMedium {
		t.Fatalf("zero precision resolved to %s", p.Resolve())
	}
	if p.String() != "medium" {
		t.Fatalf("zero precision string = %q", p.String())
	}
	if style, _ := p.Style(); style != StyleMedium {
		t.Fatalf("zero precision style = %d", style)
	}
}

func TestPrecisionTextMarshaling(t *testing.T) {
	var got []Precision
	for _, token := range []string{"full", "none", "Short"} {
		var p Precision
		if err := p.UnmarshalText([]byte(token)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", token, err)
		}
		got = append(got, p)
	}

	want := []Precision{PrecisionFull, PrecisionNone, PrecisionShort}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unmarshaled precisions mismatch (-want +got):\n%s", diff)
	}

	text, err := PrecisionLong.MarshalText()
	if err != nil || string(text) != "long" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}

	if _, err := Precision(42).MarshalText(); !errors.Is(err, ErrInvalidFormatType) {
		t.Fatalf("expected ErrInvalidFormatType, got %v", err)
	}
}

func TestPrecisionsOrder(t *testing.T) {
	var tokens []string
	for _, p := range Precisions() {
		tokens = append(tokens, p.String())
	}
	want := []string{"none", "short", "medium", "long", "full"}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("Precisions() mismatch (-want +got):\n%s", diff)
	}
}
