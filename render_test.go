package datefmt

import (
	"errors"
	"testing"
	"time"

	gocmp "github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var cmpPatternTokens = gocmp.AllowUnexported(patternToken{})

// 2023-11-14 22:13:20 UTC, a Tuesday.
var sampleInstant = time.Unix(1700000000, 0).UTC()

func TestPatternRendererEnglish(t *testing.T) {
	renderer := NewPatternRenderer()

	cases := map[string]string{
		"M/d/yy":             "11/14/23",
		"MMM d, y":           "Nov 14, 2023",
		"EEEE, MMMM d, y":    "Tuesday, November 14, 2023",
		"h:mm a":             "10:13 PM",
		"HH:mm:ss":           "22:13:20",
		"yyyy-MM-dd'T'HH":    "2023-11-14T22",
		"D":                  "318",
		"QQQ":                "Q4",
		"G":                  "AD",
		"k:mm":               "22:13",
		"K 'o''clock'":       "10 o'clock",
		"h:mm:ss a zzzz":     "10:13:20 PM UTC",
		"HH:mm xxx":          "22:13 +00:00",
		"HH:mm O":            "22:13 GMT",
		"MMMMM":              "N",
		"EEEEE":              "T",
		"''":                 "'",
		"SSS":                "000",
		"MM/dd/yyyy HH:mm Z": "11/14/2023 22:13 +0000",
	}

	for pattern, want := range cases {
		got, err := renderer.Render(sampleInstant, "en_US", pattern)
		assert.NilError(t, err, "pattern %q", pattern)
		assert.Check(t, is.Equal(want, got), "pattern %q", pattern)
	}
}

func TestPatternRendererLocalizesNames(t *testing.T) {
	renderer := NewPatternRenderer()

	got, err := renderer.Render(sampleInstant, "fr_FR", "d MMMM y")
	assert.NilError(t, err)
	assert.Equal(t, "14 novembre 2023", got)

	got, err = renderer.Render(sampleInstant, "de", "EEEE")
	assert.NilError(t, err)
	assert.Equal(t, "Dienstag", got)
}

func TestPatternRendererUsesTimeLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	assert.NilError(t, err)

	got, err := NewPatternRenderer().Render(sampleInstant.In(paris), "fr_FR", "HH:mm zzzz")
	assert.NilError(t, err)
	assert.Equal(t, "23:13 Europe/Paris", got)

	got, err = NewPatternRenderer().Render(sampleInstant.In(paris), "fr_FR", "OOOO")
	assert.NilError(t, err)
	assert.Equal(t, "GMT+01:00", got)
}

func TestPatternRendererRejectsUnsupportedLetter(t *testing.T) {
	_, err := NewPatternRenderer().Render(sampleInstant, "en_US", "yyyy J")
	assert.Assert(t, errors.Is(err, ErrUnsupportedPatternLetter), "got %v", err)
}

func TestPatternRendererRejectsUnterminatedQuote(t *testing.T) {
	_, err := NewPatternRenderer().Render(sampleInstant, "en_US", "HH 'h")
	assert.ErrorContains(t, err, "unterminated quote")
}

func TestTokenizePatternKeepsLiterals(t *testing.T) {
	tokens, err := tokenizePattern("HH 'h' mm")
	assert.NilError(t, err)
	assert.DeepEqual(t, []patternToken{
		{letter: 'H', count: 2},
		{literal: " h "},
		{letter: 'm', count: 2},
	}, tokens, cmpPatternTokens)
}

func TestResolveMondayLocale(t *testing.T) {
	cases := map[string]string{
		"fr":       "fr_FR",
		"fr_FR":    "fr_FR",
		"de-DE":    "de_DE",
		"en_US":    "en_US",
		"":         "en_US",
		"invalid!": "en_US",
	}
	for locale, want := range cases {
		assert.Check(t, is.Equal(want, string(resolveMondayLocale(locale))), "locale %q", locale)
	}
}
