package datefmt

import (
	"fmt"
	"strings"
)

// Precision controls how verbose a rendered date or time component is.
type Precision int

const (
	// PrecisionDefault is the zero value and resolves to PrecisionMedium.
	PrecisionDefault Precision = iota
	PrecisionNone
	PrecisionShort
	PrecisionMedium
	PrecisionLong
	PrecisionFull
)

// DefaultPrecision is used when a caller leaves the precision token empty.
const DefaultPrecision = PrecisionMedium

// ICU DateFormat style constants.
const (
	StyleNone   = -1
	StyleFull   = 0
	StyleLong   = 1
	StyleMedium = 2
	StyleShort  = 3
)

var precisionTokens = map[Precision]string{
	PrecisionNone:   "none",
	PrecisionShort:  "short",
	PrecisionMedium: "medium",
	PrecisionLong:   "long",
	PrecisionFull:   "full",
}

// Precisions lists every valid precision, from least to most verbose.
func Precisions() []Precision {
	return []Precision{PrecisionNone, PrecisionShort, PrecisionMedium, PrecisionLong, PrecisionFull}
}

// ParsePrecision normalizes a case-insensitive precision token.
// An empty token resolves to DefaultPrecision.
func ParsePrecision(token string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "":
		return DefaultPrecision, nil
	case "none":
		return PrecisionNone, nil
	case "short":
		return PrecisionShort, nil
	case "medium":
		return PrecisionMedium, nil
	case "long":
		return PrecisionLong, nil
	case "full":
		return PrecisionFull, nil
	default:
		return PrecisionDefault, fmt.Errorf("%w: %q", ErrInvalidFormatType, token)
	}
}

// Resolve maps PrecisionDefault to DefaultPrecision.
func (p Precision) Resolve() Precision {
	if p == PrecisionDefault {
		return DefaultPrecision
	}
	return p
}

// Valid reports whether p is one of the five precision levels or the default.
func (p Precision) Valid() bool {
	if p == PrecisionDefault {
		return true
	}
	_, ok := precisionTokens[p]
	return ok
}

func (p Precision) String() string {
	if token, ok := precisionTokens[p.Resolve()]; ok {
		return token
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// Style returns the equivalent ICU DateFormat style constant.
func (p Precision) Style() (int, error) {
	switch p.Resolve() {
	case PrecisionNone:
		return StyleNone, nil
	case PrecisionFull:
		return StyleFull, nil
	case PrecisionLong:
		return StyleLong, nil
	case PrecisionMedium:
		return StyleMedium, nil
	case PrecisionShort:
		return StyleShort, nil
	default:
		return StyleNone, fmt.Errorf("%w: %s", ErrInvalidFormatType, p)
	}
}

// PrecisionFromStyle maps an ICU DateFormat style constant back to a Precision.
func PrecisionFromStyle(style int) (Precision, error) {
	switch style {
	case StyleNone:
		return PrecisionNone, nil
	case StyleFull:
		return PrecisionFull, nil
	case StyleLong:
		return PrecisionLong, nil
	case StyleMedium:
		return PrecisionMedium, nil
	case StyleShort:
		return PrecisionShort, nil
	default:
		return PrecisionDefault, fmt.Errorf("%w: style %d", ErrInvalidFormatType, style)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Precision) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormatType, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Precision) UnmarshalText(text []byte) error {
	parsed, err := ParsePrecision(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
