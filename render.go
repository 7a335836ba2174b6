package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Renderer renders a point in time with an ICU style pattern.
type Renderer interface {
	Render(t time.Time, locale, pattern string) (string, error)
}

// RendererFunc adapts a bare function to Renderer
type RendererFunc func(t time.Time, locale, pattern string) (string, error)

// Render implements Renderer for RendererFunc
func (fn RendererFunc) Render(t time.Time, locale, pattern string) (string, error) {
	return fn(t, locale, pattern)
}

// PatternRenderer interprets ICU date/time patterns. Month, weekday and
// day period names are localized through goodsign/monday.
type PatternRenderer struct{}

var _ Renderer = PatternRenderer{}

// NewPatternRenderer returns the default Renderer.
func NewPatternRenderer() PatternRenderer {
	return PatternRenderer{}
}

type patternToken struct {
	letter  byte
	count   int
	literal string
}

// Render formats t in its own location. The caller is expected to have
// moved t into the target time zone already.
func (PatternRenderer) Render(t time.Time, locale, pattern string) (string, error) {
	tokens, err := tokenizePattern(pattern)
	if err != nil {
		return "", err
	}

	ctx := renderContext{
		t:        t,
		locale:   resolveMondayLocale(locale),
		region:   localeRegion(locale),
		genitive: hasDayField(tokens),
	}

	var builder strings.Builder
	for _, token := range tokens {
		if token.letter == 0 {
			builder.WriteString(token.literal)
			continue
		}
		value, err := ctx.field(token.letter, token.count)
		if err != nil {
			return "", err
		}
		builder.WriteString(value)
	}
	return builder.String(), nil
}

func tokenizePattern(pattern string) ([]patternToken, error) {
	var (
		tokens  []patternToken
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, patternToken{literal: literal.String()})
		literal.Reset()
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			i++
			closed := false
			for i < len(pattern) {
				if pattern[i] == '\'' {
					if i+1 < len(pattern) && pattern[i+1] == '\'' {
						literal.WriteByte('\'')
						i += 2
						continue
					}
					closed = true
					i++
					break
				}
				literal.WriteByte(pattern[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated quote in pattern %q", pattern)
			}
		case isASCIILetter(c):
			flush()
			j := i + 1
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			tokens = append(tokens, patternToken{letter: c, count: j - i})
			i = j
		default:
			_, size := utf8.DecodeRuneInString(pattern[i:])
			literal.WriteString(pattern[i : i+size])
			i += size
		}
	}
	flush()

	return tokens, nil
}

func hasDayField(tokens []patternToken) bool {
	for _, token := range tokens {
		if token.letter == 'd' {
			return true
		}
	}
	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type renderContext struct {
	t        time.Time
	locale   monday.Locale
	region   string
	genitive bool
}

func (c renderContext) field(letter byte, count int) (string, error) {
	t := c.t
	switch letter {
	case 'G':
		return era(t, count), nil
	case 'y':
		year := t.Year()
		if year <= 0 {
			year = 1 - year
		}
		if count == 2 {
			return pad(year%100, 2), nil
		}
		return pad(year, count), nil
	case 'Y':
		year, _ := t.ISOWeek()
		if count == 2 {
			return pad(year%100, 2), nil
		}
		return pad(year, count), nil
	case 'u':
		return pad(t.Year(), count), nil
	case 'Q', 'q':
		return quarter(t, count), nil
	case 'M':
		return c.month(count, c.genitive), nil
	case 'L':
		return c.month(count, false), nil
	case 'w':
		_, week := t.ISOWeek()
		return pad(week, count), nil
	case 'W':
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		offset := (int(first.Weekday()) - c.firstDayOfWeek() + 7) % 7
		return pad((t.Day()-1+offset)/7+1, count), nil
	case 'd':
		return pad(t.Day(), count), nil
	case 'D':
		return pad(t.YearDay(), count), nil
	case 'F':
		return pad((t.Day()-1)/7+1, count), nil
	case 'E':
		return c.weekday(count), nil
	case 'e', 'c':
		if count <= 2 {
			local := (int(t.Weekday())-c.firstDayOfWeek()+7)%7 + 1
			return pad(local, count), nil
		}
		return c.weekday(count), nil
	case 'a', 'b', 'B':
		return monday.Format(t, "PM", c.locale), nil
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return pad(hour, count), nil
	case 'H':
		return pad(t.Hour(), count), nil
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return pad(hour, count), nil
	case 'K':
		return pad(t.Hour()%12, count), nil
	case 'm':
		return pad(t.Minute(), count), nil
	case 's':
		return pad(t.Second(), count), nil
	case 'S':
		return fraction(t, count), nil
	case 'A':
		ms := ((t.Hour()*60+t.Minute())*60+t.Second())*1000 + t.Nanosecond()/int(time.Millisecond)
		return pad(ms, count), nil
	case 'z':
		if count >= 4 {
			return zoneLongName(t), nil
		}
		return t.Format("MST"), nil
	case 'v':
		if count >= 4 {
			return zoneLongName(t), nil
		}
		return t.Format("MST"), nil
	case 'V':
		return zoneLongName(t), nil
	case 'Z':
		switch {
		case count <= 3:
			return t.Format("-0700"), nil
		case count == 4:
			return localizedGMT(t, true), nil
		default:
			return t.Format("Z07:00"), nil
		}
	case 'O':
		return localizedGMT(t, count >= 4), nil
	case 'X':
		return t.Format(isoZoneLayout("Z", count)), nil
	case 'x':
		return t.Format(isoZoneLayout("-", count)), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedPatternLetter, string(letter))
	}
}

func (c renderContext) month(count int, genitive bool) string {
	t := c.t
	switch {
	case count <= 2:
		return pad(int(t.Month()), count)
	case count == 3:
		return c.localizedName("Jan", genitive)
	case count == 4:
		return c.localizedName("January", genitive)
	default:
		return narrow(c.localizedName("January", false))
	}
}

func (c renderContext) weekday(count int) string {
	switch {
	case count == 4:
		return monday.Format(c.t, "Monday", c.locale)
	case count == 5:
		return narrow(monday.Format(c.t, "Monday", c.locale))
	default:
		return monday.Format(c.t, "Mon", c.locale)
	}
}

// localizedName returns a month name. The genitive form is the one monday
// produces next to a day number, as in "19 октября".
func (c renderContext) localizedName(layout string, genitive bool) string {
	if !genitive {
		return monday.Format(c.t, layout, c.locale)
	}
	prefix := strconv.Itoa(c.t.Day()) + " "
	formatted := monday.Format(c.t, "2 "+layout, c.locale)
	if name, ok := strings.CutPrefix(formatted, prefix); ok && name != "" {
		return name
	}
	return monday.Format(c.t, layout, c.locale)
}

var sundayFirstRegions = map[string]struct{}{
	"AG": {}, "AS": {}, "BD": {}, "BR": {}, "BS": {}, "BT": {}, "BW": {}, "BZ": {},
	"CA": {}, "CN": {}, "CO": {}, "DM": {}, "DO": {}, "ET": {}, "GT": {}, "GU": {},
	"HK": {}, "HN": {}, "ID": {}, "IL": {}, "IN": {}, "JM": {}, "JP": {}, "KE": {},
	"KH": {}, "KR": {}, "LA": {}, "MH": {}, "MM": {}, "MO": {}, "MT": {}, "MX": {},
	"MZ": {}, "NI": {}, "NP": {}, "PA": {}, "PE": {}, "PH": {}, "PK": {}, "PR": {},
	"PT": {}, "PY": {}, "SA": {}, "SG": {}, "SV": {}, "TH": {}, "TT": {}, "TW": {},
	"UM": {}, "US": {}, "VE": {}, "VI": {}, "WS": {}, "YE": {}, "ZA": {}, "ZW": {},
}

// firstDayOfWeek returns 0 for Sunday first regions and 1 otherwise.
func (c renderContext) firstDayOfWeek() int {
	if _, ok := sundayFirstRegions[c.region]; ok {
		return int(time.Sunday)
	}
	return int(time.Monday)
}

func era(t time.Time, count int) string {
	ad := t.Year() > 0
	switch {
	case count == 4:
		if ad {
			return "Anno Domini"
		}
		return "Before Christ"
	case count >= 5:
		if ad {
			return "A"
		}
		return "B"
	default:
		if ad {
			return "AD"
		}
		return "BC"
	}
}

func quarter(t time.Time, count int) string {
	q := (int(t.Month())-1)/3 + 1
	switch {
	case count <= 2:
		return pad(q, count)
	case count == 3:
		return "Q" + strconv.Itoa(q)
	default:
		return [...]string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"}[q-1]
	}
}

func fraction(t time.Time, count int) string {
	digits := fmt.Sprintf("%09d", t.Nanosecond())
	if count <= len(digits) {
		return digits[:count]
	}
	return digits + strings.Repeat("0", count-len(digits))
}

func zoneLongName(t time.Time) string {
	if name := t.Location().String(); name != "" && name != "Local" {
		return name
	}
	return t.Format("MST")
}

func localizedGMT(t time.Time, long bool) string {
	_, offset := t.Zone()
	if offset == 0 {
		return "GMT"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if long {
		return fmt.Sprintf("GMT%c%02d:%02d", sign, hours, minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("GMT%c%d", sign, hours)
	}
	return fmt.Sprintf("GMT%c%d:%02d", sign, hours, minutes)
}

func isoZoneLayout(prefix string, count int) string {
	switch count {
	case 1:
		return prefix + "07"
	case 2:
		return prefix + "0700"
	case 3:
		return prefix + "07:00"
	case 4:
		return prefix + "070000"
	default:
		return prefix + "07:00:00"
	}
}

func pad(value, width int) string {
	negative := value < 0
	if negative {
		value = -value
	}
	digits := strconv.Itoa(value)
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	if negative {
		return "-" + digits
	}
	return digits
}

func narrow(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

var mondayLocales = func() map[monday.Locale]struct{} {
	locales := monday.ListLocales()
	set := make(map[monday.Locale]struct{}, len(locales))
	for _, locale := range locales {
		set[locale] = struct{}{}
	}
	return set
}()

// resolveMondayLocale maps a locale identifier onto the closest monday
// locale, maximizing the region when the identifier has none.
func resolveMondayLocale(locale string) monday.Locale {
	tag, err := parseLocale(locale)
	if err != nil || tag == language.Und {
		return monday.LocaleEnUS
	}

	base, _ := tag.Base()
	region, _ := tag.Region()

	candidate := monday.Locale(base.String() + "_" + region.String())
	if _, ok := mondayLocales[candidate]; ok {
		return candidate
	}

	prefix := base.String() + "_"
	for _, supported := range monday.ListLocales() {
		if strings.HasPrefix(string(supported), prefix) {
			return supported
		}
	}

	return monday.LocaleEnUS
}

func localeRegion(locale string) string {
	tag, err := parseLocale(locale)
	if err != nil || tag == language.Und {
		return "US"
	}
	region, _ := tag.Region()
	return region.String()
}
