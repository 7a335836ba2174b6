// Command datefmt-patterns regenerates patterns_cldr_data.go from a CLDR
// core data directory.
//
//	datefmt-patterns -cldr ./cldr/common -locale en,en-GB,fr,fr-CA,de -out patterns_cldr_data.go
//	datefmt-patterns -cldr ./cldr/common -all
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

// lengths lists CLDR format lengths in ICU style order.
var lengths = [4]string{"full", "long", "medium", "short"}

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	all      bool
	locales  []string
}

type calendarPayload struct {
	Locale   string
	Date     [4]string
	Time     [4]string
	DateTime [4]string
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datefmt-patterns: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "datefmt", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "patterns_cldr_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a main/ subdirectory)")
	flag.Var(&localeList, "locale", "locale to generate; repeat or comma separate. root is always included.")
	flag.BoolVar(&cfg.all, "all", false, "generate every locale in the CLDR main directory")

	flag.Parse()

	if len(localeList.items) == 0 && !cfg.all {
		return generatorConfig{}, errors.New("at least one -locale value (or -all) is required")
	}

	locales, err := normalizeLocales(localeList.items)
	if err != nil {
		return generatorConfig{}, err
	}
	cfg.locales = locales

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

// normalizeLocales canonicalizes BCP 47 identifiers, dedupes them and
// appends root.
func normalizeLocales(items []string) ([]string, error) {
	seen := map[string]struct{}{"root": {}}
	out := []string{"root"}

	for _, item := range items {
		item = strings.ReplaceAll(strings.TrimSpace(item), "_", "-")
		if item == "" || item == "root" {
			continue
		}
		tag, err := language.Parse(item)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", item, err)
		}
		locale := tag.String()
		if _, ok := seen[locale]; ok {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}

	sort.Strings(out)
	return out, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	locales := cfg.locales
	if cfg.all {
		locales, err = normalizeLocales(append(parseableLocales(data.Locales()), cfg.locales...))
		if err != nil {
			return err
		}
	}

	var calendars []calendarPayload
	for _, locale := range locales {
		payload, err := buildCalendar(data, locale)
		if err != nil {
			if cfg.all && locale != "root" {
				fmt.Fprintf(os.Stderr, "datefmt-patterns: skipping %s: %v\n", locale, err)
				continue
			}
			return fmt.Errorf("build patterns for %s: %w", locale, err)
		}
		calendars = append(calendars, payload)
	}

	source, err := renderSource(cfg.pkg, calendars)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

// parseableLocales keeps the CLDR ids that x/text can parse as BCP 47 tags.
func parseableLocales(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := language.Parse(strings.ReplaceAll(id, "_", "-")); err == nil {
			out = append(out, id)
		}
	}
	return out
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

// findLDML returns the resolved LDML for locale, inheritance applied.
func findLDML(data *cldr.CLDR, locale string) (*cldr.LDML, error) {
	id := strings.ReplaceAll(locale, "-", "_")
	ldml, err := data.LDML(id)
	if err == nil && ldml != nil {
		return ldml, nil
	}
	if raw := data.RawLDML(id); raw != nil {
		return raw, nil
	}
	if err == nil {
		err = errors.New("missing LDML data")
	}
	return nil, err
}

func buildCalendar(data *cldr.CLDR, locale string) (calendarPayload, error) {
	payload := calendarPayload{Locale: locale}

	ldml, err := findLDML(data, locale)
	if err != nil {
		return payload, err
	}
	if ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return payload, errors.New("no calendar data")
	}

	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal == nil || cal.Type != "gregorian" {
			continue
		}

		if cal.DateFormats != nil {
			for _, length := range cal.DateFormats.DateFormatLength {
				if length == nil {
					continue
				}
				idx := lengthIndex(length.Type)
				if idx < 0 {
					continue
				}
				for _, f := range length.DateFormat {
					if f == nil {
						continue
					}
					for _, p := range f.Pattern {
						if p != nil && p.Alt == "" && payload.Date[idx] == "" {
							payload.Date[idx] = p.Data()
						}
					}
				}
			}
		}

		if cal.TimeFormats != nil {
			for _, length := range cal.TimeFormats.TimeFormatLength {
				if length == nil {
					continue
				}
				idx := lengthIndex(length.Type)
				if idx < 0 {
					continue
				}
				for _, f := range length.TimeFormat {
					if f == nil {
						continue
					}
					for _, p := range f.Pattern {
						if p != nil && p.Alt == "" && payload.Time[idx] == "" {
							payload.Time[idx] = p.Data()
						}
					}
				}
			}
		}

		if cal.DateTimeFormats != nil {
			for _, length := range cal.DateTimeFormats.DateTimeFormatLength {
				if length == nil {
					continue
				}
				idx := lengthIndex(length.Type)
				if idx < 0 {
					continue
				}
				for _, f := range length.DateTimeFormat {
					// atTime glue is for relative dates only.
					if f == nil || f.Type == "atTime" {
						continue
					}
					for _, p := range f.Pattern {
						if p != nil && p.Alt == "" && payload.DateTime[idx] == "" {
							payload.DateTime[idx] = p.Data()
						}
					}
				}
			}
		}
	}

	for i := range lengths {
		if payload.Date[i] == "" || payload.Time[i] == "" {
			return payload, fmt.Errorf("incomplete gregorian patterns for length %s", lengths[i])
		}
		if payload.DateTime[i] == "" {
			payload.DateTime[i] = "{1} {0}"
		}
	}

	return payload, nil
}

func lengthIndex(name string) int {
	for i, length := range lengths {
		if length == name {
			return i
		}
	}
	return -1
}

func renderSource(pkg string, calendars []calendarPayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by datefmt-patterns. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("// cldrCalendarPatterns holds gregorian patterns indexed by ICU style (full, long, medium, short).\n")
	buf.WriteString("type cldrCalendarPatterns struct {\n")
	buf.WriteString("\tDate     [4]string\n")
	buf.WriteString("\tTime     [4]string\n")
	buf.WriteString("\tDateTime [4]string\n")
	buf.WriteString("}\n\n")

	buf.WriteString("var cldrPatterns = map[string]cldrCalendarPatterns{\n")
	for _, cal := range calendars {
		fmt.Fprintf(&buf, "\t%q: {\n", cal.Locale)
		fmt.Fprintf(&buf, "\t\tDate: %s,\n", stringArray(cal.Date))
		fmt.Fprintf(&buf, "\t\tTime: %s,\n", stringArray(cal.Time))
		fmt.Fprintf(&buf, "\t\tDateTime: %s,\n", stringArray(cal.DateTime))
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedPatternLocales = []string{\n")
	for _, cal := range calendars {
		fmt.Fprintf(&buf, "\t%q,\n", cal.Locale)
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func stringArray(values [4]string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[4]string{" + strings.Join(quoted, ", ") + "}"
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
