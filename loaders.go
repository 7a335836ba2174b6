package datefmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// localizedFormatsKey is the document key wrapping the override tree.
const localizedFormatsKey = "localized_formats"

// FormatsLoader retrieves the override table used to seed a Formatter
type FormatsLoader interface {
	Load() (LocalizedFormats, error)
}

// LoaderFunc adapters allow bare functions to implement FormatsLoader
type LoaderFunc func() (LocalizedFormats, error)

// Load implements FormatsLoader for LoaderFunc
func (fn LoaderFunc) Load() (LocalizedFormats, error) {
	return fn()
}

// FileLoader reads override tables from JSON or YAML files. Later files
// override earlier ones pattern by pattern.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (LocalizedFormats, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("datefmt: no loader paths configured")
	}

	var merged LocalizedFormats
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datefmt: read %s: %w", path, err)
		}

		raw, err := decodeFormatsFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("datefmt: decode %s: %w", path, err)
		}

		formats, err := NewLocalizedFormats(raw)
		if err != nil {
			return nil, fmt.Errorf("datefmt: %s: %w", path, err)
		}
		merged = mergeLocalizedFormats(merged, formats)
	}

	return merged, nil
}

func decodeFormatsFile(path string, data []byte) (RawLocalizedFormats, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeFormatsJSON(data)
	case ".yaml", ".yml":
		return decodeFormatsYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

// decodeFormatsJSON accepts either {"localized_formats": {...}} or the bare locale map.
func decodeFormatsJSON(data []byte) (RawLocalizedFormats, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}

	if inner, ok := wrapper[localizedFormatsKey]; ok {
		var raw RawLocalizedFormats
		if err := json.Unmarshal(inner, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	var raw RawLocalizedFormats
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeFormatsYAML(data []byte) (RawLocalizedFormats, error) {
	var document map[string]interface{}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}

	if len(document) == 0 {
		return nil, errors.New("empty localized formats yaml")
	}

	tree := any(document)
	if inner, ok := document[localizedFormatsKey]; ok {
		tree = inner
	}

	return rawFormatsFromTree(tree)
}

// rawFormatsFromTree converts a decoded locale → section → token tree.
func rawFormatsFromTree(tree any) (RawLocalizedFormats, error) {
	locales, err := asStringMap(tree)
	if err != nil {
		return nil, fmt.Errorf("localized formats: %w", err)
	}

	raw := make(RawLocalizedFormats, len(locales))
	for locale, sectionsValue := range locales {
		if locale == "" {
			return nil, errors.New("empty locale in localized formats")
		}

		sections, err := asStringMap(sectionsValue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}

		entry := make(map[string]map[string]string, len(sections))
		for section, patternsValue := range sections {
			patterns, err := asStringMap(patternsValue)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", locale, section, err)
			}

			values := make(map[string]string, len(patterns))
			for token, pattern := range patterns {
				str, ok := pattern.(string)
				if !ok {
					return nil, fmt.Errorf("%s.%s.%s: pattern must be a string, got %T", locale, section, token, pattern)
				}
				values[token] = str
			}
			entry[section] = values
		}
		raw[locale] = entry
	}

	return raw, nil
}

func asStringMap(value any) (map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = item
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", value)
	}
}
