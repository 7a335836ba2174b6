package datefmt

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ViperLoader reads the override tree from an application's viper
// configuration. Viper lower cases keys, which matches the two letter
// override lookup.
type ViperLoader struct {
	v   *viper.Viper
	key string
}

// NewViperLoader reads overrides under key, "localized_formats" when empty.
func NewViperLoader(v *viper.Viper, key string) *ViperLoader {
	if key == "" {
		key = localizedFormatsKey
	}
	return &ViperLoader{v: v, key: key}
}

func (l *ViperLoader) Load() (LocalizedFormats, error) {
	if l == nil || l.v == nil {
		return nil, errors.New("datefmt: viper loader has no configuration")
	}

	if !l.v.IsSet(l.key) {
		return LocalizedFormats{}, nil
	}

	raw, err := rawFormatsFromTree(l.v.Get(l.key))
	if err != nil {
		return nil, fmt.Errorf("datefmt: %s: %w", l.key, err)
	}

	formats, err := NewLocalizedFormats(raw)
	if err != nil {
		return nil, fmt.Errorf("datefmt: %s: %w", l.key, err)
	}
	return formats, nil
}
