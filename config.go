package datefmt

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config captures formatter setup
type Config struct {
	DefaultLocale  string
	LocaleProvider CurrentLocaleProvider
	Formats        LocalizedFormats
	Loader         FormatsLoader
	PatternSource  PatternSource
	Renderer       Renderer
	Location       *time.Location
	Logger         *zap.Logger
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. When a loader is configured
// its table is merged over any inline formats.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}

	if cfg.LocaleProvider == nil {
		cfg.LocaleProvider = NoCurrentLocale
	}

	if cfg.Loader != nil {
		loaded, err := cfg.Loader.Load()
		if err != nil {
			return nil, err
		}
		cfg.Formats = mergeLocalizedFormats(cfg.Formats.Clone(), loaded)
	}

	cfg.warnUnreachableOverrides()

	return cfg, nil
}

// WithDefaultLocale sets the locale used when neither caller nor request supplies one
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			return fmt.Errorf("%w: default locale cannot be empty", ErrInvalidArgument)
		}
		if _, err := parseLocale(locale); err != nil {
			return fmt.Errorf("%w: default locale %q: %v", ErrInvalidArgument, locale, err)
		}
		c.DefaultLocale = locale
		return nil
	}
}

func WithLocaleProvider(provider CurrentLocaleProvider) Option {
	return func(c *Config) error {
		c.LocaleProvider = provider
		return nil
	}
}

// WithLocalizedFormats validates and registers an inline override table
func WithLocalizedFormats(raw RawLocalizedFormats) Option {
	return func(c *Config) error {
		formats, err := NewLocalizedFormats(raw)
		if err != nil {
			return err
		}
		c.Formats = mergeLocalizedFormats(c.Formats, formats)
		return nil
	}
}

func WithFormatsLoader(loader FormatsLoader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithPatternSource(source PatternSource) Option {
	return func(c *Config) error {
		c.PatternSource = source
		return nil
	}
}

func WithRenderer(renderer Renderer) Option {
	return func(c *Config) error {
		c.Renderer = renderer
		return nil
	}
}

// WithDefaultTimeZone sets the zone used when a call passes none
func WithDefaultTimeZone(name string) Option {
	return func(c *Config) error {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("%w: the %q value is not a supported time zone: %v", ErrInvalidArgument, name, err)
		}
		c.Location = loc
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// BuildFormatter wires a Formatter from the configuration
func (cfg *Config) BuildFormatter() (*Formatter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}

	handler := NewLocaleHandler(cfg.DefaultLocale, cfg.LocaleProvider)

	return NewFormatter(handler, cfg.Formats,
		WithFormatterPatternSource(cfg.PatternSource),
		WithFormatterRenderer(cfg.Renderer),
		WithFormatterLocation(cfg.Location),
		WithFormatterLogger(cfg.Logger),
	), nil
}

// TemplateHelpers builds a formatter and returns its template helpers
func (cfg *Config) TemplateHelpers(helperCfg HelperConfig) (map[string]any, error) {
	formatter, err := cfg.BuildFormatter()
	if err != nil {
		return nil, err
	}
	return TemplateHelpers(formatter, helperCfg), nil
}

// warnUnreachableOverrides flags override locales that the two letter
// lookup key can never select.
func (cfg *Config) warnUnreachableOverrides() {
	for _, locale := range cfg.Formats.Locales() {
		if len(locale) <= 2 {
			continue
		}
		cfg.Logger.Warn("localized format override is unreachable",
			zap.String("op", "datefmt.NewConfig"),
			zap.String("locale", locale),
			zap.String("lookup_key", overrideKey(locale)),
		)
	}
}
