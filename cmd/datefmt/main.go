// Command datefmt prints localized date/time patterns and formats values
// with them.
//
//	datefmt -locale fr_FR -date short pattern
//	datefmt -locale de -date long -time short -tz Europe/Berlin format 1700000000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-datefmt"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	locale     string
	dateType   string
	timeType   string
	timeZone   string
	alphaOnly  bool
	logLevel   string
	logFormat  string
}

var errUsage = errors.New("usage: datefmt [flags] pattern | format <value>")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("datefmt", flag.ContinueOnError)
	opts := options{}
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML or JSON configuration file")
	fs.StringVar(&opts.locale, "locale", "", "locale, e.g. fr_FR (defaults to default_locale)")
	fs.StringVar(&opts.dateType, "date", "", "date precision: none, short, medium, long, full")
	fs.StringVar(&opts.timeType, "time", "none", "time precision: none, short, medium, long, full")
	fs.StringVar(&opts.timeZone, "tz", "", "IANA time zone used for rendering")
	fs.BoolVar(&opts.alphaOnly, "alpha", false, "strip every non letter from printed patterns")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	fs.StringVar(&opts.logFormat, "log-format", "", "log format override (console, json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	v, settings, err := loadSettings(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logFormat != "" {
		settings.Logging.Format = opts.logFormat
	}

	logger, err := initializeLogger(settings.Logging, opts.logLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfgOpts := []datefmt.Option{
		datefmt.WithDefaultLocale(settings.DefaultLocale),
		datefmt.WithFormatsLoader(datefmt.NewViperLoader(v, "")),
		datefmt.WithLogger(logger),
	}
	if settings.TimeZone != "" {
		cfgOpts = append(cfgOpts, datefmt.WithDefaultTimeZone(settings.TimeZone))
	}

	cfg, err := datefmt.NewConfig(cfgOpts...)
	if err != nil {
		return err
	}

	formatter, err := cfg.BuildFormatter()
	if err != nil {
		return err
	}

	logger.Debug("formatter ready",
		zap.String("op", "main"),
		zap.String("default_locale", settings.DefaultLocale),
		zap.Any("overrides", cfg.Formats.Raw()),
	)

	switch rest[0] {
	case "pattern":
		if len(rest) != 1 {
			return errUsage
		}
		pattern, err := formatter.DateTimeFormat(opts.locale, opts.dateType, opts.timeType, opts.alphaOnly)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, pattern)
		return err

	case "format":
		if len(rest) != 2 {
			return errUsage
		}
		var tz any
		if opts.timeZone != "" {
			tz = opts.timeZone
		}
		out, err := formatter.Format(rest[1], opts.locale, opts.dateType, opts.timeType, tz)
		if err != nil {
			logger.Error("failed to format value",
				zap.String("op", "main"),
				zap.String("value", rest[1]),
				zap.Error(err),
			)
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err

	default:
		return fmt.Errorf("unknown command %q: %w", rest[0], errUsage)
	}
}
