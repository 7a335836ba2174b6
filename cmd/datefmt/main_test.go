package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-datefmt"
	"gotest.tools/v3/assert"
)

var testConfig = filepath.Join("..", "..", "testdata", "datefmt.yaml")

func TestRunPrintsPattern(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-locale", "en_US", "-date", "short", "-time", "short", "pattern"}, &out)
	assert.NilError(t, err)
	assert.Equal(t, "M/d/yy, h:mm a\n", out.String())
}

func TestRunPrintsAlphaOnlyPattern(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-config", testConfig, "-date", "short", "-alpha", "pattern"}, &out)
	assert.NilError(t, err)
	assert.Equal(t, "ddMMyy\n", out.String())
}

func TestRunFormatsWithConfig(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-config", testConfig, "-date", "short", "-time", "short", "format", "1700000000"}, &out)
	assert.NilError(t, err)
	assert.Equal(t, "14/11/23 23h13\n", out.String())
}

func TestRunFormatsWithTimeZoneFlag(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-locale", "en_US", "-date", "none", "-time", "short", "-tz", "UTC", "format", "1700000000"}, &out)
	assert.NilError(t, err)
	assert.Equal(t, "10:13 PM\n", out.String())
}

func TestRunLogsLoadedOverrides(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "datefmt.log")
	configFile := filepath.Join(dir, "datefmt.yaml")

	config := "default_locale: it_IT\n" +
		"logging:\n" +
		"  level: debug\n" +
		"  format: json\n" +
		"  output_file: " + logFile + "\n" +
		"localized_formats:\n" +
		"  it:\n" +
		"    date:\n" +
		"      short: d/M/yy\n"
	assert.NilError(t, os.WriteFile(configFile, []byte(config), 0o644))

	var out bytes.Buffer
	err := run([]string{"-config", configFile, "-date", "short", "pattern"}, &out)
	assert.NilError(t, err)
	assert.Equal(t, "d/M/yy\n", out.String())

	logged, err := os.ReadFile(logFile)
	assert.NilError(t, err)
	assert.Assert(t, bytes.Contains(logged, []byte(`"overrides":{"it":{"date":{"short":"d/M/yy"}`)), "log: %s", logged)
}

func TestRunRejectsBadInput(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{}, &out)
	assert.Assert(t, errors.Is(err, errUsage))

	err = run([]string{"explode"}, &out)
	assert.Assert(t, errors.Is(err, errUsage))

	err = run([]string{"-date", "superfull", "pattern"}, &out)
	assert.Assert(t, errors.Is(err, datefmt.ErrInvalidFormatType))

	err = run([]string{"-log-level", "loud", "pattern"}, &out)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestInitializeLoggerFormats(t *testing.T) {
	_, err := initializeLogger(LoggingConfig{Format: "json"}, "debug")
	assert.NilError(t, err)

	_, err = initializeLogger(LoggingConfig{Format: "xml"}, "")
	assert.ErrorContains(t, err, "invalid log format")
}
