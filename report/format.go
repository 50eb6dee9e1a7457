package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	// ErrUnknownFormat indicates an unrecognized output format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnknownColorMode indicates an unrecognized color mode.
	ErrUnknownColorMode = errors.New("unknown color mode")
	// ErrWriteOutput indicates a failure writing a rendered report.
	ErrWriteOutput = errors.New("write output")
)

// Format is a report output format.
type Format string

const (
	// FormatText renders one line per annotation or diagnostic.
	FormatText Format = "text"
	// FormatJSON renders the [Report] as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders the [Report] as YAML.
	FormatYAML Format = "yaml"
)

// AllFormats returns every supported [Format].
func AllFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ColorMode controls ANSI styling of text output.
type ColorMode string

const (
	// ColorAuto colors output written to a terminal unless NO_COLOR is set.
	ColorAuto ColorMode = "auto"
	// ColorAlways always colors output.
	ColorAlways ColorMode = "always"
	// ColorNever never colors output.
	ColorNever ColorMode = "never"
)

// AllColorModes returns every supported [ColorMode].
func AllColorModes() []string {
	return []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}
}

// ParseColorMode parses a case-insensitive color mode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

// Enabled reports whether output written to w should be colored.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}
