package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for report configuration.
type Flags struct {
	Format string
	Color  string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:  f,
		Format: string(FormatText),
		Color:  string(ColorAuto),
	}
}

// Config holds CLI flag values for report rendering.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewRenderer] once flags are parsed.
type Config struct {
	Format string
	Color  string
	Flags  Flags
}

// NewConfig returns a new [Config] with the default flag names "format" and
// "color".
func NewConfig() *Config {
	f := Flags{
		Format: "format",
		Color:  "color",
	}

	return f.NewConfig()
}

// RegisterFlags adds report flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Format, c.Flags.Format, "f", c.Format,
		fmt.Sprintf("output format, one of: %s", strings.Join(AllFormats(), ", ")))
	flags.StringVar(&c.Color, c.Flags.Color, c.Color,
		fmt.Sprintf("colorize text output, one of: %s", strings.Join(AllColorModes(), ", ")))
}

// RegisterCompletions registers shell completions for report flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(AllFormats(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Color,
		cobra.FixedCompletions(AllColorModes(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Color, err)
	}

	return nil
}

// NewRenderer parses the configured format and color mode and returns a
// [Renderer] for output written to w.
func (c *Config) NewRenderer(w io.Writer) (*Renderer, error) {
	format, err := ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	mode, err := ParseColorMode(c.Color)
	if err != nil {
		return nil, err
	}

	return NewRenderer(format, mode.Enabled(w)), nil
}
