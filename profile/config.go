package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPU            string
	Heap           string
	Goroutine      string
	Trace          string
	MemProfileRate string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds profile output paths. Empty paths are disabled, so the zero
// value profiles nothing.
type Config struct {
	Flags Flags

	CPU       string
	Heap      string
	Goroutine string
	Trace     string

	// MemProfileRate is applied to [runtime.MemProfileRate] when positive.
	MemProfileRate int
}

// NewConfig creates a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		CPU:            "cpu-profile",
		Heap:           "heap-profile",
		Goroutine:      "goroutine-profile",
		Trace:          "trace",
		MemProfileRate: "mem-profile-rate",
	}

	return f.NewConfig()
}

// Enabled reports whether any profile output is configured.
func (c *Config) Enabled() bool {
	return c.CPU != "" || c.Heap != "" || c.Goroutine != "" || c.Trace != ""
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPU, c.Flags.CPU, "", "write CPU profile to file")
	flags.StringVar(&c.Heap, c.Flags.Heap, "", "write heap profile to file")
	flags.StringVar(&c.Goroutine, c.Flags.Goroutine, "", "write goroutine profile to file")
	flags.StringVar(&c.Trace, c.Flags.Trace, "", "write execution trace to file")
	flags.IntVar(&c.MemProfileRate, c.Flags.MemProfileRate, 0, "memory profile rate in bytes per sample, applied when a profile output is set (0 keeps the runtime default)")
}

// RegisterCompletions registers shell completions for profile flags on cmd.
// Path flags keep the default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.MemProfileRate, cobra.NoFileCompletions)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.MemProfileRate, err)
	}

	return nil
}

// NewProfiler creates a new [Profiler] using a copy of this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{Config: *c}
}
