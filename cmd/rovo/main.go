// Package main provides the rovo command, which extracts annotations from
// "///" doc comments attached to #[rovo] markers and reports problems with
// them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/rovo/log"
	"go.jacobcolvin.com/rovo/profile"
)

var (
	// ErrReadInput indicates an input file or stdin could not be read.
	ErrReadInput = errors.New("read input")
	// ErrInvalidArgument indicates a malformed command line argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidConfig indicates a settings file that could not be loaded.
	ErrInvalidConfig = errors.New("invalid config")

	// errProblemsFound signals a failing check. Its diagnostics have already
	// been written, so it is not printed.
	errProblemsFound = errors.New("problems found")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// run executes the rovo command with args and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdin, stdout, stderr)

	cmd := a.rootCmd()
	cmd.SetArgs(args)

	err := errors.Join(cmd.ExecuteContext(ctx), a.stopProfiler())
	if err != nil {
		if !errors.Is(err, errProblemsFound) {
			fmt.Fprintf(stderr, "rovo: %v\n", err)
		}

		return 1
	}

	return 0
}

type app struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	log      *log.Config
	profile  *profile.Config
	profiler *profile.Profiler
	settings Settings

	configPath string
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		log:     log.NewConfig(),
		profile: profile.NewConfig(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rovo",
		Short: "Scan and validate rovo doc-comment annotations",
		Long: `rovo reads source files, collects the "///" doc comment lines directly above
each #[rovo] marker, and parses the @response, @tag, @security, @example, @id,
and @hidden annotations in them.

Settings are read from --config, or from .rovo.yaml in the working directory
when it exists. Flags given on the command line take precedence.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	a.log.RegisterFlags(flags)
	a.profile.RegisterFlags(flags)
	flags.StringVar(&a.configPath, "config", "", "settings file (default "+defaultSettingsFile+" when present)")

	a.registerCompletions(root, a.log.RegisterCompletions, a.profile.RegisterCompletions)

	root.AddCommand(
		a.checkCmd(),
		a.annotationsCmd(),
		a.contextCmd(),
		a.schemaCmd(),
		a.versionCmd(),
	)

	return root
}

// setup installs the logger, loads settings, and starts profiling when any
// profile output is configured, before any subcommand runs.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	handler, err := a.log.NewHandler(a.stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	a.settings, err = loadSettings(a.configPath)
	if err != nil {
		return err
	}

	if !a.profile.Enabled() {
		return nil
	}

	slog.Debug("starting profiler",
		slog.String("cpu", a.profile.CPU),
		slog.String("heap", a.profile.Heap),
		slog.String("goroutine", a.profile.Goroutine),
		slog.String("trace", a.profile.Trace),
	)

	a.profiler = a.profile.NewProfiler()

	return a.profiler.Start()
}

func (a *app) stopProfiler() error {
	if a.profiler == nil {
		return nil
	}

	return a.profiler.Stop()
}
