package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/rovo/annotation"
	"go.jacobcolvin.com/rovo/diagnostic"
	"go.jacobcolvin.com/rovo/report"
	"go.jacobcolvin.com/rovo/version"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		repCfg  = report.NewConfig()
		diagCfg = diagnostic.NewConfig()
		jobs    = runtime.GOMAXPROCS(0)
		failOn  = string(diagnostic.SeverityError)
	)

	cmd := &cobra.Command{
		Use:   "check [flags] [file ...]",
		Short: "Validate annotations and report diagnostics",
		Long: `check validates the annotations of each file and prints the diagnostics.
Stdin is read when no files are given or a file is "-".

The command exits 1 when any diagnostic is at least as severe as --fail-on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			override(f, repCfg.Flags.Format, &repCfg.Format, a.settings.Format)
			override(f, repCfg.Flags.Color, &repCfg.Color, a.settings.Color)
			override(f, diagCfg.Flags.Rules, &diagCfg.Rules, strings.Join(a.settings.Rules, ","))
			override(f, "jobs", &jobs, a.settings.Jobs)
			override(f, "fail-on", &failOn, a.settings.FailOn)

			threshold, err := parseSeverity(failOn)
			if err != nil {
				return err
			}

			v, err := diagCfg.NewValidator()
			if err != nil {
				return err
			}

			slog.Debug("validating inputs",
				slog.Any("rules", v.RuleNames()),
				slog.Int("jobs", jobs),
				slog.String("fail_on", string(threshold)),
			)

			r, err := repCfg.NewRenderer(a.stdout)
			if err != nil {
				return err
			}

			files, err := a.process(cmd.Context(), args, jobs, func(in input) report.File {
				return report.NewFile(in.path, nil, v.ValidateContent(in.content))
			})
			if err != nil {
				return err
			}

			rep := report.Report{Files: files, Summary: report.Summarize(files)}

			err = r.Render(a.stdout, rep)
			if err != nil {
				return err
			}

			if rep.HasAtLeast(threshold) {
				return errProblemsFound
			}

			return nil
		},
	}

	repCfg.RegisterFlags(cmd.Flags())
	diagCfg.RegisterFlags(cmd.Flags())
	cmd.Flags().IntVar(&jobs, "jobs", jobs, "number of files processed concurrently")
	cmd.Flags().StringVar(&failOn, "fail-on", failOn,
		fmt.Sprintf("lowest severity that fails the check, one of: %s", strings.Join(severityStrings(), ", ")))

	a.registerCompletions(cmd, repCfg.RegisterCompletions, diagCfg.RegisterCompletions,
		func(cmd *cobra.Command) error {
			return cmd.RegisterFlagCompletionFunc("fail-on",
				cobra.FixedCompletions(severityStrings(), cobra.ShellCompDirectiveNoFileComp))
		},
	)

	return cmd
}

func (a *app) annotationsCmd() *cobra.Command {
	var (
		repCfg = report.NewConfig()
		jobs   = runtime.GOMAXPROCS(0)
	)

	cmd := &cobra.Command{
		Use:     "annotations [flags] [file ...]",
		Aliases: []string{"scan"},
		Short:   "Print the annotations found in each file",
		Long: `annotations prints every annotation attached to a #[rovo] marker, in
source order. Stdin is read when no files are given or a file is "-".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			override(f, repCfg.Flags.Format, &repCfg.Format, a.settings.Format)
			override(f, repCfg.Flags.Color, &repCfg.Color, a.settings.Color)
			override(f, "jobs", &jobs, a.settings.Jobs)

			r, err := repCfg.NewRenderer(a.stdout)
			if err != nil {
				return err
			}

			files, err := a.process(cmd.Context(), args, jobs, func(in input) report.File {
				return report.NewFile(in.path, annotation.Scan(in.content), nil)
			})
			if err != nil {
				return err
			}

			return r.Render(a.stdout, report.Report{Files: files})
		},
	}

	repCfg.RegisterFlags(cmd.Flags())
	cmd.Flags().IntVar(&jobs, "jobs", jobs, "number of files processed concurrently")

	a.registerCompletions(cmd, repCfg.RegisterCompletions)

	return cmd
}

func (a *app) contextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "context <file> <line>",
		Short: "Report whether a line is inside a rovo doc block",
		Long: `context prints "true" when a #[rovo] marker is found at the 0-indexed line
of file or within the 19 lines after it, with only doc comments, attributes,
or blank lines in between. Otherwise it prints "false". Use "-" as the file
to read stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil || line < 0 {
				return fmt.Errorf("%w: line must be a non-negative integer, got %q", ErrInvalidArgument, args[1])
			}

			in, err := a.read(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.stdout, annotation.NearMarker(in.content, line))
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func (a *app) schemaCmd() *cobra.Command {
	var settings bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of report documents",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			schemaFn := report.Schema
			if settings {
				schemaFn = SettingsSchema
			}

			s, err := schemaFn()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			_, err = fmt.Fprintf(a.stdout, "%s\n", out)
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteOutput, err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&settings, "settings", false, "print the settings file schema instead")

	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.Get())
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func (a *app) registerCompletions(cmd *cobra.Command, fns ...func(*cobra.Command) error) {
	for _, fn := range fns {
		if err := fn(cmd); err != nil {
			fmt.Fprintf(a.stderr, "register completions: %v\n", err)
		}
	}
}

// override sets *dst to val when val is not the zero value and the named
// flag was not set on the command line.
func override[T comparable](flags *pflag.FlagSet, name string, dst *T, val T) {
	var zero T
	if val == zero || flags.Changed(name) {
		return
	}

	*dst = val
}

func severityStrings() []string {
	out := make([]string, 0, len(diagnostic.AllSeverities()))
	for _, s := range diagnostic.AllSeverities() {
		out = append(out, string(s))
	}

	return out
}

func parseSeverity(s string) (diagnostic.Severity, error) {
	for _, sev := range diagnostic.AllSeverities() {
		if strings.EqualFold(s, string(sev)) {
			return sev, nil
		}
	}

	return "", fmt.Errorf("%w: unknown severity %q", ErrInvalidArgument, s)
}
