// Package log builds [log/slog] handlers for rovo's command line tools.
//
// Three output formats are supported: [FormatJSON] and [FormatLogfmt] use
// the standard library handlers, and [FormatText] uses a styled
// [charm.land/log/v2] logger meant for humans on a terminal. Levels are
// [LevelError], [LevelWarn], [LevelInfo], and [LevelDebug].
//
// Use [NewHandler] directly, or [Config] to wire the level and format to CLI
// flags with [github.com/spf13/pflag] and shell completions with
// [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
