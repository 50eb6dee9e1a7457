package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/rovo/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  log.Level
		slog  slog.Level
		err   bool
	}{
		"error":            {input: "error", want: log.LevelError, slog: slog.LevelError},
		"warn":             {input: "warn", want: log.LevelWarn, slog: slog.LevelWarn},
		"warning alias":    {input: "warning", want: log.LevelWarn, slog: slog.LevelWarn},
		"info":             {input: "info", want: log.LevelInfo, slog: slog.LevelInfo},
		"debug":            {input: "debug", want: log.LevelDebug, slog: slog.LevelDebug},
		"case insensitive": {input: "DeBuG", want: log.LevelDebug, slog: slog.LevelDebug},
		"unknown":          {input: "trace", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := log.ParseLevel(tc.input)
			if tc.err {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)
				assert.Empty(t, lvl)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, lvl)
			assert.Equal(t, tc.slog, lvl.SlogLevel())
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  log.Format
		err   bool
	}{
		"json":             {input: "json", want: log.FormatJSON},
		"logfmt":           {input: "logfmt", want: log.FormatLogfmt},
		"text":             {input: "text", want: log.FormatText},
		"case insensitive": {input: "LOGFMT", want: log.FormatLogfmt},
		"unknown":          {input: "xml", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := log.ParseFormat(tc.input)
			if tc.err {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, f)
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check  func(*testing.T, string)
		format log.Format
	}{
		"json": {
			format: log.FormatJSON,
			check: func(t *testing.T, out string) {
				t.Helper()

				var entry map[string]any

				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "scanned", entry["msg"])
				assert.Equal(t, "INFO", entry["level"])
				assert.Equal(t, "api.rs", entry["file"])
			},
		},
		"logfmt": {
			format: log.FormatLogfmt,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "level=INFO")
				assert.Contains(t, out, "msg=scanned")
				assert.Contains(t, out, "file=api.rs")
			},
		},
		"text": {
			format: log.FormatText,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "INFO")
				assert.Contains(t, out, "scanned")
				assert.Contains(t, out, "file=api.rs")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := slog.New(log.NewHandler(&buf, log.LevelInfo, tc.format))
			logger.Info("scanned", slog.String("file", "api.rs"))

			tc.check(t, buf.String())
		})
	}
}

func TestNewHandlerFiltersLevels(t *testing.T) {
	t.Parallel()

	for _, format := range []log.Format{log.FormatJSON, log.FormatLogfmt, log.FormatText} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := slog.New(log.NewHandler(&buf, log.LevelWarn, format))
			logger.Debug("hidden debug")
			logger.Info("hidden info")
			logger.Warn("shown warn")

			assert.NotContains(t, buf.String(), "hidden")
			assert.Contains(t, buf.String(), "shown warn")
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level  string
		format string
		err    bool
	}{
		"valid":          {level: "debug", format: "json"},
		"invalid level":  {level: "loud", format: "json", err: true},
		"invalid format": {level: "info", format: "yaml", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			handler, err := log.NewHandlerFromStrings(&buf, tc.level, tc.format)
			if tc.err {
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				assert.Nil(t, handler)

				return
			}

			require.NoError(t, err)
			slog.New(handler).Debug("visible")
			assert.Contains(t, buf.String(), "visible")
		})
	}
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	for flag, want := range map[string][]string{
		"log-level":  log.GetAllLevelStrings(),
		"log-format": log.GetAllFormatStrings(),
	} {
		completionFn, ok := cmd.GetFlagCompletionFunc(flag)
		require.True(t, ok, flag)

		values, directive := completionFn(cmd, nil, "")
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		assert.Equal(t, want, values)
	}

	require.NoError(t, cmd.Flags().Parse([]string{"--log-level", "error", "--log-format", "json"}))

	var buf bytes.Buffer

	handler, err := cfg.NewHandler(&buf)
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Warn("dropped")
	logger.Error("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestCustomFlagNames(t *testing.T) {
	t.Parallel()

	cfg := log.Flags{Level: "verbosity", Format: "output"}.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NotNil(t, flags.Lookup("verbosity"))
	require.NotNil(t, flags.Lookup("output"))
	assert.Equal(t, "info", flags.Lookup("verbosity").DefValue)
	assert.Equal(t, "text", flags.Lookup("output").DefValue)
}
