package diagnostic_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/rovo/diagnostic"
)

func TestConfigNewValidator(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		rules   string
		want    []string
		wantErr error
	}{
		"default": {
			rules: diagnostic.RuleStatusRange,
			want:  []string{"status-range"},
		},
		"several rules keep order": {
			rules: "duplicate-id, status-range,standard-status",
			want:  []string{"duplicate-id", "status-range", "standard-status"},
		},
		"repeated names": {
			rules: "status-range,status-range",
			want:  []string{"status-range"},
		},
		"empty selection": {
			rules: "",
			want:  []string{},
		},
		"unknown rule": {
			rules:   "status-range,spelling",
			wantErr: diagnostic.ErrUnknownRule,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := diagnostic.NewConfig()
			cfg.Rules = tc.rules

			v, err := cfg.NewValidator()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, v.RuleNames())
		})
	}
}

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := diagnostic.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	flag := flags.Lookup("rules")
	require.NotNil(t, flag)
	assert.Equal(t, "r", flag.Shorthand)
	assert.Equal(t, diagnostic.RuleStatusRange, flag.DefValue)

	require.NoError(t, flags.Parse([]string{"--rules", "example-status"}))
	assert.Equal(t, "example-status", cfg.Rules)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := diagnostic.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	completionFn, ok := cmd.GetFlagCompletionFunc("rules")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, []string{"duplicate-id", "example-status", "standard-status", "status-range"}, values)
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := diagnostic.DefaultRegistry()
	for _, name := range reg.Names() {
		assert.Equal(t, name, reg[name]().Name())
	}
}
