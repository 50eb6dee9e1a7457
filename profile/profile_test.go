package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/rovo/profile"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	assert.False(t, cfg.Enabled())
	assert.Zero(t, cfg.MemProfileRate)
}

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	err := flags.Parse([]string{
		"--cpu-profile=cpu.prof",
		"--heap-profile=heap.prof",
		"--goroutine-profile=goroutine.prof",
		"--trace=trace.out",
		"--mem-profile-rate=4096",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Enabled())
	assert.Equal(t, "cpu.prof", cfg.CPU)
	assert.Equal(t, "heap.prof", cfg.Heap)
	assert.Equal(t, "goroutine.prof", cfg.Goroutine)
	assert.Equal(t, "trace.out", cfg.Trace)
	assert.Equal(t, 4096, cfg.MemProfileRate)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	completionFn, ok := cmd.GetFlagCompletionFunc("mem-profile-rate")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Empty(t, values)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func TestProfilerDisabled(t *testing.T) {
	t.Parallel()

	p := profile.NewConfig().NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
	require.NoError(t, p.Stop())
}

// CPU profiling and tracing are process-global, so this test does not run in
// parallel with others that start them.
func TestProfilerWritesOutputs(t *testing.T) {
	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.CPU = filepath.Join(dir, "cpu.prof")
	cfg.Heap = filepath.Join(dir, "heap.prof")
	cfg.Goroutine = filepath.Join(dir, "goroutine.prof")
	cfg.Trace = filepath.Join(dir, "trace.out")

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	for _, path := range []string{cfg.CPU, cfg.Heap, cfg.Goroutine, cfg.Trace} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
}

func TestProfilerBadPath(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	cfg.Heap = filepath.Join(t.TempDir(), "missing", "heap.prof")

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.Error(t, p.Stop())
}
