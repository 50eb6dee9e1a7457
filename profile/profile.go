package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Profiler runs one profiling session. Create instances with
// [Config.NewProfiler].
type Profiler struct {
	cpuFile   *os.File
	traceFile *os.File
	Config
}

// Start applies the memory profile rate and begins CPU profiling and
// execution tracing when their paths are set.
func (p *Profiler) Start() error {
	if p.MemProfileRate > 0 {
		runtime.MemProfileRate = p.MemProfileRate
	}

	if p.CPU != "" {
		f, err := os.Create(p.CPU) //nolint:gosec // Profile path from CLI flag is expected.
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return errors.Join(fmt.Errorf("start cpu profile: %w", err), f.Close())
		}

		p.cpuFile = f
	}

	if p.Trace != "" {
		f, err := os.Create(p.Trace) //nolint:gosec // Trace path from CLI flag is expected.
		if err != nil {
			return errors.Join(fmt.Errorf("create trace: %w", err), p.stopCPU())
		}

		err = trace.Start(f)
		if err != nil {
			return errors.Join(fmt.Errorf("start trace: %w", err), f.Close(), p.stopCPU())
		}

		p.traceFile = f
	}

	return nil
}

// Stop ends CPU profiling and tracing, then writes the snapshot profiles.
// Stop is safe to call more than once.
func (p *Profiler) Stop() error {
	errs := []error{p.stopTrace(), p.stopCPU()}

	for _, snap := range []struct{ name, path string }{
		{"heap", p.Heap},
		{"goroutine", p.Goroutine},
	} {
		if snap.path == "" {
			continue
		}

		errs = append(errs, writeProfile(snap.name, snap.path))
	}

	return errors.Join(errs...)
}

func (p *Profiler) stopCPU() error {
	if p.cpuFile == nil {
		return nil
	}

	pprof.StopCPUProfile()

	f := p.cpuFile
	p.cpuFile = nil

	if err := f.Close(); err != nil {
		return fmt.Errorf("close cpu profile: %w", err)
	}

	return nil
}

func (p *Profiler) stopTrace() error {
	if p.traceFile == nil {
		return nil
	}

	trace.Stop()

	f := p.traceFile
	p.traceFile = nil

	if err := f.Close(); err != nil {
		return fmt.Errorf("close trace: %w", err)
	}

	return nil
}

func writeProfile(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile %q", name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	if name == "heap" {
		runtime.GC()
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("write %s profile: %w", name, err), f.Close())
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s profile: %w", name, err)
	}

	return nil
}
