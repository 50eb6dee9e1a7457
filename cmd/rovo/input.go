package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"go.jacobcolvin.com/rovo/report"
)

const (
	stdinArg  = "-"
	stdinPath = "<stdin>"
)

type input struct {
	path    string
	content string
}

// process reads every argument and converts it with fn, running at most
// jobs conversions at once. Results keep argument order. No arguments means
// stdin.
func (a *app) process(ctx context.Context, args []string, jobs int, fn func(input) report.File) ([]report.File, error) {
	if len(args) == 0 {
		args = []string{stdinArg}
	}

	stdins := 0

	for _, arg := range args {
		if isStdin(arg) {
			stdins++
		}
	}

	if stdins > 1 {
		return nil, fmt.Errorf("%w: stdin (%q) given %d times", ErrInvalidArgument, stdinArg, stdins)
	}

	if jobs < 1 {
		return nil, fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalidArgument, jobs)
	}

	files := make([]report.File, len(args))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, arg := range args {
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err
			}

			in, err := a.read(arg)
			if err != nil {
				return err
			}

			files[i] = fn(in)

			slog.Debug("processed input",
				slog.String("path", in.path),
				slog.Int("annotations", len(files[i].Annotations)),
				slog.Int("diagnostics", len(files[i].Diagnostics)),
			)

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (a *app) read(arg string) (input, error) {
	if isStdin(arg) {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return input{}, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}

		return input{path: stdinPath, content: string(data)}, nil
	}

	data, err := os.ReadFile(arg) //nolint:gosec // Input paths come from CLI arguments.
	if err != nil {
		return input{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return input{path: arg, content: string(data)}, nil
}

func isStdin(arg string) bool {
	return arg == stdinArg
}
