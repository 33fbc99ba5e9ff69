package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"radioscribe/internal/config"

	"golang.org/x/sync/errgroup"
)

// BatchOptions configures a multi-file run.
type BatchOptions struct {
	Inputs        []string
	OutputDir     string
	Merge         config.MergeSettings
	Transcript    bool
	MaxConcurrent int
	NoAsync       bool
}

type indexedResult struct {
	Index  int
	Result *Result
}

// RunBatch processes every input transcript and returns the results in
// input order. Files are independent, so they run concurrently with bounded
// parallelism unless NoAsync forces one at a time.
func RunBatch(ctx context.Context, opts BatchOptions) ([]Result, error) {
	if opts.NoAsync || opts.MaxConcurrent <= 1 || len(opts.Inputs) <= 1 {
		return runSequential(ctx, opts)
	}

	slog.Info("starting concurrent batch",
		"files", len(opts.Inputs),
		"max_concurrent", opts.MaxConcurrent)

	var (
		mu      sync.Mutex
		results []indexedResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxConcurrent)

	for i, input := range opts.Inputs {
		i, input := i, input
		g.Go(func() error {
			res, err := ProcessFile(gctx, fileOptions(opts, input))
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			mu.Lock()
			results = append(results, indexedResult{Index: i, Result: res})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	ordered := make([]Result, 0, len(results))
	for _, r := range results {
		ordered = append(ordered, *r.Result)
	}
	return ordered, nil
}

func runSequential(ctx context.Context, opts BatchOptions) ([]Result, error) {
	results := make([]Result, 0, len(opts.Inputs))
	for i, input := range opts.Inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		slog.Info("processing file", "file", fmt.Sprintf("%d/%d", i+1, len(opts.Inputs)))
		res, err := ProcessFile(ctx, fileOptions(opts, input))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		results = append(results, *res)
	}
	return results, nil
}

func fileOptions(opts BatchOptions, input string) Options {
	return Options{
		InputPath:  input,
		OutputDir:  opts.OutputDir,
		Merge:      opts.Merge,
		Transcript: opts.Transcript,
	}
}
