// Package batch enhances many files concurrently. Failures are
// isolated per file: one unreadable input never stops the run.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/proseamp/proseamp/internal/analyzer"
	"github.com/proseamp/proseamp/internal/enhancer"
	"github.com/proseamp/proseamp/internal/storage"
)

// Result records the outcome for one input file.
type Result struct {
	Path          string
	OutPath       string
	OriginalWords int
	EnhancedWords int
	Err           error
}

type Runner struct {
	store       storage.Store
	enhancer    *enhancer.Enhancer
	concurrency int
	logger      *slog.Logger
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger configures a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func New(store storage.Store, enh *enhancer.Enhancer, concurrency int, options ...Option) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	r := &Runner{
		store:       store,
		enhancer:    enh,
		concurrency: concurrency,
		logger:      slog.Default(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run enhances every file matching pattern and saves the results under
// outDir, preserving base names. The returned slice has one entry per
// matched file in match order; per-file errors live on the entries.
func (r *Runner) Run(ctx context.Context, pattern, outDir string, targetPercent int, opts enhancer.Options) ([]Result, error) {
	paths, err := r.store.List(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("listing inputs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match pattern %q", pattern)
	}

	r.logger.Info("starting batch run",
		"files", len(paths),
		"target_percent", targetPercent,
		"concurrency", r.concurrency,
	)

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = r.enhanceFile(gctx, path, outDir, targetPercent, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch run: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	r.logger.Info("batch run complete", "files", len(results), "failed", failed)
	return results, nil
}

func (r *Runner) enhanceFile(ctx context.Context, path, outDir string, targetPercent int, opts enhancer.Options) Result {
	result := Result{
		Path:    path,
		OutPath: filepath.Join(outDir, filepath.Base(path)),
	}

	data, err := r.store.Load(ctx, path)
	if err != nil {
		result.Err = fmt.Errorf("loading %s: %w", path, err)
		r.logger.Warn("batch item failed", "path", path, "error", result.Err)
		return result
	}

	text := string(data)
	enhanced := r.enhancer.CustomEnhance(text, targetPercent, opts)

	if err := r.store.Save(ctx, result.OutPath, []byte(enhanced)); err != nil {
		result.Err = fmt.Errorf("saving %s: %w", result.OutPath, err)
		r.logger.Warn("batch item failed", "path", path, "error", result.Err)
		return result
	}

	result.OriginalWords = analyzer.CountWords(text)
	result.EnhancedWords = analyzer.CountWords(enhanced)
	r.logger.Debug("batch item complete",
		"path", path,
		"original_words", result.OriginalWords,
		"enhanced_words", result.EnhancedWords,
	)
	return result
}
