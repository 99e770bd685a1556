// Package enhancer expands prose text through a fixed five-stage
// pipeline: character development (Golden Shadow), environmental
// detail, action-scene intensification, prose smoothing, and
// synonym-based repetition elimination. Stages run in that order, each
// consuming the previous stage's output and re-running the heuristic
// analysis it needs against the current text.
package enhancer

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/proseamp/proseamp/internal/analyzer"
)

// DefaultTargetPercent is the expansion target used by Enhance.
const DefaultTargetPercent = 200

// Options gates the five techniques independently. The action stage is
// additionally a no-op unless the text classifies as an action scene,
// regardless of its flag.
type Options struct {
	GoldenShadow          bool `json:"golden_shadow"`
	Environmental         bool `json:"environmental"`
	ActionScene           bool `json:"action_scene"`
	ProseSmoothing        bool `json:"prose_smoothing"`
	RepetitionElimination bool `json:"repetition_elimination"`
}

// DefaultOptions enables every technique.
func DefaultOptions() Options {
	return Options{
		GoldenShadow:          true,
		Environmental:         true,
		ActionScene:           true,
		ProseSmoothing:        true,
		RepetitionElimination: true,
	}
}

func (o Options) anyEnabled() bool {
	return o.GoldenShadow || o.Environmental || o.ActionScene ||
		o.ProseSmoothing || o.RepetitionElimination
}

// Enhancer orchestrates the stage pipeline. It owns its Analyzer for
// the duration of each call tree and holds no per-call state, so a
// single instance may serve concurrent calls.
type Enhancer struct {
	analyzer *analyzer.Analyzer
	rng      Rand
	logger   *slog.Logger
}

// Option customizes an Enhancer.
type Option func(*Enhancer)

// WithRand substitutes the random source used by the probabilistic
// stages. Tests use this to make stage output deterministic.
func WithRand(rng Rand) Option {
	return func(e *Enhancer) {
		e.rng = rng
	}
}

// WithLogger configures a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enhancer) {
		e.logger = logger
	}
}

func New(options ...Option) *Enhancer {
	e := &Enhancer{
		analyzer: analyzer.New(),
		rng:      newDefaultRand(),
		logger:   slog.Default(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Enhance runs the pipeline with every technique enabled.
func (e *Enhancer) Enhance(text string, targetPercent int) string {
	return e.CustomEnhance(text, targetPercent, DefaultOptions())
}

// CustomEnhance runs the five stages in fixed order, skipping disabled
// ones, then appends a Markdown summary block. Stages are best-effort:
// none guarantees hitting targetPercent, and none is skipped merely
// because the target has already been met. A final fixed top-up
// paragraph is added only when the running expansion is still short of
// the target and at least one technique was enabled.
func (e *Enhancer) CustomEnhance(text string, targetPercent int, opts Options) string {
	runID := uuid.NewString()
	originalWords := analyzer.CountWords(text)
	targetWords := originalWords * targetPercent / 100

	e.logger.Debug("starting enhancement run",
		"run_id", runID,
		"original_words", originalWords,
		"target_percent", targetPercent,
		"target_words", targetWords,
	)

	stages := []Stage{
		&goldenShadowStage{a: e.analyzer},
		&environmentalStage{a: e.analyzer},
		&actionStage{a: e.analyzer, rng: e.rng},
		&smoothingStage{a: e.analyzer, rng: e.rng},
		&repetitionStage{a: e.analyzer, rng: e.rng},
	}

	current := text
	var applied []string
	for _, stage := range stages {
		if !stage.Enabled(opts) {
			e.logger.Debug("stage disabled", "run_id", runID, "stage", stage.Name())
			continue
		}
		next, ok := stage.Transform(current)
		if ok {
			applied = append(applied, stage.Name())
		}
		e.logger.Debug("stage complete",
			"run_id", runID,
			"stage", stage.Name(),
			"applied", ok,
			"words", analyzer.CountWords(next),
		)
		current = next
	}

	if opts.anyEnabled() && expansionPercent(originalWords, analyzer.CountWords(current)) < float64(targetPercent) {
		if current == "" {
			current = topUpParagraph
		} else {
			current = current + "\n\n" + topUpParagraph
		}
	}

	e.logger.Info("enhancement run complete",
		"run_id", runID,
		"original_words", originalWords,
		"final_words", analyzer.CountWords(current),
		"techniques", len(applied),
	)

	return current + "\n\n" + buildSummary(text, current, targetPercent, applied)
}

// expansionPercent is 0 when the original count is 0.
func expansionPercent(original, final int) float64 {
	if original == 0 {
		return 0
	}
	return float64(final) / float64(original) * 100
}
