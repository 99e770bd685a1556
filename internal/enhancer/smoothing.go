package enhancer

import (
	"github.com/proseamp/proseamp/internal/analyzer"
)

// smoothingStage eases paragraph transitions. It is a no-op when the
// text already contains transition words; otherwise every paragraph
// after the first independently gets (at 50% probability) one of ten
// fixed transition phrases prepended, chosen uniformly.
type smoothingStage struct {
	a   *analyzer.Analyzer
	rng Rand
}

func (s *smoothingStage) Name() string { return "Prose smoothing" }

func (s *smoothingStage) Enabled(opts Options) bool { return opts.ProseSmoothing }

func (s *smoothingStage) Transform(text string) (string, bool) {
	if s.a.HasTransitionWords(text) {
		return text, true
	}

	paragraphs := splitParagraphs(text)
	for i := 1; i < len(paragraphs); i++ {
		if s.rng.Float64() < 0.5 {
			paragraphs[i] = transitionPhrases[s.rng.Intn(len(transitionPhrases))] + paragraphs[i]
		}
	}

	return joinParagraphs(paragraphs), true
}
