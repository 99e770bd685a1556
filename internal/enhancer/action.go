package enhancer

import (
	"github.com/proseamp/proseamp/internal/analyzer"
)

// actionStage intensifies action scenes. It is a no-op unless the
// current text classifies as action. Cue presence is judged once over
// the whole text; every paragraph containing an action verb then gets
// the fixed sentence for each absent cue, plus a 50%-probability
// stillness-contrast sentence drawn independently per paragraph.
// Original paragraphs are only ever appended to, never removed.
type actionStage struct {
	a   *analyzer.Analyzer
	rng Rand
}

func (s *actionStage) Name() string { return "Action scene intensification" }

func (s *actionStage) Enabled(opts Options) bool { return opts.ActionScene }

func (s *actionStage) Transform(text string) (string, bool) {
	if s.a.SceneType(text) != analyzer.SceneAction {
		return text, false
	}

	hasTime := s.a.HasTimeManipulationCue(text)
	hasSense := s.a.HasSensoryCue(text)
	hasEnv := s.a.HasEnvironmentInteractionCue(text)

	paragraphs := splitParagraphs(text)
	for i := range paragraphs {
		if !s.a.ContainsActionVerb(paragraphs[i]) {
			continue
		}
		if !hasTime {
			paragraphs[i] = appendSentence(paragraphs[i], timeDilationSentence)
		}
		if !hasSense {
			paragraphs[i] = appendSentence(paragraphs[i], heightenedSensesSentence)
		}
		if !hasEnv {
			paragraphs[i] = appendSentence(paragraphs[i], environmentParticipantSentence)
		}
		if s.rng.Float64() < 0.5 {
			paragraphs[i] = appendSentence(paragraphs[i], stillnessContrastSentence)
		}
	}

	return joinParagraphs(paragraphs), true
}
