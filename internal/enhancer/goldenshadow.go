package enhancer

import (
	"fmt"
	"strings"

	"github.com/proseamp/proseamp/internal/analyzer"
)

// goldenShadowStage deepens underdeveloped characters. A character
// counts as underdeveloped when its proper noun occurs at most twice;
// each one gets a fixed depth sentence appended to the paragraph of
// its first occurrence. When plot-indicator keywords fire, one fixed
// stakes paragraph is inserted after the second paragraph (or at the
// end when fewer than two exist).
type goldenShadowStage struct {
	a *analyzer.Analyzer
}

func (s *goldenShadowStage) Name() string { return "Golden Shadow (character development)" }

func (s *goldenShadowStage) Enabled(opts Options) bool { return opts.GoldenShadow }

func (s *goldenShadowStage) Transform(text string) (string, bool) {
	focus := s.a.CharacterFocus(text)
	paragraphs := splitParagraphs(text)

	for _, name := range focus.Names {
		if focus.Occurrences[name] > 2 {
			continue
		}
		for i := range paragraphs {
			if strings.Contains(paragraphs[i], name) {
				paragraphs[i] = appendSentence(paragraphs[i], fmt.Sprintf(characterDepthTemplate, name))
				break
			}
		}
	}

	if s.a.HasPlotIndicators(text) {
		if len(paragraphs) >= 2 {
			paragraphs = insertParagraphAfter(paragraphs, 1, plotStakesParagraph)
		} else {
			paragraphs = append(paragraphs, plotStakesParagraph)
		}
	}

	return joinParagraphs(paragraphs), true
}
