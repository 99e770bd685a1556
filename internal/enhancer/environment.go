package enhancer

import (
	"github.com/proseamp/proseamp/internal/analyzer"
)

// environmentalStage grounds the prose in its setting. It fires when
// no setting keyword occurs or fewer than three sensory categories are
// present: each missing category gets its fixed sentence appended to
// an anchor paragraph (the first containing a setting keyword, else
// the second, else the first), and a fixed mundane-object paragraph is
// inserted right after the anchor.
type environmentalStage struct {
	a *analyzer.Analyzer
}

func (s *environmentalStage) Name() string { return "Environmental detail" }

func (s *environmentalStage) Enabled(opts Options) bool { return opts.Environmental }

func (s *environmentalStage) Transform(text string) (string, bool) {
	missing := s.a.MissingSensoryCategories(text)
	hasSetting := s.a.HasSettingKeyword(text)
	if hasSetting && len(missing) <= 1 {
		return text, true
	}

	paragraphs := splitParagraphs(text)
	anchor := -1
	for i := range paragraphs {
		if s.a.HasSettingKeyword(paragraphs[i]) {
			anchor = i
			break
		}
	}
	if anchor == -1 {
		if len(paragraphs) > 1 {
			anchor = 1
		} else {
			anchor = 0
		}
	}

	for _, cat := range missing {
		paragraphs[anchor] = appendSentence(paragraphs[anchor], sensorySentences[cat])
	}
	paragraphs = insertParagraphAfter(paragraphs, anchor, mundaneObjectParagraph)

	return joinParagraphs(paragraphs), true
}
