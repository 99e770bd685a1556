package enhancer

import (
	"strings"

	"github.com/proseamp/proseamp/internal/analyzer"
)

// Stage is one step of the enhancement pipeline. Transform returns the
// new text plus whether the technique counts as applied for the
// summary; each stage re-derives whatever analysis it needs from the
// current text, never from the original, because earlier stages may
// already have changed it.
type Stage interface {
	Name() string
	Enabled(opts Options) bool
	Transform(text string) (string, bool)
}

// splitParagraphs keeps a single empty paragraph for empty input so
// the match-independent insertions still have an anchor.
func splitParagraphs(text string) []string {
	paragraphs := analyzer.SplitParagraphs(text)
	if len(paragraphs) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return paragraphs
}

func joinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}

// appendSentence appends prose to a paragraph, keeping empty anchors
// from growing a leading space.
func appendSentence(paragraph, sentence string) string {
	if strings.TrimSpace(paragraph) == "" {
		return sentence
	}
	return paragraph + " " + sentence
}

// insertParagraphAfter inserts a paragraph after index i, appending at
// the end when i is past the slice.
func insertParagraphAfter(paragraphs []string, i int, paragraph string) []string {
	if i >= len(paragraphs)-1 {
		return append(paragraphs, paragraph)
	}
	out := make([]string, 0, len(paragraphs)+1)
	out = append(out, paragraphs[:i+1]...)
	out = append(out, paragraph)
	out = append(out, paragraphs[i+1:]...)
	return out
}
