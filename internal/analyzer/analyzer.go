// Package analyzer classifies prose text with regular-expression and
// keyword heuristics: narrative position, point of view, scene type,
// mood, per-technique enhancement needs, and repetition patterns.
//
// Every operation is a pure function of its text argument. There is no
// semantic understanding here, only pattern matching and frequency
// counting; the classifications are heuristic verdicts, and their exact
// precedence rules are part of the contract.
package analyzer

import (
	"regexp"
	"strings"
)

// Classification enums. String-valued so they render directly into the
// Markdown report and JSON responses.
type (
	NarrativePosition string
	PointOfView       string
	SceneType         string
	Mood              string
	NeedLevel         string
)

const (
	PositionBeginning  NarrativePosition = "beginning"
	PositionMiddle     NarrativePosition = "middle"
	PositionClimax     NarrativePosition = "climax"
	PositionResolution NarrativePosition = "resolution"

	POVFirstPerson PointOfView = "first-person"
	POVThirdPerson PointOfView = "third-person"
	POVUnclear     PointOfView = "unclear"

	SceneAction     SceneType = "action"
	SceneDialogue   SceneType = "dialogue"
	SceneExposition SceneType = "exposition"
	SceneMixed      SceneType = "mixed"

	MoodPositive    Mood = "positive"
	MoodNegative    Mood = "negative"
	MoodSuspenseful Mood = "suspenseful"
	MoodNeutral     Mood = "neutral"

	NeedLow           NeedLevel = "low"
	NeedMedium        NeedLevel = "medium"
	NeedHigh          NeedLevel = "high"
	NeedNotApplicable NeedLevel = "not-applicable"
)

var (
	wordPattern    = regexp.MustCompile(`[a-z0-9]+`)
	sentenceEnd    = regexp.MustCompile(`[.!?]+`)
	quotedSpan     = regexp.MustCompile(`["\x{201c}][^"\x{201c}\x{201d}]*["\x{201d}]`)
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
)

const trailingPunct = ".,;:!?\"')"

// Analyzer performs heuristic prose analysis. It holds no mutable
// state; a single instance is safe for concurrent use.
type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

// PronounCounts tallies pronoun occurrences by grammatical person.
type PronounCounts struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

// CharacterFocus is the proper-noun extraction result. Names is in
// first-encountered order; Occurrences counts capitalized mentions.
type CharacterFocus struct {
	Names       []string       `json:"names"`
	Occurrences map[string]int `json:"occurrences"`
	PointOfView PointOfView    `json:"point_of_view"`
	Pronouns    PronounCounts  `json:"pronouns"`
}

// Report is the full analysis bundle for one text.
type Report struct {
	WordCount      int                `json:"word_count"`
	CharCount      int                `json:"char_count"`
	AvgSentenceLen float64            `json:"avg_sentence_length"`
	Position       NarrativePosition  `json:"narrative_position"`
	Characters     CharacterFocus     `json:"characters"`
	Scene          SceneType          `json:"scene_type"`
	Mood           Mood               `json:"mood"`
	Needs          EnhancementNeeds   `json:"enhancement_needs"`
	Repetition     RepetitionFindings `json:"repetition"`
}

// CountWords counts non-empty whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Analyze computes the full report. Deterministic: identical text
// yields an identical report.
func (a *Analyzer) Analyze(text string) Report {
	return Report{
		WordCount:      CountWords(text),
		CharCount:      len(text),
		AvgSentenceLen: AverageSentenceLength(text),
		Position:       a.NarrativePosition(text),
		Characters:     a.CharacterFocus(text),
		Scene:          a.SceneType(text),
		Mood:           a.Mood(text),
		Needs:          a.EnhancementNeeds(text),
		Repetition:     a.RepetitionFindings(text),
	}
}

// tokenize lowercases and extracts alphanumeric tokens.
func tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// SplitSentences splits on terminal punctuation runs and drops empty
// fragments.
func SplitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// SplitParagraphs splits on blank lines and drops empty blocks.
func SplitParagraphs(text string) []string {
	parts := paragraphSplit.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}
	return paragraphs
}

// AverageSentenceLength is 0 when there are no sentences.
func AverageSentenceLength(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += CountWords(s)
	}
	return float64(total) / float64(len(sentences))
}

// containsAnyKeyword reports whether any keyword occurs as a substring
// of the lowercased text.
func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// countTokenHits counts tokens that appear in the keyword list.
func countTokenHits(tokens []string, keywords []string) int {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[kw] = struct{}{}
	}
	hits := 0
	for _, tok := range tokens {
		if _, ok := set[tok]; ok {
			hits++
		}
	}
	return hits
}
