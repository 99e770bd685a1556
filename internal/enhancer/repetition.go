package enhancer

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/proseamp/proseamp/internal/analyzer"
)

// repetitionStage swaps repeated words for synonyms. Per flagged word:
// skipped when the word has four or fewer characters or no synonym
// table entry; otherwise ceil(60%) of its occurrences are chosen
// uniformly without replacement and each is replaced by a uniformly
// chosen synonym, preserving the original token's first-letter case.
type repetitionStage struct {
	a   *analyzer.Analyzer
	rng Rand
}

func (s *repetitionStage) Name() string { return "Repetition elimination" }

func (s *repetitionStage) Enabled(opts Options) bool { return opts.RepetitionElimination }

func (s *repetitionStage) Transform(text string) (string, bool) {
	current := text
	for _, entry := range s.a.RepeatedWords(text) {
		if len(entry.Word) <= 4 {
			continue
		}
		synonyms, ok := synonymTable[entry.Word]
		if !ok {
			continue
		}
		current = s.replaceOccurrences(current, entry.Word, entry.Count, synonyms)
	}
	return current, true
}

func (s *repetitionStage) replaceOccurrences(text, word string, count int, synonyms []string) string {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	n := int(math.Ceil(0.6 * float64(count)))
	if n > len(matches) {
		n = len(matches)
	}
	chosen := s.pickWithoutReplacement(len(matches), n)

	var b strings.Builder
	last := 0
	for i, m := range matches {
		if !chosen[i] {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(matchFirstLetterCase(text[m[0]:m[1]], synonyms[s.rng.Intn(len(synonyms))]))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// pickWithoutReplacement selects n distinct indexes from [0, total)
// via a partial Fisher-Yates shuffle.
func (s *repetitionStage) pickWithoutReplacement(total, n int) map[int]bool {
	indexes := make([]int, total)
	for i := range indexes {
		indexes[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(total-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}
	chosen := make(map[int]bool, n)
	for _, v := range indexes[:n] {
		chosen[v] = true
	}
	return chosen
}

func matchFirstLetterCase(original, replacement string) string {
	r, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(r) {
		return replacement
	}
	first, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(first)) + replacement[size:]
}
