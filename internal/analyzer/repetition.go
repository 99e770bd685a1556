package analyzer

import (
	"sort"
	"strings"
)

const (
	repeatedWordMinLen    = 3  // words must be longer than this
	repeatedWordThreshold = 2  // counts must exceed this
	repeatedWordLimit     = 10 // top N by count
	repeatedPhraseWindow  = 3
	repeatedPhraseLimit   = 5
	repeatedShapeLimit    = 3

	shortSentenceMax  = 8  // exclusive upper bound for "short"
	mediumSentenceMax = 15 // exclusive upper bound for "medium"
)

// WordCountEntry is one repeated-word finding.
type WordCountEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// PhraseCountEntry is one repeated 3-gram finding.
type PhraseCountEntry struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// ShapeCountEntry is one repeated sentence-shape finding. The shape key
// is the sentence's first word plus a length bucket.
type ShapeCountEntry struct {
	Shape string `json:"shape"`
	Count int    `json:"count"`
}

// RepetitionFindings bundles the three repetition finders.
type RepetitionFindings struct {
	RepeatedWords   []WordCountEntry   `json:"repeated_words"`
	RepeatedPhrases []PhraseCountEntry `json:"repeated_phrases"`
	RepeatedShapes  []ShapeCountEntry  `json:"repeated_shapes"`
}

// RepetitionFindings runs all three finders.
func (a *Analyzer) RepetitionFindings(text string) RepetitionFindings {
	return RepetitionFindings{
		RepeatedWords:   a.RepeatedWords(text),
		RepeatedPhrases: a.RepeatedPhrases(text),
		RepeatedShapes:  a.RepeatedSentenceShapes(text),
	}
}

// RepeatedWords finds lowercase alphanumeric tokens longer than three
// characters occurring more than twice: top ten by count descending,
// ties kept in first-encountered order.
func (a *Analyzer) RepeatedWords(text string) []WordCountEntry {
	counts := make(map[string]int)
	var order []string
	for _, tok := range tokenize(text) {
		if len(tok) <= repeatedWordMinLen {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	var entries []WordCountEntry
	for _, w := range order {
		if counts[w] > repeatedWordThreshold {
			entries = append(entries, WordCountEntry{Word: w, Count: counts[w]})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > repeatedWordLimit {
		entries = entries[:repeatedWordLimit]
	}
	return entries
}

// RepeatedPhrases slides a window of exactly three whitespace-delimited
// tokens over the lowercased text: counts above one, top five.
func (a *Analyzer) RepeatedPhrases(text string) []PhraseCountEntry {
	tokens := strings.Fields(strings.ToLower(text))
	counts := make(map[string]int)
	var order []string
	for i := 0; i+repeatedPhraseWindow <= len(tokens); i++ {
		phrase := strings.Join(tokens[i:i+repeatedPhraseWindow], " ")
		if counts[phrase] == 0 {
			order = append(order, phrase)
		}
		counts[phrase]++
	}

	var entries []PhraseCountEntry
	for _, p := range order {
		if counts[p] > 1 {
			entries = append(entries, PhraseCountEntry{Phrase: p, Count: counts[p]})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > repeatedPhraseLimit {
		entries = entries[:repeatedPhraseLimit]
	}
	return entries
}

// RepeatedSentenceShapes keys each sentence by its lowercased first
// word and a length bucket (short under 8 tokens, medium under 15,
// long otherwise): counts above two, top three.
func (a *Analyzer) RepeatedSentenceShapes(text string) []ShapeCountEntry {
	counts := make(map[string]int)
	var order []string
	for _, sentence := range SplitSentences(text) {
		fields := strings.Fields(sentence)
		if len(fields) == 0 {
			continue
		}
		bucket := "long"
		switch {
		case len(fields) < shortSentenceMax:
			bucket = "short"
		case len(fields) < mediumSentenceMax:
			bucket = "medium"
		}
		key := strings.ToLower(fields[0]) + "-" + bucket
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	var entries []ShapeCountEntry
	for _, k := range order {
		if counts[k] > 2 {
			entries = append(entries, ShapeCountEntry{Shape: k, Count: counts[k]})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > repeatedShapeLimit {
		entries = entries[:repeatedShapeLimit]
	}
	return entries
}
