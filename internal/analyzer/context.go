package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NarrativePosition classifies where in a story this excerpt sits.
// Evaluation order is introduction, then climax, then resolution; a
// later match overwrites an earlier one and the default is middle.
// The precedence is a fixed design choice, not derived from position
// within the text.
func (a *Analyzer) NarrativePosition(text string) NarrativePosition {
	lower := strings.ToLower(text)
	position := PositionMiddle
	if containsAnyKeyword(lower, introductionCues) {
		position = PositionBeginning
	}
	if containsAnyKeyword(lower, climaxCues) {
		position = PositionClimax
	}
	if containsAnyKeyword(lower, resolutionCues) {
		position = PositionResolution
	}
	return position
}

// CharacterFocus extracts candidate character names with the
// capitalization heuristic: any token except the first word of the
// text whose first letter is uppercase, with punctuation stripped from
// the trailing edge only. Deliberately imprecise (sentence-initial
// words and capitalized non-names are counted); the heuristic itself
// is the contract.
func (a *Analyzer) CharacterFocus(text string) CharacterFocus {
	focus := CharacterFocus{
		Occurrences: make(map[string]int),
		PointOfView: POVUnclear,
	}

	for i, tok := range strings.Fields(text) {
		if i == 0 {
			continue
		}
		name := strings.TrimRight(tok, trailingPunct)
		if name == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsUpper(r) {
			continue
		}
		if _, seen := focus.Occurrences[name]; !seen {
			focus.Names = append(focus.Names, name)
		}
		focus.Occurrences[name]++
	}

	for _, tok := range tokenize(text) {
		if _, ok := firstPersonPronouns[tok]; ok {
			focus.Pronouns.First++
		}
		if _, ok := secondPersonPronouns[tok]; ok {
			focus.Pronouns.Second++
		}
		if _, ok := thirdPersonPronouns[tok]; ok {
			focus.Pronouns.Third++
		}
	}

	switch {
	case focus.Pronouns.First > 0:
		focus.PointOfView = POVFirstPerson
	case focus.Pronouns.Third > 0:
		focus.PointOfView = POVThirdPerson
	}

	return focus
}

// SceneType counts action verbs against dialogue markers (quoted spans
// plus speech-tag verbs). Action fires above five hits, dialogue fires
// above five hits and overrides action; otherwise exposition.
func (a *Analyzer) SceneType(text string) SceneType {
	tokens := tokenize(text)
	actionHits := countTokenHits(tokens, actionVerbs)
	dialogueHits := len(quotedSpan.FindAllString(text, -1)) + countTokenHits(tokens, speechTagVerbs)

	scene := SceneExposition
	if actionHits > 5 {
		scene = SceneAction
	}
	if dialogueHits > 5 {
		scene = SceneDialogue
	}
	return scene
}

// Mood scans the positive, negative, and suspense keyword sets in that
// order; a later truthy result overrides an earlier one. Default is
// neutral.
func (a *Analyzer) Mood(text string) Mood {
	lower := strings.ToLower(text)
	mood := MoodNeutral
	if containsAnyKeyword(lower, positiveMoodWords) {
		mood = MoodPositive
	}
	if containsAnyKeyword(lower, negativeMoodWords) {
		mood = MoodNegative
	}
	if containsAnyKeyword(lower, suspenseMoodWords) {
		mood = MoodSuspenseful
	}
	return mood
}

// HasSettingKeyword reports whether any setting keyword occurs.
func (a *Analyzer) HasSettingKeyword(text string) bool {
	return containsAnyKeyword(strings.ToLower(text), settingKeywords)
}

// PresentSensoryCategories returns which of the four sensory keyword
// categories have at least one hit.
func (a *Analyzer) PresentSensoryCategories(text string) map[string]bool {
	lower := strings.ToLower(text)
	present := make(map[string]bool, len(sensoryCategoryOrder))
	for _, cat := range sensoryCategoryOrder {
		present[cat] = containsAnyKeyword(lower, sensoryKeywords[cat])
	}
	return present
}

// MissingSensoryCategories lists absent categories in canonical order.
func (a *Analyzer) MissingSensoryCategories(text string) []string {
	present := a.PresentSensoryCategories(text)
	var missing []string
	for _, cat := range sensoryCategoryOrder {
		if !present[cat] {
			missing = append(missing, cat)
		}
	}
	return missing
}

// HasTransitionWords reports whether any transition word occurs.
func (a *Analyzer) HasTransitionWords(text string) bool {
	return containsAnyKeyword(strings.ToLower(text), transitionWords)
}

// HasPlotIndicators reports whether any plot-indicator keyword occurs.
func (a *Analyzer) HasPlotIndicators(text string) bool {
	return containsAnyKeyword(strings.ToLower(text), plotIndicatorKeywords)
}

// ContainsActionVerb reports whether the text has at least one
// action-verb token.
func (a *Analyzer) ContainsActionVerb(text string) bool {
	return countTokenHits(tokenize(text), actionVerbs) > 0
}

// HasTimeManipulationCue reports time-dilation language.
func (a *Analyzer) HasTimeManipulationCue(text string) bool {
	return containsAnyKeyword(strings.ToLower(text), timeManipulationCues)
}

// HasSensoryCue reports whether any sensory category is present.
func (a *Analyzer) HasSensoryCue(text string) bool {
	for _, present := range a.PresentSensoryCategories(text) {
		if present {
			return true
		}
	}
	return false
}

// HasEnvironmentInteractionCue reports environment-as-participant
// language.
func (a *Analyzer) HasEnvironmentInteractionCue(text string) bool {
	return containsAnyKeyword(strings.ToLower(text), environmentInteractionCues)
}
