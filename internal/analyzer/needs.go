package analyzer

import (
	"fmt"
	"strings"
)

// TechniqueNeed is the heuristic verdict for one enhancement technique,
// with the evidence that produced it. The level is a pure function of
// the evidence for the call.
type TechniqueNeed struct {
	Level    NeedLevel `json:"level"`
	Evidence []string  `json:"evidence,omitempty"`
}

// EnhancementNeeds holds one verdict per technique.
type EnhancementNeeds struct {
	GoldenShadow   TechniqueNeed `json:"golden_shadow"`
	Environmental  TechniqueNeed `json:"environmental"`
	ActionScene    TechniqueNeed `json:"action_scene"`
	ProseSmoothing TechniqueNeed `json:"prose_smoothing"`
	Repetition     TechniqueNeed `json:"repetition"`
}

// EnhancementNeeds evaluates all five techniques against the text.
func (a *Analyzer) EnhancementNeeds(text string) EnhancementNeeds {
	return EnhancementNeeds{
		GoldenShadow:   a.GoldenShadowNeed(text),
		Environmental:  a.EnvironmentalNeed(text),
		ActionScene:    a.ActionSceneNeed(text),
		ProseSmoothing: a.ProseSmoothingNeed(text),
		Repetition:     a.RepetitionNeed(text),
	}
}

// GoldenShadowNeed is high when any proper noun occurs at most twice,
// or when plot-indicator keywords are present.
func (a *Analyzer) GoldenShadowNeed(text string) TechniqueNeed {
	need := TechniqueNeed{Level: NeedLow}
	focus := a.CharacterFocus(text)
	for _, name := range focus.Names {
		if focus.Occurrences[name] <= 2 {
			need.Level = NeedHigh
			need.Evidence = append(need.Evidence,
				fmt.Sprintf("underdeveloped character %q (%d mention(s))", name, focus.Occurrences[name]))
		}
	}
	if a.HasPlotIndicators(text) {
		need.Level = NeedHigh
		need.Evidence = append(need.Evidence, "plot-indicator keywords present")
	}
	return need
}

// EnvironmentalNeed is high when fewer than three sensory categories
// are present or no setting keyword occurs.
func (a *Analyzer) EnvironmentalNeed(text string) TechniqueNeed {
	need := TechniqueNeed{Level: NeedLow}
	missing := a.MissingSensoryCategories(text)
	present := len(sensoryCategoryOrder) - len(missing)
	if present < 3 {
		need.Level = NeedHigh
		need.Evidence = append(need.Evidence,
			fmt.Sprintf("only %d of %d sensory categories present (missing: %s)",
				present, len(sensoryCategoryOrder), strings.Join(missing, ", ")))
	}
	if !a.HasSettingKeyword(text) {
		need.Level = NeedHigh
		need.Evidence = append(need.Evidence, "no setting keyword present")
	}
	return need
}

// ActionSceneNeed is not applicable outside action scenes; inside one
// it is medium only when time-manipulation, sensory, and
// environment-interaction cues are all present, high otherwise.
func (a *Analyzer) ActionSceneNeed(text string) TechniqueNeed {
	if a.SceneType(text) != SceneAction {
		return TechniqueNeed{
			Level:    NeedNotApplicable,
			Evidence: []string{"scene is not action-classified"},
		}
	}
	need := TechniqueNeed{Level: NeedHigh}
	var missing []string
	if !a.HasTimeManipulationCue(text) {
		missing = append(missing, "time manipulation")
	}
	if !a.HasSensoryCue(text) {
		missing = append(missing, "sensory detail")
	}
	if !a.HasEnvironmentInteractionCue(text) {
		missing = append(missing, "environmental interaction")
	}
	if len(missing) == 0 {
		need.Level = NeedMedium
		need.Evidence = []string{"all action texture cues present"}
	} else {
		need.Evidence = []string{"missing cues: " + strings.Join(missing, ", ")}
	}
	return need
}

// ProseSmoothingNeed is high when sentence-length variety is below 0.3,
// no transition word occurs, or every paragraph has the same length.
func (a *Analyzer) ProseSmoothingNeed(text string) TechniqueNeed {
	need := TechniqueNeed{Level: NeedLow}

	sentences := SplitSentences(text)
	if len(sentences) > 0 {
		distinct := make(map[int]struct{})
		for _, s := range sentences {
			distinct[CountWords(s)] = struct{}{}
		}
		ratio := float64(len(distinct)) / float64(len(sentences))
		if ratio < 0.3 {
			need.Level = NeedHigh
			need.Evidence = append(need.Evidence,
				fmt.Sprintf("sentence-length variety %.2f below 0.30", ratio))
		}
	}

	if !a.HasTransitionWords(text) {
		need.Level = NeedHigh
		need.Evidence = append(need.Evidence, "no transition words present")
	}

	paragraphs := SplitParagraphs(text)
	if len(paragraphs) > 1 {
		uniform := true
		first := CountWords(paragraphs[0])
		for _, p := range paragraphs[1:] {
			if CountWords(p) != first {
				uniform = false
				break
			}
		}
		if uniform {
			need.Level = NeedHigh
			need.Evidence = append(need.Evidence, "all paragraphs share identical length")
		}
	}

	return need
}

// RepetitionNeed tiers severity by how many words longer than three
// characters occur more than three times: high above five such words,
// medium above two, low otherwise.
func (a *Analyzer) RepetitionNeed(text string) TechniqueNeed {
	over := 0
	for _, entry := range a.RepeatedWords(text) {
		if entry.Count > 3 {
			over++
		}
	}
	need := TechniqueNeed{Level: NeedLow}
	switch {
	case over > 5:
		need.Level = NeedHigh
	case over > 2:
		need.Level = NeedMedium
	}
	if over > 0 {
		need.Evidence = append(need.Evidence,
			fmt.Sprintf("%d word(s) repeated more than 3 times", over))
	}
	return need
}
