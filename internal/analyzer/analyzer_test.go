package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t  ", 0},
		{"single word", "statue", 1},
		{"simple sentence", "The old statue stood alone.", 5},
		{"runs of whitespace", "one\t\ttwo\n\nthree   four", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.text); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := New()
	text := "Sarah walked into the dark forest. She heard a strange sound. The mission was dangerous and the statue watched."
	first := a.Analyze(text)
	second := a.Analyze(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.Render() != second.Render() {
		t.Error("rendered reports differ across identical calls")
	}
}

func TestAnalyzeExpositionScene(t *testing.T) {
	// End-to-end check: few action verbs, no dialogue, third-person
	// pronouns present but no first-person ones.
	a := New()
	report := a.Analyze("Sarah walked. She looked at the statue. It was old.")

	if report.Scene != SceneExposition {
		t.Errorf("scene = %s, want %s", report.Scene, SceneExposition)
	}
	if report.Characters.PointOfView != POVThirdPerson {
		t.Errorf("pov = %s, want %s", report.Characters.PointOfView, POVThirdPerson)
	}
	if report.Characters.Pronouns.First != 0 {
		t.Errorf("first-person pronouns = %d, want 0", report.Characters.Pronouns.First)
	}
}

func TestSceneTypeThresholdsAndPrecedence(t *testing.T) {
	actionHeavy := "He ran and jumped and dodged. She grabbed the rail and threw a stone, then struck and kicked and lunged."
	dialogueHeavy := `"Hi," she said. "Why," he asked. "Go," she replied. "No," he whispered. "Stay," she shouted. "Now," he muttered.`
	both := actionHeavy + " " + dialogueHeavy

	tests := []struct {
		name string
		text string
		want SceneType
	}{
		{"calm prose is exposition", "The statue stood in the garden for many years.", SceneExposition},
		{"many action verbs", actionHeavy, SceneAction},
		{"many dialogue markers", dialogueHeavy, SceneDialogue},
		{"dialogue overrides action", both, SceneDialogue},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.SceneType(tt.text); got != tt.want {
				t.Errorf("SceneType = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNarrativePositionPrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want NarrativePosition
	}{
		{"default middle", "The statue stood in the garden.", PositionMiddle},
		{"introduction cue", "Once upon a cold evening the town woke.", PositionBeginning},
		{"climax overrides introduction", "Once upon a time, suddenly everything changed.", PositionClimax},
		{"resolution overrides climax", "Suddenly it ended, and in the end peace returned.", PositionResolution},
	}
	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.NarrativePosition(tt.text); got != tt.want {
				t.Errorf("NarrativePosition = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMoodPrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Mood
	}{
		{"default neutral", "The statue stood in the garden.", MoodNeutral},
		{"positive", "A warm smile and bright laughter filled the garden.", MoodPositive},
		{"negative overrides positive", "The smile faded into grief and pain.", MoodNegative},
		{"suspense overrides negative", "Grief hung in the silence while a shadow crept closer.", MoodSuspenseful},
	}
	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Mood(tt.text); got != tt.want {
				t.Errorf("Mood = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCharacterFocus(t *testing.T) {
	a := New()
	focus := a.CharacterFocus("Yesterday Marcus met Elena. Marcus smiled, and Elena waved back at Marcus.")

	if got := focus.Occurrences["Marcus"]; got != 3 {
		t.Errorf("Marcus occurrences = %d, want 3", got)
	}
	if got := focus.Occurrences["Elena"]; got != 2 {
		t.Errorf("Elena occurrences = %d, want 2", got)
	}
	// "Yesterday" is the first word of the text and must be skipped,
	// even though it is capitalized.
	if _, ok := focus.Occurrences["Yesterday"]; ok {
		t.Error("first word of text was extracted as a proper noun")
	}
}

func TestCharacterFocusFirstPersonWins(t *testing.T) {
	a := New()
	focus := a.CharacterFocus("I watched as she walked past them.")
	if focus.PointOfView != POVFirstPerson {
		t.Errorf("pov = %s, want %s", focus.PointOfView, POVFirstPerson)
	}
	if focus.Pronouns.Third == 0 {
		t.Error("third-person pronouns were not counted")
	}
}

func TestEmptyTextDefaults(t *testing.T) {
	a := New()
	report := a.Analyze("")

	if report.WordCount != 0 || report.CharCount != 0 {
		t.Errorf("counts = %d words, %d chars; want zeros", report.WordCount, report.CharCount)
	}
	if report.Position != PositionMiddle {
		t.Errorf("position = %s, want %s", report.Position, PositionMiddle)
	}
	if report.Characters.PointOfView != POVUnclear {
		t.Errorf("pov = %s, want %s", report.Characters.PointOfView, POVUnclear)
	}
	if report.Scene != SceneExposition {
		t.Errorf("scene = %s, want %s", report.Scene, SceneExposition)
	}
	if report.Mood != MoodNeutral {
		t.Errorf("mood = %s, want %s", report.Mood, MoodNeutral)
	}
	if len(report.Repetition.RepeatedWords) != 0 {
		t.Errorf("repeated words = %v, want none", report.Repetition.RepeatedWords)
	}
	if !strings.Contains(report.Render(), "# Text Analysis Report") {
		t.Error("empty-text report did not render")
	}
}

func TestAverageSentenceLengthGuard(t *testing.T) {
	if got := AverageSentenceLength(""); got != 0 {
		t.Errorf("AverageSentenceLength(\"\") = %f, want 0", got)
	}
	if got := AverageSentenceLength("one two three."); got != 3 {
		t.Errorf("AverageSentenceLength = %f, want 3", got)
	}
}
