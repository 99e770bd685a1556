package analyzer

import (
	"strings"
	"testing"
)

func TestGoldenShadowNeed(t *testing.T) {
	tests := []struct {
		name string
		text string
		want NeedLevel
	}{
		{"underdeveloped character", "Yesterday Marcus arrived at the house and the house settled around him.", NeedHigh},
		{"plot indicator", "the secret weighed on everyone in the house", NeedHigh},
		{"developed characters, no plot words", "So Anna spoke. Anna waved. Anna left the garden happily after Anna sang.", NeedLow},
	}
	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.GoldenShadowNeed(tt.text); got.Level != tt.want {
				t.Errorf("level = %s (evidence %v), want %s", got.Level, got.Evidence, tt.want)
			}
		})
	}
}

func TestEnvironmentalNeed(t *testing.T) {
	rich := "In the room she saw the light, heard the hum, and felt the rough texture under a faint smell of dust."
	bare := "He deliberated. He reconsidered. He deliberated again."

	a := New()
	if got := a.EnvironmentalNeed(rich); got.Level != NeedLow {
		t.Errorf("rich text level = %s (evidence %v), want low", got.Level, got.Evidence)
	}
	if got := a.EnvironmentalNeed(bare); got.Level != NeedHigh {
		t.Errorf("bare text level = %s, want high", got.Level)
	}
}

func TestActionSceneNeed(t *testing.T) {
	a := New()

	calm := "The statue stood in the garden."
	if got := a.ActionSceneNeed(calm); got.Level != NeedNotApplicable {
		t.Errorf("calm level = %s, want not-applicable", got.Level)
	}

	plainAction := "He ran and jumped and dodged and grabbed and threw and struck the target."
	if got := a.ActionSceneNeed(plainAction); got.Level != NeedHigh {
		t.Errorf("plain action level = %s (evidence %v), want high", got.Level, got.Evidence)
	}

	texturedAction := plainAction + " Time seemed to stop; he saw every crack in the wall as a heartbeat passed."
	if got := a.ActionSceneNeed(texturedAction); got.Level != NeedMedium {
		t.Errorf("textured action level = %s (evidence %v), want medium", got.Level, got.Evidence)
	}
}

func TestProseSmoothingNeed(t *testing.T) {
	a := New()

	varied := "However, the day began quietly. Birds circled the old tower while the river ran below. Rain came. Nobody in the village minded the change of weather at all, least of all the ferryman."
	if got := a.ProseSmoothingNeed(varied); got.Level != NeedLow {
		t.Errorf("varied level = %s (evidence %v), want low", got.Level, got.Evidence)
	}

	monotone := strings.Repeat("The cat sat on the mat again. ", 8)
	if got := a.ProseSmoothingNeed(monotone); got.Level != NeedHigh {
		t.Errorf("monotone level = %s, want high", got.Level)
	}

	noTransitions := "The cat sat on the mat. A dog barked at the quiet gate outside."
	if got := a.ProseSmoothingNeed(noTransitions); got.Level != NeedHigh {
		t.Errorf("no-transition level = %s, want high", got.Level)
	}
}

func TestRepetitionNeed(t *testing.T) {
	wordTimes := func(w string, n int) string {
		return strings.TrimSpace(strings.Repeat(w+" ", n))
	}

	tests := []struct {
		name string
		text string
		want NeedLevel
	}{
		{"no repetition", "every word here differs from neighbor words", NeedLow},
		{"one heavy word", wordTimes("statue", 6), NeedLow},
		{"three heavy words", wordTimes("statue", 4) + " " + wordTimes("tower", 4) + " " + wordTimes("garden", 4), NeedMedium},
		{"six heavy words", wordTimes("statue", 4) + " " + wordTimes("tower", 4) + " " + wordTimes("garden", 4) + " " +
			wordTimes("window", 4) + " " + wordTimes("candle", 4) + " " + wordTimes("mirror", 4), NeedHigh},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.RepetitionNeed(tt.text); got.Level != tt.want {
				t.Errorf("level = %s (evidence %v), want %s", got.Level, got.Evidence, tt.want)
			}
		})
	}
}
