package analyzer

import (
	"fmt"
	"strings"
)

// Render formats the report as Markdown. The layout is stable so the
// output can be diffed across runs of identical input.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString("# Text Analysis Report\n\n")

	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- **Words:** %d\n", r.WordCount)
	fmt.Fprintf(&b, "- **Characters:** %d\n", r.CharCount)
	fmt.Fprintf(&b, "- **Average sentence length:** %.1f words\n", r.AvgSentenceLen)
	fmt.Fprintf(&b, "- **Narrative position:** %s\n", r.Position)
	fmt.Fprintf(&b, "- **Point of view:** %s\n", r.Characters.PointOfView)
	fmt.Fprintf(&b, "- **Scene type:** %s\n", r.Scene)
	fmt.Fprintf(&b, "- **Mood:** %s\n\n", r.Mood)

	b.WriteString("## Characters\n")
	if len(r.Characters.Names) == 0 {
		b.WriteString("- none detected\n")
	}
	for _, name := range r.Characters.Names {
		fmt.Fprintf(&b, "- %s (%d mention(s))\n", name, r.Characters.Occurrences[name])
	}
	fmt.Fprintf(&b, "- Pronouns: first %d, second %d, third %d\n\n",
		r.Characters.Pronouns.First, r.Characters.Pronouns.Second, r.Characters.Pronouns.Third)

	b.WriteString("## Enhancement Needs\n")
	writeNeed(&b, "Character development (Golden Shadow)", r.Needs.GoldenShadow)
	writeNeed(&b, "Environmental detail", r.Needs.Environmental)
	writeNeed(&b, "Action scene texture", r.Needs.ActionScene)
	writeNeed(&b, "Prose smoothing", r.Needs.ProseSmoothing)
	writeNeed(&b, "Repetition elimination", r.Needs.Repetition)
	b.WriteString("\n")

	b.WriteString("## Repetition\n")
	if len(r.Repetition.RepeatedWords) == 0 &&
		len(r.Repetition.RepeatedPhrases) == 0 &&
		len(r.Repetition.RepeatedShapes) == 0 {
		b.WriteString("- no significant repetition detected\n")
	}
	for _, w := range r.Repetition.RepeatedWords {
		fmt.Fprintf(&b, "- word %q repeated %d times\n", w.Word, w.Count)
	}
	for _, p := range r.Repetition.RepeatedPhrases {
		fmt.Fprintf(&b, "- phrase %q repeated %d times\n", p.Phrase, p.Count)
	}
	for _, s := range r.Repetition.RepeatedShapes {
		fmt.Fprintf(&b, "- sentence shape %q repeated %d times\n", s.Shape, s.Count)
	}

	return b.String()
}

func writeNeed(b *strings.Builder, label string, need TechniqueNeed) {
	fmt.Fprintf(b, "- **%s:** %s", label, need.Level)
	if len(need.Evidence) > 0 {
		fmt.Fprintf(b, " (%s)", strings.Join(need.Evidence, "; "))
	}
	b.WriteString("\n")
}
