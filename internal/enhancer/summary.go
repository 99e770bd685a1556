package enhancer

import (
	"fmt"
	"strings"

	"github.com/proseamp/proseamp/internal/analyzer"
)

// buildSummary renders the Markdown block appended after the enhanced
// prose: before/after word and character counts, the achieved
// expansion per metric, and the techniques that actually applied.
func buildSummary(original, final string, targetPercent int, applied []string) string {
	originalWords := analyzer.CountWords(original)
	finalWords := analyzer.CountWords(final)

	var b strings.Builder
	b.WriteString("---\n\n")
	b.WriteString("## Enhancement Summary\n")
	fmt.Fprintf(&b, "- **Original:** %d words, %d characters\n", originalWords, len(original))
	fmt.Fprintf(&b, "- **Enhanced:** %d words, %d characters\n", finalWords, len(final))
	fmt.Fprintf(&b, "- **Word expansion:** %.0f%% (target %d%%)\n",
		expansionPercent(originalWords, finalWords), targetPercent)
	fmt.Fprintf(&b, "- **Character expansion:** %.0f%%\n",
		expansionPercent(len(original), len(final)))
	if len(applied) == 0 {
		b.WriteString("- **Techniques applied:** none\n")
	} else {
		fmt.Fprintf(&b, "- **Techniques applied:** %s\n", strings.Join(applied, ", "))
	}
	return b.String()
}
