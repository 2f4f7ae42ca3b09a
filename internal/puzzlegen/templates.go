package puzzlegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/pawnforge/internal/analysis"
)

// narrativeDetail carries the optional source facts the templates can use.
type narrativeDetail struct {
	severity analysis.Severity
	family   string
}

// applyNarrative fills the puzzle's objective, hint, and explanation from
// the theme registry. Theme lookup happens exactly once, here.
func applyNarrative(p *Puzzle, detail narrativeDetail) {
	info := analysis.GetTheme(p.Theme)

	p.Objective = info.Objective
	p.Hint = info.Hint

	firstMove := ""
	if len(p.SolutionLine) > 0 {
		firstMove = p.SolutionLine[0]
	}
	p.Explanation = fmt.Sprintf(info.Explanation, firstMove)

	switch {
	case detail.severity != "":
		p.Explanation += fmt.Sprintf(" In the source game this was a %s.", detail.severity)
	case detail.family != "":
		p.Explanation += fmt.Sprintf(" Reference line: %s.", familyLabel(detail.family))
	}
}

// familyLabel renders an opening family id ("queens-gambit-declined") as a
// readable name.
func familyLabel(family string) string {
	words := strings.Split(family, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
