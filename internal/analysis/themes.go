package analysis

// ThemeInfo carries the display strings for one theme. Objective, Hint, and
// Explanation are fmt templates; the assembler fills the single %s verb with
// the correct move. Resolved once per mistake through the registry — never
// by ad hoc string matching at call sites.
type ThemeInfo struct {
	Theme       Theme
	Label       string
	Objective   string
	Hint        string
	Explanation string
}

var seedThemes = []ThemeInfo{
	{
		Theme:       ThemeHangingPiece,
		Label:       "Hanging Piece",
		Objective:   "Win material with the strongest capture.",
		Hint:        "One of your opponent's pieces is insufficiently defended.",
		Explanation: "The move %s wins material: the target piece has more attackers than defenders, so the capture comes out ahead.",
	},
	{
		Theme:       ThemeDiscoveredCheck,
		Label:       "Checking Attack",
		Objective:   "Find the check that forces the win.",
		Hint:        "Look for a forcing move against the enemy king.",
		Explanation: "The move %s gives check, and the forced reply lets the attack break through.",
	},
	{
		Theme:       ThemeForcedMate,
		Label:       "Forced Mate",
		Objective:   "Deliver checkmate by force.",
		Hint:        "Every reply loses — start with the most forcing move.",
		Explanation: "Starting with %s, checkmate cannot be prevented with best play from both sides.",
	},
	{
		Theme:       ThemeEndgame,
		Label:       "Endgame Technique",
		Objective:   "Convert the endgame with precise play.",
		Hint:        "In the endgame, activity and tempo decide: find the most precise continuation.",
		Explanation: "The technical continuation %s holds the win; less precise moves let the defender escape.",
	},
	{
		Theme:       ThemeOpening,
		Label:       "Opening Principles",
		Objective:   "Play the main line of this opening.",
		Hint:        "Follow the established theory for this position.",
		Explanation: "Theory prefers %s here; the game move concedes the opening's point.",
	},
	{
		Theme:       ThemeTactics,
		Label:       "Tactics",
		Objective:   "Find the strongest continuation.",
		Hint:        "There is a concrete tactical resource in this position.",
		Explanation: "The engine's choice %s gains a decisive advantage over the move played.",
	},
}

// registry is the package-level theme registry, keyed by theme.
var registry map[Theme]*ThemeInfo

func init() {
	registry = make(map[Theme]*ThemeInfo, len(seedThemes))
	for i := range seedThemes {
		t := &seedThemes[i]
		registry[t.Theme] = t
	}
}

// GetTheme returns the info for a theme, falling back to the general
// tactics entry for unknown values.
func GetTheme(theme Theme) *ThemeInfo {
	if info, ok := registry[theme]; ok {
		return info
	}
	return registry[ThemeTactics]
}

// AllThemes returns every registered theme.
func AllThemes() []*ThemeInfo {
	result := make([]*ThemeInfo, 0, len(registry))
	for _, info := range registry {
		result = append(result, info)
	}
	return result
}
