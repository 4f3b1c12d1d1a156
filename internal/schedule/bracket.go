package schedule

import (
	"strings"

	"github.com/multicourt/vbl-scanner/internal/format"
	"github.com/multicourt/vbl-scanner/internal/vbl"
)

// gameRules projects payload game settings into scoring rules.
func gameRules(settings []vbl.GameSetting) []format.GameRule {
	rules := make([]format.GameRule, 0, len(settings))
	for _, g := range settings {
		rules = append(rules, format.GameRule{To: g.To, Cap: g.Cap})
	}
	return rules
}

// bracketDetail labels a bracket by its elimination style when the type
// string reveals it, otherwise by its name.
func bracketDetail(b vbl.Bracket) string {
	t := strings.ToLower(b.Type)
	switch {
	case strings.Contains(t, "double"):
		return "Double Elim"
	case strings.Contains(t, "single"):
		return "Single Elim"
	case b.Name != "":
		return b.Name
	default:
		return "Bracket"
	}
}

// ExtractBracketMatches walks every bracket of a day and builds records for
// its playable matches. Each bracket's scoring format comes from its winners
// match settings, so formats can differ between brackets on the same day.
// Returned indices are local to each bracket; the orchestrator re-indexes.
//
// The last bracket's detail label is returned as the day-level label, along
// with its format text.
func ExtractBracketMatches(day vbl.Day, dir TeamDirectory) ([]MatchRecord, string, string) {
	var out []MatchRecord
	detail := "Bracket"
	formatText := ""

	for _, b := range day.Brackets {
		detail = bracketDetail(b)

		rules := gameRules(b.WinnersMatchSettings.GameSettings)
		f := format.FromGameRules(rules)
		formatText = format.BuildText(rules)

		for idx, m := range b.Matches {
			rec, ok := BuildRecord(m, dir, f, formatText, MatchTypeBracket, detail, true, idx)
			if !ok {
				continue
			}
			out = append(out, rec)
		}
	}
	return out, detail, formatText
}
