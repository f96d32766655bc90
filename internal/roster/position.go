package roster

import "strings"

// positionMapping pairs a synonym with its canonical FPL code.
// Order matters: the substring pass takes the first hit, so the
// table is a slice rather than a map to keep lookups reproducible.
type positionMapping struct {
	term string
	code string
}

var positionMappings = []positionMapping{
	// Standard FPL codes
	{"GKP", "GKP"}, {"DEF", "DEF"}, {"MID", "MID"}, {"FWD", "FWD"},

	// Common variations - singular
	{"goalkeeper", "GKP"}, {"goalie", "GKP"}, {"keeper", "GKP"},
	{"defender", "DEF"}, {"fullback", "DEF"}, {"center-back", "DEF"}, {"cb", "DEF"},
	{"midfielder", "MID"}, {"mid", "MID"}, {"winger", "MID"},
	{"forward", "FWD"}, {"striker", "FWD"}, {"attacker", "FWD"}, {"st", "FWD"},

	// Common variations - plural
	{"goalkeepers", "GKP"}, {"goalies", "GKP"}, {"keepers", "GKP"},
	{"defenders", "DEF"}, {"fullbacks", "DEF"}, {"center-backs", "DEF"},
	{"midfielders", "MID"}, {"mids", "MID"}, {"wingers", "MID"},
	{"forwards", "FWD"}, {"strikers", "FWD"}, {"attackers", "FWD"},
}

// NormalizePosition converts a position term (abbreviation, synonym,
// plural) to one of the canonical codes GKP/DEF/MID/FWD. Exact
// case-insensitive matches win; otherwise a bidirectional substring
// pass over the table applies, first hit wins. Unrecognized input is
// returned unchanged so the caller can tell it was not a position.
func NormalizePosition(term string) string {
	if term == "" {
		return term
	}
	normalized := strings.ToLower(strings.TrimSpace(term))

	for _, m := range positionMappings {
		if normalized == strings.ToLower(m.term) {
			return m.code
		}
	}
	for _, m := range positionMappings {
		lower := strings.ToLower(m.term)
		if strings.Contains(normalized, lower) || strings.Contains(lower, normalized) {
			return m.code
		}
	}
	return term
}
