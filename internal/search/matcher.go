// Package search ranks players against a free-text name query using
// a tiered scoring heuristic: exact-name tiers, initials and
// multi-token matching, substring accumulation, and a season-points
// tiebreak, with a plain-substring fallback when confidence is low.
package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/universal-mcp/fpl/internal/roster"
)

// Nickname and abbreviation aliases applied before scoring when the
// whole query matches an entry exactly.
var nicknames = map[string]string{
	"kdb":      "kevin de bruyne",
	"vvd":      "virgil van dijk",
	"taa":      "trent alexander-arnold",
	"cr7":      "cristiano ronaldo",
	"bobby":    "roberto firmino",
	"mo salah": "mohamed salah",
	"mane":     "sadio mane",
	"auba":     "aubameyang",
	"lewa":     "lewandowski",
	"kane":     "harry kane",
	"rashford": "marcus rashford",
	"son":      "heung-min son",
}

// fallbackThreshold: when the best scored match stays below this the
// ranked set is merged with a plain substring scan. The threshold is
// applied to the top result only, not to every match.
const fallbackThreshold = 30

// query is the normalized search input shared by all scoring rules.
type query struct {
	term  string
	parts []string
}

// candidate carries the lowercased name components of one player.
type candidate struct {
	fullName  string
	webName   string
	firstName string
	lastName  string
}

func newCandidate(p roster.Player) candidate {
	c := candidate{
		fullName: strings.ToLower(p.Name),
		webName:  strings.ToLower(p.WebName),
	}
	parts := strings.Fields(c.fullName)
	if len(parts) > 0 {
		c.firstName = parts[0]
	}
	if len(parts) > 1 {
		c.lastName = parts[len(parts)-1]
	}
	return c
}

// exactTierScore is the mutually exclusive exact-equality chain:
// only the first matching tier contributes.
func exactTierScore(q query, c candidate) int {
	switch {
	case q.term == c.fullName:
		return 100
	case q.term == c.webName:
		return 90
	case len(q.parts) == 1 && q.term == c.lastName:
		return 80
	case len(q.parts) == 1 && q.term == c.firstName:
		return 70
	}
	return 0
}

// initialsScore matches short alphabetic queries against the first
// letters of the full name's tokens ("kdb" vs "kevin de bruyne").
// Independent of the exact-tier chain.
func initialsScore(q query, c candidate) int {
	if len(q.term) > 5 {
		return 0
	}
	for _, r := range q.term {
		if !unicode.IsLetter(r) {
			return 0
		}
	}
	var initials strings.Builder
	for _, part := range strings.Fields(c.fullName) {
		first, _ := utf8.DecodeRuneInString(part)
		initials.WriteRune(first)
	}
	if q.term == initials.String() {
		return 85
	}
	return 0
}

// multiTokenScore handles queries like "mo salah": first token inside
// the first name and last token inside the last name, plus an
// in-order concatenation check.
func multiTokenScore(q query, c candidate) int {
	if len(q.parts) < 2 {
		return 0
	}
	score := 0
	if strings.Contains(c.firstName, q.parts[0]) && strings.Contains(c.lastName, q.parts[len(q.parts)-1]) {
		score += 75
	}
	queryJoined := strings.Join(q.parts, "")
	nameJoined := strings.Join(strings.Fields(c.fullName), "")
	if strings.Contains(nameJoined, queryJoined) {
		score += 50
	}
	return score
}

// substringScore accumulates partial matches: the whole query inside
// the full name, then each token inside full name and web name.
func substringScore(q query, c candidate) int {
	score := 0
	if strings.Contains(c.fullName, q.term) {
		score += 40
	}
	for _, part := range q.parts {
		if strings.Contains(c.fullName, part) {
			score += 30
		}
	}
	for _, part := range q.parts {
		if strings.Contains(c.webName, part) {
			score += 25
		}
	}
	return score
}

// matchScore runs every scoring rule and returns the accumulated
// integer score for one candidate.
func matchScore(q query, c candidate) int {
	score := exactTierScore(q, c)
	score += initialsScore(q, c)
	score += multiTokenScore(q, c)
	score += substringScore(q, c)
	return score
}

// pointsBonus is the tiebreak term for matched players: up to 20
// extra points scaled by season total.
func pointsBonus(p roster.Player) float64 {
	bonus := float64(p.Points) / 50
	if bonus > 20 {
		return 20
	}
	return bonus
}

type scored struct {
	total  float64
	player roster.Player
}

// FindPlayers ranks players against a free-text query, best first,
// truncated to limit. An empty or whitespace-only query returns nil.
func FindPlayers(players []roster.Player, rawQuery string, limit int) []roster.Player {
	term := strings.ToLower(strings.TrimSpace(rawQuery))
	if term == "" {
		return nil
	}
	if alias, ok := nicknames[term]; ok {
		term = alias
	}
	q := query{term: term, parts: strings.Fields(term)}

	ranked := make([]scored, 0, 8)
	for _, p := range players {
		score := matchScore(q, newCandidate(p))
		if score > 0 {
			ranked = append(ranked, scored{total: float64(score) + pointsBonus(p), player: p})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total > ranked[j].total
	})

	results := make([]roster.Player, 0, len(ranked))
	for _, s := range ranked {
		results = append(results, s.player)
	}

	if len(ranked) == 0 || ranked[0].total < fallbackThreshold {
		results = mergeFallback(players, term, results)
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// mergeFallback appends a plain substring scan (sorted by season
// points) after the ranked results, skipping players already present.
func mergeFallback(players []roster.Player, term string, ranked []roster.Player) []roster.Player {
	fallback := make([]roster.Player, 0, 8)
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.WebName), term) {
			fallback = append(fallback, p)
		}
	}
	sort.SliceStable(fallback, func(i, j int) bool {
		return fallback[i].Points > fallback[j].Points
	})

	seen := make(map[int]bool, len(ranked))
	for _, p := range ranked {
		seen[p.ID] = true
	}
	merged := ranked
	for _, p := range fallback {
		if !seen[p.ID] {
			merged = append(merged, p)
			seen[p.ID] = true
		}
	}
	return merged
}
