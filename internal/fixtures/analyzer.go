// Package fixtures computes fixture difficulty for a player's
// upcoming schedule and detects blank and double gameweeks.
package fixtures

import (
	"fmt"
	"math"
	"sort"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

// Difficulty score labels, inclusive lower bounds on the 1-10 scale.
const (
	labelExcellent     = "Excellent fixtures"
	labelGood          = "Good fixtures"
	labelAverage       = "Average fixtures"
	labelDifficult     = "Difficult fixtures"
	labelVeryDifficult = "Very difficult fixtures"
	labelNoFixtures    = "No upcoming fixtures found"
)

// PlayerFixture is one upcoming fixture from the player's perspective.
// Difficulty is the rating for the player's side (1-5, 5 hardest).
type PlayerFixture struct {
	Gameweek      int    `json:"gameweek"`
	KickoffTime   string `json:"kickoff_time"`
	Location      string `json:"location"`
	Opponent      string `json:"opponent"`
	OpponentShort string `json:"opponent_short"`
	Difficulty    int    `json:"difficulty"`
}

// Analysis is the scored summary of a player's upcoming schedule.
type Analysis struct {
	FixturesAnalyzed      []PlayerFixture `json:"fixtures_analyzed"`
	DifficultyScore       float64         `json:"difficulty_score"`
	Assessment            string          `json:"analysis"`
	HomeFixturePercentage float64         `json:"home_fixtures_percentage"`
}

// PlayerUpcoming collects a team's fixtures from fromGW onwards,
// sorted by gameweek, truncated to limit, viewed from the team's
// side. Fixtures without a gameweek are unscheduled and skipped.
func PlayerUpcoming(all []fplapi.Fixture, teams []fplapi.Team, teamID, fromGW, limit int) []PlayerFixture {
	teamByID := make(map[int]fplapi.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	upcoming := make([]fplapi.Fixture, 0, limit)
	for _, f := range all {
		if f.Event == nil || *f.Event < fromGW {
			continue
		}
		if f.TeamH == teamID || f.TeamA == teamID {
			upcoming = append(upcoming, f)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return *upcoming[i].Event < *upcoming[j].Event
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	out := make([]PlayerFixture, 0, len(upcoming))
	for _, f := range upcoming {
		isHome := f.TeamH == teamID
		opponentID := f.TeamH
		difficulty := f.TeamADifficulty
		location := "away"
		if isHome {
			opponentID = f.TeamA
			difficulty = f.TeamHDifficulty
			location = "home"
		}
		opponent, ok := teamByID[opponentID]
		opponentName := fmt.Sprintf("Team %d", opponentID)
		opponentShort := ""
		if ok {
			opponentName = opponent.Name
			opponentShort = opponent.ShortName
		}
		out = append(out, PlayerFixture{
			Gameweek:      *f.Event,
			KickoffTime:   f.KickoffTime,
			Location:      location,
			Opponent:      opponentName,
			OpponentShort: opponentShort,
			Difficulty:    difficulty,
		})
	}
	return out
}

// Analyze scores a set of upcoming fixtures on the 1-10 scale where
// higher means easier. The raw average difficulty (domain [1,5]) maps
// to [2,10] via (6-avg)*2, then a home-balance adjustment in
// [-0.5,+0.5] applies before clamping to [1,10].
func Analyze(upcoming []PlayerFixture) Analysis {
	if len(upcoming) == 0 {
		return Analysis{
			FixturesAnalyzed: []PlayerFixture{},
			DifficultyScore:  0,
			Assessment:       labelNoFixtures,
		}
	}

	total := 0
	home := 0
	for _, f := range upcoming {
		total += f.Difficulty
		if f.Location == "home" {
			home++
		}
	}
	avgDifficulty := float64(total) / float64(len(upcoming))
	homePct := float64(home) / float64(len(upcoming)) * 100

	rawScore := (6 - avgDifficulty) * 2
	homeAdjustment := (homePct - 50) / 100
	score := rawScore + homeAdjustment
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	score = math.Round(score*10) / 10

	return Analysis{
		FixturesAnalyzed:      upcoming,
		DifficultyScore:       score,
		Assessment:            assessment(score),
		HomeFixturePercentage: math.Round(homePct*10) / 10,
	}
}

func assessment(score float64) string {
	switch {
	case score >= 8.5:
		return labelExcellent
	case score >= 7:
		return labelGood
	case score >= 5.5:
		return labelAverage
	case score >= 4:
		return labelDifficult
	default:
		return labelVeryDifficult
	}
}
