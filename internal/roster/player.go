// Package roster reshapes raw bootstrap records into the canonical
// player and team schema consumed by the search, fixture, and
// analysis layers. Records are built fresh per query and never
// mutated afterwards.
package roster

import (
	"sort"
	"strings"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

// Availability states derived from the upstream single-letter status code.
const (
	StatusAvailable   = "available"
	StatusDoubtful    = "doubtful"
	StatusUnavailable = "unavailable"
)

// Player is the canonical player record. Price is in currency units
// (the upstream tenths-integer divided by 10). String stat fields
// keep the upstream representation and are parsed where needed.
type Player struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	WebName   string  `json:"web_name"`
	TeamID    int     `json:"team_id"`
	Team      string  `json:"team"`
	TeamShort string  `json:"team_short"`
	Position  string  `json:"position"`
	Price     float64 `json:"price"`
	Form      string  `json:"form"`

	Points        int    `json:"points"`
	PointsPerGame string `json:"points_per_game"`
	Minutes       int    `json:"minutes"`
	Starts        int    `json:"starts"`

	Goals           int `json:"goals"`
	Assists         int `json:"assists"`
	CleanSheets     int `json:"clean_sheets"`
	GoalsConceded   int `json:"goals_conceded"`
	OwnGoals        int `json:"own_goals"`
	PenaltiesSaved  int `json:"penalties_saved"`
	PenaltiesMissed int `json:"penalties_missed"`
	YellowCards     int `json:"yellow_cards"`
	RedCards        int `json:"red_cards"`
	Saves           int `json:"saves"`
	Bonus           int `json:"bonus"`
	BPS             int `json:"bps"`

	Influence  string `json:"influence"`
	Creativity string `json:"creativity"`
	Threat     string `json:"threat"`
	ICTIndex   string `json:"ict_index"`

	// Expected stats; "N/A" when the upstream season does not carry them.
	ExpectedGoals            string `json:"expected_goals"`
	ExpectedAssists          string `json:"expected_assists"`
	ExpectedGoalInvolvements string `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    string `json:"expected_goals_conceded"`

	SelectedByPercent string `json:"selected_by_percent"`
	TransfersInEvent  int    `json:"transfers_in_event"`
	TransfersOutEvent int    `json:"transfers_out_event"`

	CostChangeEvent float64 `json:"cost_change_event"`
	CostChangeStart float64 `json:"cost_change_start"`

	Status                   string `json:"status"`
	News                     string `json:"news,omitempty"`
	ChanceOfPlayingNextRound *int   `json:"chance_of_playing_next_round"`
}

// Team is the canonical team record.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Code      int    `json:"code"`

	Strength            int `json:"strength"`
	StrengthOverallHome int `json:"strength_overall_home"`
	StrengthOverallAway int `json:"strength_overall_away"`
	StrengthAttackHome  int `json:"strength_attack_home"`
	StrengthAttackAway  int `json:"strength_attack_away"`
	StrengthDefenceHome int `json:"strength_defence_home"`
	StrengthDefenceAway int `json:"strength_defence_away"`

	LeaguePosition int `json:"position"`
}

// BuildPlayers formats every bootstrap element into the canonical
// schema, resolving team and position references.
func BuildPlayers(bs *fplapi.Bootstrap) []Player {
	teamByID := make(map[int]fplapi.Team, len(bs.Teams))
	for _, t := range bs.Teams {
		teamByID[t.ID] = t
	}
	positionByID := make(map[int]fplapi.ElementType, len(bs.ElementTypes))
	for _, p := range bs.ElementTypes {
		positionByID[p.ID] = p
	}

	players := make([]Player, 0, len(bs.Elements))
	for _, e := range bs.Elements {
		team, teamOK := teamByID[e.Team]
		teamName := "Unknown"
		teamShort := "UNK"
		if teamOK {
			teamName = team.Name
			teamShort = team.ShortName
		}
		position := "UNK"
		if pos, ok := positionByID[e.ElementType]; ok {
			position = pos.SingularNameShort
		}

		players = append(players, Player{
			ID:        e.ID,
			Name:      strings.TrimSpace(e.FirstName + " " + e.SecondName),
			WebName:   e.WebName,
			TeamID:    e.Team,
			Team:      teamName,
			TeamShort: teamShort,
			Position:  position,
			Price:     float64(e.NowCost) / 10.0,
			Form:      e.Form,

			Points:        e.TotalPoints,
			PointsPerGame: e.PointsPerGame,
			Minutes:       e.Minutes,
			Starts:        e.Starts,

			Goals:           e.GoalsScored,
			Assists:         e.Assists,
			CleanSheets:     e.CleanSheets,
			GoalsConceded:   e.GoalsConceded,
			OwnGoals:        e.OwnGoals,
			PenaltiesSaved:  e.PenaltiesSaved,
			PenaltiesMissed: e.PenaltiesMissed,
			YellowCards:     e.YellowCards,
			RedCards:        e.RedCards,
			Saves:           e.Saves,
			Bonus:           e.Bonus,
			BPS:             e.BPS,

			Influence:  e.Influence,
			Creativity: e.Creativity,
			Threat:     e.Threat,
			ICTIndex:   e.ICTIndex,

			ExpectedGoals:            orNA(e.ExpectedGoals),
			ExpectedAssists:          orNA(e.ExpectedAssists),
			ExpectedGoalInvolvements: orNA(e.ExpectedGoalInvolvements),
			ExpectedGoalsConceded:    orNA(e.ExpectedGoalsConceded),

			SelectedByPercent: e.SelectedByPercent,
			TransfersInEvent:  e.TransfersInEvent,
			TransfersOutEvent: e.TransfersOutEvent,

			CostChangeEvent: float64(e.CostChangeEvent) / 10.0,
			CostChangeStart: float64(e.CostChangeStart) / 10.0,

			Status:                   decodeStatus(e.Status),
			News:                     e.News,
			ChanceOfPlayingNextRound: e.ChanceOfPlayingNextRound,
		})
	}
	return players
}

// BuildTeams formats bootstrap teams, sorted by league position.
func BuildTeams(bs *fplapi.Bootstrap) []Team {
	teams := make([]Team, 0, len(bs.Teams))
	for _, t := range bs.Teams {
		teams = append(teams, Team{
			ID:                  t.ID,
			Name:                t.Name,
			ShortName:           t.ShortName,
			Code:                t.Code,
			Strength:            t.Strength,
			StrengthOverallHome: t.StrengthOverallHome,
			StrengthOverallAway: t.StrengthOverallAway,
			StrengthAttackHome:  t.StrengthAttackHome,
			StrengthAttackAway:  t.StrengthAttackAway,
			StrengthDefenceHome: t.StrengthDefenceHome,
			StrengthDefenceAway: t.StrengthDefenceAway,
			LeaguePosition:      t.Position,
		})
	}
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].LeaguePosition < teams[j].LeaguePosition
	})
	return teams
}

// TeamByName finds a team by full or short name, trying an exact
// case-insensitive match before falling back to substring.
func TeamByName(teams []Team, name string) *Team {
	needle := strings.ToLower(name)
	for i := range teams {
		if strings.ToLower(teams[i].Name) == needle || strings.ToLower(teams[i].ShortName) == needle {
			return &teams[i]
		}
	}
	for i := range teams {
		if strings.Contains(strings.ToLower(teams[i].Name), needle) ||
			strings.Contains(strings.ToLower(teams[i].ShortName), needle) {
			return &teams[i]
		}
	}
	return nil
}

// TeamNameByID resolves a team id to its name, "Unknown team" when absent.
func TeamNameByID(teams []fplapi.Team, teamID int) string {
	for _, t := range teams {
		if t.ID == teamID {
			return t.Name
		}
	}
	return "Unknown team"
}

// decodeStatus maps the upstream single-letter availability code.
// "a" is available, "d" doubtful, everything else (injured,
// suspended, unavailable, departed) collapses to unavailable.
func decodeStatus(code string) string {
	switch code {
	case "a":
		return StatusAvailable
	case "d":
		return StatusDoubtful
	default:
		return StatusUnavailable
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
