package fplapi

// Bootstrap is the decoded bootstrap-static payload: the season-wide
// snapshot of players, teams, positions, and gameweeks.
type Bootstrap struct {
	Elements     []Element     `json:"elements"`
	Teams        []Team        `json:"teams"`
	ElementTypes []ElementType `json:"element_types"`
	Events       []Event       `json:"events"`
}

// Element is one raw player record from bootstrap-static.
// Several stat fields arrive as strings from the upstream API
// (form, ownership, ICT, expected stats) and are parsed lazily.
type Element struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	WebName     string `json:"web_name"`
	Team        int    `json:"team"`
	ElementType int    `json:"element_type"`

	NowCost         int    `json:"now_cost"`
	Form            string `json:"form"`
	TotalPoints     int    `json:"total_points"`
	PointsPerGame   string `json:"points_per_game"`
	Minutes         int    `json:"minutes"`
	Starts          int    `json:"starts"`
	GoalsScored     int    `json:"goals_scored"`
	Assists         int    `json:"assists"`
	CleanSheets     int    `json:"clean_sheets"`
	GoalsConceded   int    `json:"goals_conceded"`
	OwnGoals        int    `json:"own_goals"`
	PenaltiesSaved  int    `json:"penalties_saved"`
	PenaltiesMissed int    `json:"penalties_missed"`
	YellowCards     int    `json:"yellow_cards"`
	RedCards        int    `json:"red_cards"`
	Saves           int    `json:"saves"`
	Bonus           int    `json:"bonus"`
	BPS             int    `json:"bps"`

	Influence  string `json:"influence"`
	Creativity string `json:"creativity"`
	Threat     string `json:"threat"`
	ICTIndex   string `json:"ict_index"`

	// Expected stats are absent for older seasons; empty string means
	// the upstream payload did not carry them.
	ExpectedGoals            string `json:"expected_goals"`
	ExpectedAssists          string `json:"expected_assists"`
	ExpectedGoalInvolvements string `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    string `json:"expected_goals_conceded"`

	SelectedByPercent string `json:"selected_by_percent"`
	TransfersInEvent  int    `json:"transfers_in_event"`
	TransfersOutEvent int    `json:"transfers_out_event"`

	CostChangeEvent int `json:"cost_change_event"`
	CostChangeStart int `json:"cost_change_start"`

	Status                   string `json:"status"`
	News                     string `json:"news"`
	ChanceOfPlayingNextRound *int   `json:"chance_of_playing_next_round"`
}

// Team is one raw team record from bootstrap-static.
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

	Position int `json:"position"`
}

// ElementType maps a position id to its FPL codes (GKP/DEF/MID/FWD).
type ElementType struct {
	ID                int    `json:"id"`
	SingularName      string `json:"singular_name"`
	SingularNameShort string `json:"singular_name_short"`
}

// Event is one gameweek record from bootstrap-static events.
type Event struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DeadlineTime string `json:"deadline_time"`
	IsPrevious   bool   `json:"is_previous"`
	IsCurrent    bool   `json:"is_current"`
	IsNext       bool   `json:"is_next"`
	Finished     bool   `json:"finished"`
	DataChecked  bool   `json:"data_checked"`

	HighestScore      *int       `json:"highest_score"`
	AverageEntryScore int        `json:"average_entry_score"`
	ChipPlays         []ChipPlay `json:"chip_plays"`

	MostSelected      *int `json:"most_selected"`
	MostTransferredIn *int `json:"most_transferred_in"`
	MostCaptained     *int `json:"most_captained"`
	MostViceCaptained *int `json:"most_vice_captained"`
}

// ChipPlay counts how many managers played a chip in a gameweek.
type ChipPlay struct {
	ChipName  string `json:"chip_name"`
	NumPlayed int    `json:"num_played"`
}

// Fixture is one raw fixture record. Event is nil for unscheduled
// fixtures. Difficulty is the upstream 1-5 rating, 5 = hardest.
type Fixture struct {
	ID              int    `json:"id"`
	Event           *int   `json:"event"`
	TeamH           int    `json:"team_h"`
	TeamA           int    `json:"team_a"`
	TeamHScore      *int   `json:"team_h_score"`
	TeamAScore      *int   `json:"team_a_score"`
	TeamHDifficulty int    `json:"team_h_difficulty"`
	TeamADifficulty int    `json:"team_a_difficulty"`
	KickoffTime     string `json:"kickoff_time"`
	Started         bool   `json:"started"`
	Finished        bool   `json:"finished"`
}

// PlayerSummary is the element-summary payload for one player:
// per-gameweek history this season plus their remaining fixtures.
type PlayerSummary struct {
	History  []HistoryEntry   `json:"history"`
	Fixtures []SummaryFixture `json:"fixtures"`
}

// HistoryEntry is one per-gameweek snapshot from element-summary.
type HistoryEntry struct {
	Round        int  `json:"round"`
	Minutes      int  `json:"minutes"`
	TotalPoints  int  `json:"total_points"`
	GoalsScored  int  `json:"goals_scored"`
	Assists      int  `json:"assists"`
	CleanSheets  int  `json:"clean_sheets"`
	Bonus        int  `json:"bonus"`
	OpponentTeam int  `json:"opponent_team"`
	WasHome      bool `json:"was_home"`
	TeamHScore   int  `json:"team_h_score"`
	TeamAScore   int  `json:"team_a_score"`

	ExpectedGoals            string `json:"expected_goals"`
	ExpectedAssists          string `json:"expected_assists"`
	ExpectedGoalInvolvements string `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    string `json:"expected_goals_conceded"`

	TransfersIn  int `json:"transfers_in"`
	TransfersOut int `json:"transfers_out"`
	Selected     int `json:"selected"`
	Value        int `json:"value"`
}

// SummaryFixture is an upcoming fixture entry from element-summary.
type SummaryFixture struct {
	ID          int    `json:"id"`
	Event       *int   `json:"event"`
	TeamH       int    `json:"team_h"`
	TeamA       int    `json:"team_a"`
	IsHome      bool   `json:"is_home"`
	Difficulty  int    `json:"difficulty"`
	KickoffTime string `json:"kickoff_time"`
}
