package gameweek

import (
	"fmt"
	"strings"
	"time"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

const deadlineLayout = "2006-01-02T15:04:05Z"

// Stats carries gameweek score statistics when the round has data.
type Stats struct {
	HighestScore int              `json:"highest_score"`
	AverageScore int              `json:"average_score"`
	ChipPlays    []fplapi.ChipPlay `json:"chip_plays"`
}

// PopularPlayer identifies a most-selected/captained player.
type PopularPlayer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	WebName string `json:"web_name"`
	Team    int    `json:"team"`
}

// Status is the gameweek status resource.
type Status struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	DeadlineTime      string `json:"deadline_time"`
	IsCurrent         bool   `json:"is_current"`
	IsNext            bool   `json:"is_next"`
	Finished          bool   `json:"finished"`
	DataChecked       bool   `json:"data_checked"`
	Label             string `json:"status"`
	DeadlineFormatted string `json:"deadline_formatted"`
	TimeUntilDeadline string `json:"time_until_deadline,omitempty"`

	Stats          *Stats                   `json:"stats,omitempty"`
	PopularPlayers map[string]PopularPlayer `json:"popular_players,omitempty"`
	FixtureCount   int                      `json:"fixture_count,omitempty"`
}

// BuildStatus assembles the status resource for the current (or next)
// gameweek. now supplies the clock so deadline countdowns are
// deterministic under test.
func BuildStatus(events []fplapi.Event, elements []fplapi.Element, fixtures []fplapi.Fixture, now time.Time) (*Status, error) {
	gw, ok := currentEvent(events)
	if !ok {
		return nil, ErrNoCurrentGameweek
	}

	label := "Next"
	if gw.IsCurrent {
		label = "Current"
	}
	status := &Status{
		ID:           gw.ID,
		Name:         gw.Name,
		DeadlineTime: gw.DeadlineTime,
		IsCurrent:    gw.IsCurrent,
		IsNext:       gw.IsNext,
		Finished:     gw.Finished,
		DataChecked:  gw.DataChecked,
		Label:        label,
	}

	if deadline, err := time.Parse(deadlineLayout, gw.DeadlineTime); err == nil {
		status.DeadlineFormatted = deadline.Format("Monday, 02 January 2006 at 15:04 UTC")
		status.TimeUntilDeadline = untilDeadline(deadline, now)
	} else {
		status.DeadlineFormatted = gw.DeadlineTime
	}

	if gw.HighestScore != nil {
		status.Stats = &Stats{
			HighestScore: *gw.HighestScore,
			AverageScore: gw.AverageEntryScore,
			ChipPlays:    gw.ChipPlays,
		}
	}

	status.PopularPlayers = popularPlayers(gw, elements)

	count := 0
	for _, f := range fixtures {
		if f.Event != nil && *f.Event == gw.ID {
			count++
		}
	}
	status.FixtureCount = count

	return status, nil
}

// untilDeadline renders the remaining time as "2 days, 3 hours, 5 minutes".
func untilDeadline(deadline, now time.Time) string {
	if !deadline.After(now) {
		return "Deadline passed"
	}
	delta := deadline.Sub(now)
	days := int(delta.Hours()) / 24
	hours := int(delta.Hours()) % 24
	minutes := int(delta.Minutes()) % 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", days, plural("day", days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, plural("hour", hours)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", minutes, plural("minute", minutes)))
	}
	return strings.Join(parts, ", ")
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// popularPlayers resolves the most-selected/transferred/captained
// element ids into player identities.
func popularPlayers(gw fplapi.Event, elements []fplapi.Element) map[string]PopularPlayer {
	byID := make(map[int]fplapi.Element, len(elements))
	for _, e := range elements {
		byID[e.ID] = e
	}

	fields := []struct {
		id    *int
		label string
	}{
		{gw.MostSelected, "Most Selected"},
		{gw.MostTransferredIn, "Most Transferred In"},
		{gw.MostCaptained, "Most Captained"},
		{gw.MostViceCaptained, "Most Vice Captained"},
	}

	popular := make(map[string]PopularPlayer)
	for _, f := range fields {
		if f.id == nil {
			continue
		}
		e, ok := byID[*f.id]
		if !ok {
			continue
		}
		popular[f.label] = PopularPlayer{
			ID:      e.ID,
			Name:    strings.TrimSpace(e.FirstName + " " + e.SecondName),
			WebName: e.WebName,
			Team:    e.Team,
		}
	}
	if len(popular) == 0 {
		return nil
	}
	return popular
}
