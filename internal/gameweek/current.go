// Package gameweek resolves the current scheduling round from the
// bootstrap event flags and builds the gameweek status resource.
package gameweek

import (
	"github.com/cockroachdb/errors"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

// ErrNoCurrentGameweek means neither a current nor a next gameweek
// flag was set, so time-relative computations cannot proceed.
var ErrNoCurrentGameweek = errors.New("could not determine current gameweek")

// CurrentID resolves the current gameweek id: the event flagged
// current, else the next-flagged event minus one. Exactly one event
// should be current at a time, but the flags are not trusted to
// guarantee it.
func CurrentID(events []fplapi.Event) (int, error) {
	for _, gw := range events {
		if gw.IsCurrent {
			return gw.ID, nil
		}
	}
	for _, gw := range events {
		if gw.IsNext && gw.ID > 0 {
			return gw.ID - 1, nil
		}
	}
	return 0, ErrNoCurrentGameweek
}

// UpcomingStart resolves where an upcoming-gameweek horizon begins:
// the first event flagged current or next.
func UpcomingStart(events []fplapi.Event) (int, error) {
	for _, gw := range events {
		if gw.IsCurrent || gw.IsNext {
			return gw.ID, nil
		}
	}
	return 0, ErrNoCurrentGameweek
}

// currentEvent picks the event to report status for: current, else
// next, else the first event.
func currentEvent(events []fplapi.Event) (fplapi.Event, bool) {
	for _, gw := range events {
		if gw.IsCurrent {
			return gw, true
		}
	}
	for _, gw := range events {
		if gw.IsNext {
			return gw, true
		}
	}
	if len(events) > 0 {
		return events[0], true
	}
	return fplapi.Event{}, false
}
