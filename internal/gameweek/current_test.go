package gameweek

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

func TestCurrentID(t *testing.T) {
	t.Run("current flag wins", func(t *testing.T) {
		events := []fplapi.Event{
			{ID: 11, IsCurrent: true},
			{ID: 12, IsNext: true},
		}
		got, err := CurrentID(events)
		require.NoError(t, err)
		require.Equal(t, 11, got)
	})

	t.Run("derived from next between rounds", func(t *testing.T) {
		events := []fplapi.Event{
			{ID: 11},
			{ID: 12, IsNext: true},
		}
		got, err := CurrentID(events)
		require.NoError(t, err)
		require.Equal(t, 11, got)
	})

	t.Run("no flags set", func(t *testing.T) {
		_, err := CurrentID([]fplapi.Event{{ID: 1}, {ID: 2}})
		require.ErrorIs(t, err, ErrNoCurrentGameweek)
	})

	t.Run("empty events", func(t *testing.T) {
		_, err := CurrentID(nil)
		require.ErrorIs(t, err, ErrNoCurrentGameweek)
	})
}

func TestUpcomingStart(t *testing.T) {
	t.Run("current flag", func(t *testing.T) {
		got, err := UpcomingStart([]fplapi.Event{{ID: 11, IsCurrent: true}, {ID: 12, IsNext: true}})
		require.NoError(t, err)
		require.Equal(t, 11, got)
	})

	t.Run("next flag when no current", func(t *testing.T) {
		got, err := UpcomingStart([]fplapi.Event{{ID: 11}, {ID: 12, IsNext: true}})
		require.NoError(t, err)
		require.Equal(t, 12, got)
	})

	t.Run("no flags", func(t *testing.T) {
		_, err := UpcomingStart([]fplapi.Event{{ID: 11}})
		require.ErrorIs(t, err, ErrNoCurrentGameweek)
	})
}
