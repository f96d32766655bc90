package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePosition(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"GKP", "GKP"},
		{"gkp", "GKP"},
		{"MID", "MID"},
		{"goalkeeper", "GKP"},
		{"keeper", "GKP"},
		{"strikers", "FWD"},
		{"st", "FWD"},
		{"cb", "DEF"},
		{"defenders", "DEF"},
		{"winger", "MID"},
		{"  Forward  ", "FWD"},
		{"attacking midfielder", "MID"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizePosition(tc.in))
		})
	}

	t.Run("unrecognized returned unchanged", func(t *testing.T) {
		require.Equal(t, "sweeper", NormalizePosition("sweeper"))
		require.Equal(t, "", NormalizePosition(""))
	})
}
