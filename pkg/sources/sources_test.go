package sources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/sources"
)

func TestDefaultRegistry(t *testing.T) {
	reg := sources.Default()

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []sources.ID{sources.CS2, sources.HLA, sources.Dota2, sources.SteamVR}, reg.IDs())

	game, ok := reg.Lookup("hla")
	require.True(t, ok)
	assert.Equal(t, "Half-Life: Alyx", game.Name)
	assert.Equal(t, "hlvr", game.Mod)

	_, ok = reg.Lookup("not_a_real_game")
	assert.False(t, ok)

	assert.Equal(t, 2, reg.Index(sources.Dota2))
	assert.Equal(t, -1, reg.Index("csgo"))
	assert.True(t, reg.Has(sources.SteamVR))
}

func TestValidList(t *testing.T) {
	reg := sources.Default()
	assert.Equal(t, "Valid games:\n\n- cs2\n- hla\n- dota2\n- steamvr\n", reg.ValidList())
}

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name    string
		games   []sources.Game
		wantErr bool
	}{
		{name: "empty", games: nil, wantErr: true},
		{name: "missing id", games: []sources.Game{{Name: "Nameless"}}, wantErr: true},
		{name: "separator in id", games: []sources.Game{{ID: "half-life"}}, wantErr: true},
		{name: "duplicate", games: []sources.Game{{ID: "a"}, {ID: "a"}}, wantErr: true},
		{name: "valid", games: []sources.Game{{ID: "b"}, {ID: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := sources.NewRegistry(tt.games...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []sources.ID{"b", "a"}, reg.IDs())

			g, ok := reg.Lookup("a")
			require.True(t, ok)
			assert.Equal(t, "a", g.Name, "name defaults to the id")
		})
	}
}

func TestGamesIsACopy(t *testing.T) {
	reg := sources.Default()
	games := reg.Games()
	games[0].ID = "mutated"

	assert.Equal(t, sources.CS2, reg.IDs()[0])
}

func TestUnknownError(t *testing.T) {
	err := sources.Default().UnknownError("csgo", "door-csgo.json")

	assert.True(t, errors.IsUnknownSource(err))
	assert.Contains(t, err.Error(), "'csgo'")
	assert.Contains(t, err.Error(), "steamvr\n")
}
