package overrides_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/logging"
	"github.com/s2wiki/pagetools/pkg/overrides"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/sources"
)

const dir = "fgd_dump_overrides"

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(body), 0o644))
	}
}

func TestLoad(t *testing.T) {
	logging.DisableLoggingForTest(t)
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"door.json":         `{"Name": "door", "Description": "A generic door entity."}`,
		"door-cs2-hla.yaml": "Name: door\nDescription: A locked door.\n",
		"button-dota2.yml":  "Name: button\nLegacy: true\n",
		"README.md":         "# not an override",
		"notes.txt":         "ignored",
	})
	require.NoError(t, fs.MkdirAll(filepath.Join(dir, "drafts.json"), 0o755))

	patches, err := overrides.NewLoader(fs, dir, sources.Default()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, patches.Files)
	require.Equal(t, 4, patches.Len())

	// Sorted by file name: button-dota2.yml, door-cs2-hla.yaml, door.json.
	entries := patches.Entries
	assert.Equal(t, sources.Dota2, entries[0].Game)
	assert.True(t, entries[0].Patch.Page.Legacy)

	assert.Equal(t, sources.CS2, entries[1].Game)
	assert.Equal(t, sources.CS2, entries[1].Patch.Page.Game)
	assert.Equal(t, sources.HLA, entries[2].Game)
	assert.Equal(t, sources.HLA, entries[2].Patch.Page.Game)
	assert.NotSame(t, entries[1].Patch, entries[2].Patch)

	assert.True(t, entries[3].IsGlobal())
	assert.Equal(t, "A generic door entity.", entries[3].Patch.Page.Description)
	assert.Equal(t, filepath.Join(dir, "door.json"), entries[3].File)

	assert.Len(t, patches.Global(), 1)
	assert.Len(t, patches.Specific(), 3)
}

func TestLoadMissingDir(t *testing.T) {
	logging.DisableLoggingForTest(t)
	patches, err := overrides.NewLoader(afero.NewMemMapFs(), dir, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, patches.Len())
}

func TestLoadUnknownGameAborts(t *testing.T) {
	logging.DisableLoggingForTest(t)
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"door.json":                    `{"Name": "door"}`,
		"grenade-not_a_real_game.json": `{"Name": "grenade"}`,
	})

	patches, err := overrides.NewLoader(fs, dir, sources.Default()).Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, patches)
	assert.True(t, errors.IsUnknownSource(err))
	assert.Contains(t, err.Error(), "grenade-not_a_real_game.json")
	assert.Contains(t, err.Error(), "steamvr")
}

func TestLoadMalformedBodyAborts(t *testing.T) {
	logging.DisableLoggingForTest(t)

	tests := map[string]string{
		"broken json":  `{"Name": `,
		"missing name": `{"Description": "x"}`,
		"bad clear":    `{"Name": "door", "Clear": ["Nope"]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFiles(t, fs, map[string]string{"door.json": body})

			_, err := overrides.NewLoader(fs, dir, sources.Default()).Load(context.Background())
			require.Error(t, err)
			var parseErr *errors.ParseError
			assert.ErrorAs(t, err, &parseErr)
			assert.Contains(t, err.Error(), "door.json")
		})
	}

	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"door.json": `{"Description": "x"}`})
	_, err := overrides.NewLoader(fs, dir, sources.Default()).Load(context.Background())
	assert.ErrorIs(t, err, pages.ErrMissingName)
}

func TestIsOverrideFile(t *testing.T) {
	assert.True(t, overrides.IsOverrideFile("door.json"))
	assert.True(t, overrides.IsOverrideFile("/wiki/fgd_dump_overrides/door-cs2.yaml"))
	assert.True(t, overrides.IsOverrideFile("door.yml"))
	assert.False(t, overrides.IsOverrideFile("door.json.swp"))
	assert.False(t, overrides.IsOverrideFile("README.md"))
}
