package list

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2wiki/pagetools"
	"github.com/s2wiki/pagetools/internal/appcontext"
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/logging"
	"github.com/s2wiki/pagetools/pkg/pages"
)

const root = "/wiki"

var files = map[string]string{
	"docusaurus.config.ts": "export default {};",
	"fgd_dump/door.json": `{"Name": "door", "Pages": [
		{"Game": "cs2", "Name": "door", "EntityType": "Point"},
		{"Game": "hla", "Name": "door", "EntityType": "Point"}]}`,
	"fgd_dump/func_button.json":                `{"Name": "func_button", "Pages": [{"Game": "cs2", "Name": "func_button", "EntityType": "Solid"}]}`,
	"fgd_dump_overrides/point_marker-hla.json": `{"Name": "point_marker", "Description": "Hand written."}`,
}

func newApp(t *testing.T, format string) (*appcontext.Mock, afero.Fs) {
	t.Helper()
	logging.DisableLoggingForTest(t)

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(root, name), []byte(content), 0o644))
	}
	app := &appcontext.Mock{
		Format: format,
		GeneratorFunc: func() (pagetools.Generator, error) {
			return pagetools.New(pagetools.WithFs(fs), pagetools.WithRoot(root))
		},
	}
	return app, fs
}

func execute(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListJSON(t *testing.T) {
	app, fs := newApp(t, "json")

	out, err := execute(t, app)
	require.NoError(t, err)

	var docs []*pages.Document
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"door", "func_button", "point_marker"}, names)

	exists, err := afero.DirExists(fs, filepath.Join(root, "fgd_docs"))
	require.NoError(t, err)
	assert.False(t, exists, "list must not write")
}

func TestListTable(t *testing.T) {
	app, _ := newApp(t, "wide")

	out, err := execute(t, app, "--game", "hla")
	require.NoError(t, err)
	assert.Contains(t, out, "door")
	assert.Contains(t, out, "point_marker")
	assert.Contains(t, out, "non-fgd")
	assert.NotContains(t, out, "func_button")
	assert.Contains(t, strings.ToUpper(out), "DESCRIPTION")
}

func TestListErrors(t *testing.T) {
	app, _ := newApp(t, "xml")
	_, err := execute(t, app)
	assert.True(t, errors.IsValidationError(err))

	app, _ = newApp(t, "json")
	_, err = execute(t, app, "--game", "csgo")
	assert.True(t, errors.IsUnknownSource(err))
}

func TestFilter(t *testing.T) {
	docs := []*pages.Document{
		{Name: "prop_door_rotating", Pages: []*pages.Page{{Game: "cs2"}}},
		{Name: "func_door", Pages: []*pages.Page{{Game: "hla"}}},
		{Name: "func_button", Pages: []*pages.Page{{Game: "hla"}}},
	}

	tests := []struct {
		name  string
		flags Flags
		want  []string
	}{
		{name: "none", want: []string{"prop_door_rotating", "func_door", "func_button"}},
		{name: "game", flags: Flags{Game: "hla"}, want: []string{"func_door", "func_button"}},
		{name: "search", flags: Flags{Search: "DOOR"}, want: []string{"prop_door_rotating", "func_door"}},
		{name: "limit", flags: Flags{Limit: 1}, want: []string{"prop_door_rotating"}},
		{name: "combined", flags: Flags{Game: "hla", Search: "door"}, want: []string{"func_door"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(docs, &tt.flags)
			names := make([]string, len(got))
			for i, d := range got {
				names[i] = d.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
