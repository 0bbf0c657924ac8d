package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2wiki/pagetools/pkg/index"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/sources"
)

func door() *pages.Document {
	doc := pages.NewDocument("prop_door_rotating")
	doc.Add(&pages.Page{Game: "cs2", Name: "prop_door_rotating", Description: "short"})
	doc.Add(&pages.Page{Game: "hla", Name: "prop_door_rotating", EntityType: pages.EntityTypePoint, Description: "a  much\nlonger description", Legacy: true})
	return doc
}

func TestDocumentsToTableData(t *testing.T) {
	data := DocumentsToTableData([]*pages.Document{door()}, false)

	assert.Equal(t, []string{"entity", "type", "games", "pages"}, data.Headers)
	want := [][]string{{"prop_door_rotating", "Point", "cs2, hla", "2"}}
	if diff := cmp.Diff(want, data.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestDocumentsToTableDataWide(t *testing.T) {
	synthetic := pages.NewDocument("point_worldtext")
	synthetic.Add(&pages.Page{Game: "cs2", Name: "point_worldtext", NonFGD: true})

	data := DocumentsToTableData([]*pages.Document{door(), synthetic}, true)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"prop_door_rotating", "Point", "cs2, hla", "2", "legacy", "a much longer description"}, data.Rows[0])
	assert.Equal(t, []string{"point_worldtext", "Default", "cs2", "1", "non-fgd", ""}, data.Rows[1])
}

func TestGamesToTableData(t *testing.T) {
	reg, err := sources.NewRegistry(
		sources.Game{ID: "a", Name: "Game A", Mod: "moda", Folder: "a"},
		sources.Game{ID: "b", Name: "Game B", Mod: "modb", Folder: "b"},
	)
	require.NoError(t, err)

	data := GamesToTableData(reg)
	assert.Equal(t, [][]string{
		{"1", "a", "Game A", "moda", "a"},
		{"2", "b", "Game B", "modb", "b"},
	}, data.Rows)
}

func TestIndexToTableData(t *testing.T) {
	data := IndexToTableData([]index.Entry{
		{Classname: "door", Games: []string{"cs2", "hla"}, Icon: "/img/door.png"},
		{Classname: "info_target", Games: []string{"cs2"}},
	})
	assert.Equal(t, [][]string{
		{"door", "cs2, hla", "/img/door.png"},
		{"info_target", "cs2", "-"},
	}, data.Rows)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "a b", Truncate(" a\n b ", 10))
}
