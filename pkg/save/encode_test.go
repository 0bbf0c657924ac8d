package save_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/save"
)

type entry struct {
	Classname   string
	Description string
	Games       []string
}

func TestEncodeJSON(t *testing.T) {
	data, err := save.Encode(entry{Classname: "door", Description: "a <b>door</b> & frame", Games: []string{"cs2"}}, save.FormatJSON)
	require.NoError(t, err)

	want := "{\n" +
		"  \"Classname\": \"door\",\n" +
		"  \"Description\": \"a <b>door</b> & frame\",\n" +
		"  \"Games\": [\n" +
		"    \"cs2\"\n" +
		"  ]\n" +
		"}\n"
	assert.Equal(t, want, string(data))
}

func TestEncodeYAMLKeepsFieldOrder(t *testing.T) {
	data, err := save.Encode(entry{Classname: "door", Description: "d", Games: []string{"hla"}}, save.FormatYAML)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Classname: door")
	assert.Less(t, strings.Index(out, "Classname"), strings.Index(out, "Description"))
	assert.Less(t, strings.Index(out, "Description"), strings.Index(out, "Games"))
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := save.Encode(entry{}, save.Format(9))
	assert.True(t, errors.IsValidationError(err))
}

func TestToJSON(t *testing.T) {
	in := []byte("Name: door\nDescription: A door.\n")
	out, err := save.ToJSON(in, save.FormatYAML)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Name":"door","Description":"A door."}`, string(out))

	same, err := save.ToJSON([]byte(`{}`), save.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(same))

	_, err = save.ToJSON([]byte("Name: [unclosed"), save.FormatYAML)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    save.Format
		wantErr bool
	}{
		{"", save.FormatJSON, false},
		{"JSON", save.FormatJSON, false},
		{"yaml", save.FormatYAML, false},
		{"yml", save.FormatYAML, false},
		{"toml", save.FormatJSON, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := save.ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromExt(t *testing.T) {
	f, ok := save.FormatFromExt(".YML")
	assert.True(t, ok)
	assert.Equal(t, save.FormatYAML, f)
	assert.Equal(t, ".yaml", f.Ext())

	_, ok = save.FormatFromExt(".txt")
	assert.False(t, ok)
	assert.Equal(t, ".json", save.FormatJSON.Ext())
	assert.Equal(t, "unknown", save.Format(5).String())
}
