package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pkgerrors "github.com/s2wiki/pagetools/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "Name",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field Name: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid patch"}
		assert.Equal(t, "validation failed: invalid patch", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "wiki root",
			Message:   "path must be a folder",
		}
		assert.Equal(t, "configuration error in wiki root: path must be a folder", err.Error())
		assert.True(t, pkgerrors.IsConfigError(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("missing")
		err := pkgerrors.NewConfigError("root", "not found", base)
		assert.ErrorIs(t, err, base)
		assert.True(t, pkgerrors.IsConfigError(fmt.Errorf("run: %w", err)))
	})
}

func TestUnknownSourceError(t *testing.T) {
	err := pkgerrors.NewUnknownSourceError("not_a_real_game", "grenade-not_a_real_game.json",
		"Valid games:\n\n- cs2\n- hla\n- dota2\n- steamvr\n")

	msg := err.Error()
	assert.Contains(t, msg, "'not_a_real_game'")
	assert.Contains(t, msg, "grenade-not_a_real_game.json")
	for _, id := range []string{"cs2", "hla", "dota2", "steamvr"} {
		assert.Contains(t, msg, "- "+id+"\n")
	}
	assert.Contains(t, msg, "{entityClassname}.json")

	assert.True(t, pkgerrors.IsUnknownSource(err))
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.True(t, pkgerrors.IsConfigError(err))
}

func TestEntityError(t *testing.T) {
	base := errors.New("name mismatch")

	withSource := pkgerrors.NewEntityError("door", "cs2", base)
	assert.Equal(t, "entity door (cs2): name mismatch", withSource.Error())
	assert.ErrorIs(t, withSource, base)

	global := pkgerrors.NewEntityError("door", "", base)
	assert.Equal(t, "entity door: name mismatch", global.Error())
	assert.False(t, pkgerrors.IsConfigError(global))
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Path:      "/tmp/test.json",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/tmp/test.json")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.WrapIO("write", "fgd_docs/door.json", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "write", ioErr.Operation)
		assert.Equal(t, baseErr, ioErr.Unwrap())
	})
}

func TestResourceError(t *testing.T) {
	err := &pkgerrors.ResourceError{
		Operation: "load",
		Resource:  "override",
		ID:        "door.json",
		Message:   "cannot open",
		Err:       os.ErrNotExist,
	}
	assert.Equal(t, "failed to load override door.json: cannot open", err.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)

	noID := pkgerrors.WrapResource("write", "index", "", errors.New("boom"))
	assert.Equal(t, "failed to write index: boom", noID.Error())
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "with position",
			err:  &pkgerrors.ParseError{Format: "json", File: "door.json", Line: 3, Column: 7, Message: "unexpected ]"},
			want: "parse error in json at door.json:3:7: unexpected ]",
		},
		{
			name: "file only",
			err:  &pkgerrors.ParseError{Format: "yaml", File: "door.yaml", Message: "bad indent"},
			want: "parse error in yaml file door.yaml: bad indent",
		},
		{
			name: "no file",
			err:  &pkgerrors.ParseError{Format: "json", Message: "empty"},
			want: "json parse error: empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapHelpers(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapValidation("field", nil))
	assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	assert.Nil(t, pkgerrors.WrapResource("load", "override", "x", nil))
	assert.Nil(t, pkgerrors.WrapParse("yaml", "file.yaml", nil))

	err := pkgerrors.WrapValidation("Clear", errors.New("unknown field Foo"))
	assert.Contains(t, err.Error(), "Clear")
	assert.True(t, pkgerrors.IsValidationError(err))

	parseErr := pkgerrors.WrapParse("json", "door.json", errors.New("invalid syntax"))
	assert.Contains(t, parseErr.Error(), "door.json")
	assert.Contains(t, parseErr.Error(), "invalid syntax")
}

func TestErrorChaining(t *testing.T) {
	baseErr := errors.New("permission denied")
	ioErr := pkgerrors.WrapIO("read", "fgd_dump_overrides", baseErr)
	resErr := pkgerrors.WrapResource("load", "override", "door.json", ioErr)

	var targetIOErr *pkgerrors.IOError
	require.True(t, errors.As(resErr, &targetIOErr))
	assert.Equal(t, "read", targetIOErr.Operation)
	assert.ErrorIs(t, resErr, baseErr)
}
