package pages

import (
	"fmt"
	"strings"
)

// EntityType is the closed set of entity categories a page can describe.
type EntityType string

// String returns the string representation of an EntityType.
func (t EntityType) String() string {
	return string(t)
}

// Supported entity types. The empty value is treated as Default.
const (
	EntityTypeDefault  EntityType = "Default"
	EntityTypePoint    EntityType = "Point"
	EntityTypeSolid    EntityType = "Solid"
	EntityTypePath     EntityType = "Path"
	EntityTypeFilter   EntityType = "Filter"
	EntityTypeNPC      EntityType = "NPC"
	EntityTypeKeyFrame EntityType = "KeyFrame"
	EntityTypeMove     EntityType = "Move"
	EntityTypeOverride EntityType = "Override"
	EntityTypeConVar   EntityType = "ConVar"
	EntityTypeCommand  EntityType = "Command"
)

// EntityTypes returns every supported entity type.
func EntityTypes() []EntityType {
	return []EntityType{
		EntityTypeDefault, EntityTypePoint, EntityTypeSolid, EntityTypePath,
		EntityTypeFilter, EntityTypeNPC, EntityTypeKeyFrame, EntityTypeMove,
		EntityTypeOverride, EntityTypeConVar, EntityTypeCommand,
	}
}

// ParseEntityType parses s case-insensitively. An empty string is Default.
func ParseEntityType(s string) (EntityType, error) {
	if s == "" {
		return EntityTypeDefault, nil
	}
	for _, t := range EntityTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// IsDefault reports whether t carries no category information.
func (t EntityType) IsDefault() bool {
	return t == "" || t == EntityTypeDefault
}

// MarshalText implements encoding.TextMarshaler.
func (t EntityType) MarshalText() ([]byte, error) {
	if t == "" {
		return []byte(EntityTypeDefault), nil
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EntityType) UnmarshalText(b []byte) error {
	parsed, err := ParseEntityType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Direction tells inputs apart from outputs.
type Direction string

// Supported directions.
const (
	DirectionInput  Direction = "Input"
	DirectionOutput Direction = "Output"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	switch {
	case len(b) == 0:
		*d = ""
	case strings.EqualFold(string(b), string(DirectionInput)):
		*d = DirectionInput
	case strings.EqualFold(string(b), string(DirectionOutput)):
		*d = DirectionOutput
	default:
		return fmt.Errorf("unknown input/output direction %q", string(b))
	}
	return nil
}

// AnnotationKind is the admonition style of a page annotation.
type AnnotationKind string

// Supported annotation kinds.
const (
	AnnotationNote    AnnotationKind = "Note"
	AnnotationTip     AnnotationKind = "Tip"
	AnnotationInfo    AnnotationKind = "Info"
	AnnotationWarning AnnotationKind = "Warning"
	AnnotationDanger  AnnotationKind = "Danger"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AnnotationKind) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*k = AnnotationNote
		return nil
	}
	for _, kind := range []AnnotationKind{AnnotationNote, AnnotationTip, AnnotationInfo, AnnotationWarning, AnnotationDanger} {
		if strings.EqualFold(string(b), string(kind)) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown annotation kind %q", string(b))
}
