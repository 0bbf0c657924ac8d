package pages

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/save"
)

// ErrMissingName is returned for a patch body without a Name.
var ErrMissingName = errors.New("override body is missing Name")

// Field names a page field that a patch can clear.
type Field string

// Clearable fields, named as they appear on the wire.
const (
	FieldEntityType   Field = "EntityType"
	FieldDescription  Field = "Description"
	FieldIconPath     Field = "IconPath"
	FieldLegacy       Field = "Legacy"
	FieldNonFGD       Field = "NonFGD"
	FieldAnnotation   Field = "PageAnnotation"
	FieldProperties   Field = "Properties"
	FieldInputOutputs Field = "InputOutputs"
)

// Fields returns every clearable field.
func Fields() []Field {
	return []Field{
		FieldEntityType, FieldDescription, FieldIconPath, FieldLegacy,
		FieldNonFGD, FieldAnnotation, FieldProperties, FieldInputOutputs,
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(b []byte) error {
	if !slices.Contains(Fields(), Field(b)) {
		return fmt.Errorf("cannot clear unknown field %q", string(b))
	}
	*f = Field(b)
	return nil
}

// Patch is a page-shaped correction. Fields left at their zero value are
// not specified and leave the target alone; fields listed in Clear are reset
// to their zero value before the specified fields are applied.
type Patch struct {
	Page  Page
	Clear []Field
}

// DecodePatch parses a patch body in the given format. The body must name
// its entity.
func DecodePatch(data []byte, format save.Format) (*Patch, error) {
	raw, err := save.ToJSON(data, format)
	if err != nil {
		return nil, err
	}

	var patch Patch
	if err := json.Unmarshal(raw, &patch.Page); err != nil {
		return nil, err
	}
	var extra struct {
		Clear []Field `json:"Clear"`
	}
	if err := json.Unmarshal(raw, &extra); err != nil {
		return nil, err
	}
	patch.Clear = extra.Clear

	if strings.TrimSpace(patch.Page.Name) == "" {
		return nil, ErrMissingName
	}
	return &patch, nil
}

// OverrideFrom applies patch onto p. Name and Game are never changed.
// Non-empty lists replace the target lists wholesale.
func (p *Page) OverrideFrom(patch *Patch) {
	for _, f := range patch.Clear {
		p.clear(f)
	}

	src := &patch.Page
	if !src.EntityType.IsDefault() {
		p.EntityType = src.EntityType
	}
	if src.Description != "" {
		p.Description = src.Description
	}
	if src.IconPath != "" {
		p.IconPath = src.IconPath
	}
	if src.Legacy {
		p.Legacy = true
	}
	if src.NonFGD {
		p.NonFGD = true
	}
	if src.Annotation != nil {
		a := *src.Annotation
		p.Annotation = &a
	}
	if len(src.Properties) > 0 {
		p.Properties = slices.Clone(src.Properties)
	}
	if len(src.InputOutputs) > 0 {
		p.InputOutputs = slices.Clone(src.InputOutputs)
	}
}

func (p *Page) clear(f Field) {
	switch f {
	case FieldEntityType:
		p.EntityType = EntityTypeDefault
	case FieldDescription:
		p.Description = ""
	case FieldIconPath:
		p.IconPath = ""
	case FieldLegacy:
		p.Legacy = false
	case FieldNonFGD:
		p.NonFGD = false
	case FieldAnnotation:
		p.Annotation = nil
	case FieldProperties:
		p.Properties = nil
	case FieldInputOutputs:
		p.InputOutputs = nil
	}
}
