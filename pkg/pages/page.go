// Package pages holds the entity data model: a Page is one entity as seen by
// one game, a Document gathers the pages of every game that shares an entity
// name, and a Patch is a hand written correction applied onto pages.
package pages

import (
	"path"
	"slices"
	"strings"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Page is one entity's definition as contributed by one game.
type Page struct {
	// Game is the contributing source. It is empty only on a patch that has
	// not been bound to a target yet.
	Game sources.ID

	EntityType  EntityType
	Name        string
	Description string
	IconPath    string

	// Legacy marks entities kept for compatibility.
	Legacy bool

	// NonFGD is set when the page was created by an override and no game
	// record backs it.
	NonFGD bool

	Annotation   *Annotation
	Properties   []Property
	InputOutputs []InputOutput
}

// Property is one keyvalue of an entity.
type Property struct {
	Name        string `json:"Name"`
	Type        string `json:"Type"`
	Description string `json:"Description"`
	Default     string `json:"Default"`
}

// InputOutput is one input or output of an entity.
type InputOutput struct {
	Name        string    `json:"Name"`
	Direction   Direction `json:"Direction"`
	Type        string    `json:"Type"`
	Description string    `json:"Description"`
}

// Annotation is a note rendered at the top of a page.
type Annotation struct {
	Kind    AnnotationKind `json:"Type"`
	Message string         `json:"Message"`
}

// IsSynthetic reports whether no game record backs the page.
func (p *Page) IsSynthetic() bool {
	return p.NonFGD
}

// Clone returns a deep copy of p.
func (p *Page) Clone() *Page {
	c := *p
	if p.Annotation != nil {
		a := *p.Annotation
		c.Annotation = &a
	}
	c.Properties = slices.Clone(p.Properties)
	c.InputOutputs = slices.Clone(p.InputOutputs)
	return &c
}

// ImageRelativePath is where the extracted icon of the page lives, relative
// to the wiki root: static/img/entities/<game>/<icon name>.png.
func (p *Page) ImageRelativePath() string {
	if p.IconPath == "" {
		return ""
	}
	base := path.Base(strings.ReplaceAll(p.IconPath, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base)) + constants.ExtPNG
	return path.Join(constants.EntityImagesFolder, string(p.Game), base)
}

// PageRelativePath is the extension-less location of the rendered page below
// the pages folder: <game>/<name>.
func (p *Page) PageRelativePath() string {
	if p.Game == "" {
		return p.Name
	}
	return path.Join(string(p.Game), p.Name)
}
