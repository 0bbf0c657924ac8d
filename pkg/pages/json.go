package pages

import (
	"encoding/json"

	"github.com/s2wiki/pagetools/pkg/sources"
)

// pageJSON fixes the wire shape and field order of a page.
type pageJSON struct {
	Game           *sources.ID   `json:"Game"`
	EntityType     EntityType    `json:"EntityType"`
	Name           string        `json:"Name"`
	Description    string        `json:"Description"`
	IconPath       string        `json:"IconPath"`
	Legacy         bool          `json:"Legacy,omitempty"`
	NonFGD         bool          `json:"NonFGD,omitempty"`
	PageAnnotation *Annotation   `json:"PageAnnotation"`
	Properties     []Property    `json:"Properties"`
	InputOutputs   []InputOutput `json:"InputOutputs"`
}

// MarshalJSON implements json.Marshaler. An unbound game is written as null
// and empty lists as [] so consumers never see a missing key.
func (p Page) MarshalJSON() ([]byte, error) {
	out := pageJSON{
		EntityType:     p.EntityType,
		Name:           p.Name,
		Description:    p.Description,
		IconPath:       p.IconPath,
		Legacy:         p.Legacy,
		NonFGD:         p.NonFGD,
		PageAnnotation: p.Annotation,
		Properties:     p.Properties,
		InputOutputs:   p.InputOutputs,
	}
	if p.Game != "" {
		game := p.Game
		out.Game = &game
	}
	if out.EntityType == "" {
		out.EntityType = EntityTypeDefault
	}
	if out.Properties == nil {
		out.Properties = []Property{}
	}
	if out.InputOutputs == nil {
		out.InputOutputs = []InputOutput{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Unknown keys are ignored.
func (p *Page) UnmarshalJSON(data []byte) error {
	var in pageJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*p = Page{
		EntityType:   in.EntityType,
		Name:         in.Name,
		Description:  in.Description,
		IconPath:     in.IconPath,
		Legacy:       in.Legacy,
		NonFGD:       in.NonFGD,
		Annotation:   in.PageAnnotation,
		Properties:   in.Properties,
		InputOutputs: in.InputOutputs,
	}
	if in.Game != nil {
		p.Game = *in.Game
	}
	return nil
}
