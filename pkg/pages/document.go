package pages

import "github.com/s2wiki/pagetools/pkg/sources"

// Document gathers every page that shares one entity name. Pages are kept in
// the order they were added, which is registered game order for pages that
// came from the dump.
type Document struct {
	Name  string  `json:"Name"`
	Pages []*Page `json:"Pages"`
}

// NewDocument creates an empty document for name.
func NewDocument(name string) *Document {
	return &Document{Name: name, Pages: []*Page{}}
}

// Add appends p to the document.
func (d *Document) Add(p *Page) {
	d.Pages = append(d.Pages, p)
}

// PagesFor returns every page contributed by game id, in order.
func (d *Document) PagesFor(id sources.ID) []*Page {
	var out []*Page
	for _, p := range d.Pages {
		if p.Game == id {
			out = append(out, p)
		}
	}
	return out
}

// Latest returns the last page contributed by game id. When a game yields
// the same entity twice, the later record wins for consumers that need a
// single page per game.
func (d *Document) Latest(id sources.ID) *Page {
	for i := len(d.Pages) - 1; i >= 0; i-- {
		if d.Pages[i].Game == id {
			return d.Pages[i]
		}
	}
	return nil
}

// Games returns each contributing game once, in page order.
func (d *Document) Games() []sources.ID {
	seen := make(map[sources.ID]bool, len(d.Pages))
	var out []sources.ID
	for _, p := range d.Pages {
		if p.Game == "" || seen[p.Game] {
			continue
		}
		seen[p.Game] = true
		out = append(out, p.Game)
	}
	return out
}

// IsSynthetic reports whether every page of the document came from overrides.
func (d *Document) IsSynthetic() bool {
	if len(d.Pages) == 0 {
		return false
	}
	for _, p := range d.Pages {
		if !p.NonFGD {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := &Document{Name: d.Name, Pages: make([]*Page, len(d.Pages))}
	for i, p := range d.Pages {
		c.Pages[i] = p.Clone()
	}
	return c
}
