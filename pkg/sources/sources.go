// Package sources defines the registered game sources that contribute entity
// pages. Every page carries the ID of the game it came from, and override
// file names refer to games by the same ID.
//
// Example usage:
//
//	reg := sources.Default()
//
//	game, ok := reg.Lookup("hla")
//	if !ok {
//	    fmt.Print(reg.ValidList())
//	}
//	fmt.Println(game.Name) // Half-Life: Alyx
package sources

import (
	"fmt"
	"slices"
	"strings"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/errors"
)

// ID represents the file-system name of a game, e.g. "cs2".
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Built-in source IDs.
const (
	CS2     ID = "cs2"
	HLA     ID = "hla"
	Dota2   ID = "dota2"
	SteamVR ID = "steamvr"
)

// Game describes one registered source.
type Game struct {
	ID     ID       `json:"id" yaml:"id" mapstructure:"id"`
	Name   string   `json:"name" yaml:"name" mapstructure:"name"`
	Folder string   `json:"folder,omitempty" yaml:"folder,omitempty" mapstructure:"folder"`
	Mod    string   `json:"mod,omitempty" yaml:"mod,omitempty" mapstructure:"mod"`
	FGDs   []string `json:"fgds,omitempty" yaml:"fgds,omitempty" mapstructure:"fgds"`
}

// Games returns the built-in game list in registration order.
func Games() []Game {
	return []Game{
		{ID: CS2, Name: "Counter-Strike 2", Folder: "Counter-Strike Global Offensive/game", Mod: "csgo", FGDs: []string{"csgo.fgd"}},
		{ID: HLA, Name: "Half-Life: Alyx", Folder: "Half-Life Alyx/game", Mod: "hlvr", FGDs: []string{"hlvr.fgd"}},
		{ID: Dota2, Name: "Dota 2", Folder: "dota 2 beta/game", Mod: "dota", FGDs: []string{"dota.fgd"}},
		{ID: SteamVR, Name: "SteamVR Home", Folder: "SteamVR/tools/steamvr_environments/game", Mod: "steamtours", FGDs: []string{"steamtours.fgd"}},
	}
}

// Registry is an ordered, immutable set of games. Registration order is the
// order pages appear in documents and the order valid IDs are listed in.
type Registry struct {
	games []Game
	index map[ID]int
}

// NewRegistry creates a registry from games, keeping their order.
func NewRegistry(games ...Game) (*Registry, error) {
	if len(games) == 0 {
		return nil, &errors.ValidationError{Field: "games", Message: "at least one game must be registered"}
	}

	r := &Registry{
		games: make([]Game, 0, len(games)),
		index: make(map[ID]int, len(games)),
	}
	for _, g := range games {
		switch {
		case g.ID == "":
			return nil, &errors.ValidationError{Field: "id", Value: g.Name, Message: "cannot be empty"}
		case strings.Contains(string(g.ID), constants.TargetSeparator):
			return nil, &errors.ValidationError{
				Field:   "id",
				Value:   g.ID,
				Message: fmt.Sprintf("cannot contain %q", constants.TargetSeparator),
			}
		}
		if _, dup := r.index[g.ID]; dup {
			return nil, &errors.ValidationError{Field: "id", Value: g.ID, Message: "registered twice"}
		}
		if g.Name == "" {
			g.Name = string(g.ID)
		}
		r.index[g.ID] = len(r.games)
		r.games = append(r.games, g)
	}
	return r, nil
}

// Default returns a registry of the built-in games.
func Default() *Registry {
	r, err := NewRegistry(Games()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the game registered under id.
func (r *Registry) Lookup(id string) (Game, bool) {
	i, ok := r.index[ID(id)]
	if !ok {
		return Game{}, false
	}
	return r.games[i], true
}

// Has reports whether id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.index[id]
	return ok
}

// Index returns the registration position of id, or -1.
func (r *Registry) Index(id ID) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Len returns the number of registered games.
func (r *Registry) Len() int {
	return len(r.games)
}

// IDs returns the registered IDs in order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.games))
	for i, g := range r.games {
		ids[i] = g.ID
	}
	return ids
}

// Games returns a copy of the registered games.
func (r *Registry) Games() []Game {
	return slices.Clone(r.games)
}

// ValidList renders the registered IDs for operator facing messages.
func (r *Registry) ValidList() string {
	var b strings.Builder
	b.WriteString("Valid games:\n\n")
	for _, g := range r.games {
		fmt.Fprintf(&b, "- %s\n", g.ID)
	}
	return b.String()
}

// UnknownError builds the error reported for a tag that is not registered.
func (r *Registry) UnknownError(tag, file string) error {
	return errors.NewUnknownSourceError(tag, file, r.ValidList())
}
