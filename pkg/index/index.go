// Package index builds the search index of the wiki: one entry per resolved
// document summarising its description, icon and the games it appears in.
package index

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/pages"
)

// Entry is one row of the entity index.
type Entry struct {
	Classname   string   `json:"Classname"`
	Description string   `json:"Description"`
	Icon        string   `json:"Icon"`
	Games       []string `json:"Games"`
}

// IconResolver reports whether an icon exists at a path relative to the wiki
// root.
type IconResolver func(rel string) bool

// FileExists resolves icons against root on fs.
func FileExists(fs afero.Fs, root string) IconResolver {
	return func(rel string) bool {
		ok, err := afero.Exists(fs, filepath.Join(root, filepath.FromSlash(rel)))
		return err == nil && ok
	}
}

// Build summarises docs into index entries ordered by classname. A nil
// resolver treats every icon as missing.
func Build(docs []*pages.Document, exists IconResolver) []Entry {
	if exists == nil {
		exists = func(string) bool { return false }
	}

	entries := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, entryFor(doc, exists))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Classname < entries[j].Classname
	})
	return entries
}

func entryFor(doc *pages.Document, exists IconResolver) Entry {
	entry := Entry{
		Classname: doc.Name,
		Games:     []string{},
	}

	longest := ""
	for _, page := range doc.Pages {
		if len(page.Description) > len(longest) {
			longest = page.Description
		}
		if icon := iconFor(page, exists); icon != "" {
			entry.Icon = icon
		}
	}
	entry.Description = strings.ReplaceAll(SanitizeTable(longest), "\n", "<br/>")

	for _, game := range doc.Games() {
		entry.Games = append(entry.Games, game.String())
	}
	return entry
}

// iconFor prefers the extracted image over the raw material path and returns
// a site path with the static folder removed.
func iconFor(page *pages.Page, exists IconResolver) string {
	if page.IconPath == "" {
		return ""
	}

	var icon string
	switch {
	case exists(page.ImageRelativePath()):
		icon = page.ImageRelativePath()
	case exists(page.IconPath):
		icon = page.IconPath
	default:
		return ""
	}
	if strings.HasPrefix(icon, constants.StaticFolder+"/") {
		icon = strings.TrimPrefix(icon, constants.StaticFolder)
	}
	return icon
}
