// Package table converts domain values into rows for CLI tables.
package table

import (
	"strconv"
	"strings"

	"github.com/s2wiki/pagetools/pkg/index"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents data formatted for table output. Headers are title-cased
// by the formatter.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// maxDescription bounds descriptions in wide tables.
const maxDescription = 60

// DocumentsToTableData lists one row per document.
func DocumentsToTableData(docs []*pages.Document, wide bool) Data {
	headers := []string{"entity", "type", "games", "pages"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "flags", "description")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		row := []string{
			doc.Name,
			entityType(doc),
			joinGames(doc.Games()),
			strconv.Itoa(len(doc.Pages)),
		}
		if wide {
			row = append(row, flags(doc), Truncate(longestDescription(doc), maxDescription))
		}
		rows = append(rows, row)
	}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// GamesToTableData lists the registered games in registration order.
func GamesToTableData(reg *sources.Registry) Data {
	rows := make([][]string, 0, reg.Len())
	for i, g := range reg.Games() {
		rows = append(rows, []string{strconv.Itoa(i + 1), g.ID.String(), g.Name, g.Mod, g.Folder})
	}
	return Data{
		Headers:         []string{"#", "id", "name", "mod", "folder"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
}

// IndexToTableData lists index entries.
func IndexToTableData(entries []index.Entry) Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		icon := e.Icon
		if icon == "" {
			icon = "-"
		}
		rows = append(rows, []string{e.Classname, strings.Join(e.Games, ", "), icon})
	}
	return Data{Headers: []string{"classname", "games", "icon"}, Rows: rows}
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}

func entityType(doc *pages.Document) string {
	for _, p := range doc.Pages {
		if !p.EntityType.IsDefault() {
			return p.EntityType.String()
		}
	}
	return pages.EntityTypeDefault.String()
}

func joinGames(ids []sources.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

func flags(doc *pages.Document) string {
	var out []string
	if doc.IsSynthetic() {
		out = append(out, "non-fgd")
	}
	for _, p := range doc.Pages {
		if p.Legacy {
			out = append(out, "legacy")
			break
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func longestDescription(doc *pages.Document) string {
	longest := ""
	for _, p := range doc.Pages {
		if len(p.Description) > len(longest) {
			longest = p.Description
		}
	}
	return longest
}
