package index

import (
	"html"
	"regexp"
	"strings"
)

// allowedTags are the inline tags kept as markup. Every other tag is escaped.
var allowedTags = map[string]bool{
	"b":      true,
	"br":     true,
	"strong": true,
}

var (
	tagPattern = regexp.MustCompile(`<[^>]*>`)

	placeholders = strings.NewReplacer(
		"<br>", "\n",
		"<original name>", "",
		"<Award Text>", "",
		"<picker>", "",
		"<None>", "None",
	)

	braces = strings.NewReplacer("{", `\{`, "}", `\}`)
)

// Sanitize makes text taken from game data safe to embed in MDX.
func Sanitize(s string) string {
	s = placeholders.Replace(s)
	s = tagPattern.ReplaceAllStringFunc(s, func(tag string) string {
		if allowedTags[tagName(tag)] {
			return tag
		}
		return html.EscapeString(tag)
	})
	s = escapeBrackets(s)
	return braces.Replace(s)
}

// SanitizeTable is Sanitize for text placed in a markdown table cell.
func SanitizeTable(s string) string {
	return strings.ReplaceAll(Sanitize(s), "|", `\|`)
}

// tagName returns the lower-cased element name of a tag such as "</Strong>".
func tagName(tag string) string {
	name := strings.TrimPrefix(tag[1:], "/")
	end := strings.IndexFunc(name, func(r rune) bool {
		return !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	if end >= 0 {
		name = name[:end]
	}
	return strings.ToLower(name)
}

// escapeBrackets escapes every '<' not closed by a '>' before the next '<',
// and every '>' that does not close an open '<'.
func escapeBrackets(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	open := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			next := strings.IndexAny(s[i+1:], "<>")
			if next < 0 || s[i+1+next] == '<' {
				b.WriteString("&lt;")
				continue
			}
			open = true
		case '>':
			if !open {
				b.WriteString("&gt;")
				continue
			}
			open = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
