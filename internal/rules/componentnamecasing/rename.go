package componentnamecasing

import (
	"github.com/jeduden/tagcase/internal/casing"
	"github.com/jeduden/tagcase/internal/lint"
	"github.com/jeduden/tagcase/internal/template"
)

// Rename returns the edits that respell t in mode m: the start-tag name
// and, when the end tag is spelled identically, the end-tag name. Nothing
// around the name tokens is touched. It returns nil when the canonical
// spelling would not itself satisfy m.
func Rename(t *template.Tag, m casing.Mode) []lint.Edit {
	name := casing.Canonicalize(t.Name, m)
	if name == "" || name == t.Name || !casing.Matches(name, m) {
		return nil
	}
	edits := []lint.Edit{{Start: t.NameRange.Start, End: t.NameRange.End, Text: name}}
	if t.EndNameRange != nil {
		edits = append(edits, lint.Edit{Start: t.EndNameRange.Start, End: t.EndNameRange.End, Text: name})
	}
	return edits
}
