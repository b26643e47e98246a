package lint

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"

	"github.com/jeduden/tagcase/internal/script"
	"github.com/jeduden/tagcase/internal/template"
)

// Kind is the document format of a File.
type Kind int

// Document formats.
const (
	// SFC is a single-file component; only its top-level <template> block
	// is linted.
	SFC Kind = iota
	// Markdown is a page whose HTML blocks and inline HTML form the template.
	Markdown
)

// KindOf picks the document format from the file extension.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return Markdown
	}
	return SFC
}

// File holds a parsed document and its source.
type File struct {
	Path   string
	Source []byte
	Lines  [][]byte
	Kind   Kind

	// Template is the markup tree rules walk.
	Template *template.Document
	// Scripts are the script blocks the local components come from.
	Scripts []template.Script
	// LocalComponents are the PascalCase names declared by the document's
	// own scripts.
	LocalComponents script.Names
	// AST is the Markdown tree; nil for single-file components.
	AST ast.Node

	lineStarts []int
}

// NewFile parses source according to the format implied by path.
func NewFile(path string, source []byte) (*File, error) {
	f := &File{
		Path:   path,
		Source: source,
		Lines:  bytes.Split(source, []byte("\n")),
		Kind:   KindOf(path),
	}

	switch f.Kind {
	case Markdown:
		markup, node := markdownMarkup(source)
		f.AST = node
		f.Template = template.Parse(markup)
		f.Scripts = template.Scripts(f.Template)
		f.LocalComponents = script.Analyze(markup, f.Scripts)
	default:
		sfc := template.ParseSFC(source)
		f.Template = sfc.Template
		f.Scripts = sfc.Scripts
		f.LocalComponents = script.Analyze(source, f.Scripts)
	}

	f.lineStarts = lineStarts(source)
	return f, nil
}

func lineStarts(source []byte) []int {
	starts := []int{0}
	for i, c := range source {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// LineOfOffset converts a byte offset in Source to a 1-based line number.
func (f *File) LineOfOffset(offset int) int {
	line, _ := f.Position(offset)
	return line
}

// Position converts a byte offset in Source to a 1-based line and a
// 1-based column counted in runes.
func (f *File) Position(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Source) {
		offset = len(f.Source)
	}
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	start := f.lineStarts[lo]
	return lo + 1, utf8.RuneCount(f.Source[start:offset]) + 1
}
