package lint

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// markdownMarkup parses a Markdown page and returns a copy of source in
// which every byte outside HTML blocks and inline raw HTML is replaced by a
// space. Newlines are kept, so offsets and positions in the copy are the
// same as in source. Front matter and code are masked out.
func markdownMarkup(source []byte) ([]byte, ast.Node) {
	md := goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))
	doc := md.Parser().Parse(text.NewReader(source))

	masked := make([]byte, len(source))
	for i, c := range source {
		if c == '\n' {
			masked[i] = '\n'
		} else {
			masked[i] = ' '
		}
	}
	reveal := func(seg text.Segment) {
		if seg.Start < 0 || seg.Stop > len(source) || seg.Start >= seg.Stop {
			return
		}
		copy(masked[seg.Start:seg.Stop], source[seg.Start:seg.Stop])
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch h := n.(type) {
		case *ast.HTMLBlock:
			lines := h.Lines()
			for i := 0; i < lines.Len(); i++ {
				reveal(lines.At(i))
			}
			if h.HasClosure() {
				reveal(h.ClosureLine)
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			for i := 0; i < h.Segments.Len(); i++ {
				reveal(h.Segments.At(i))
			}
		}
		return ast.WalkContinue, nil
	})

	return masked, doc
}
