// Package template parses HTML-like template markup into a tree of tags
// that keeps the byte ranges of every tag name token, so rules can rewrite
// names without touching the surrounding markup.
package template

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Namespace is the markup vocabulary a tag was found in.
type Namespace int

// Namespaces.
const (
	HTML Namespace = iota
	SVG
	MathML
)

// String implements fmt.Stringer.
func (n Namespace) String() string {
	switch n {
	case SVG:
		return "svg"
	case MathML:
		return "math"
	}
	return "html"
}

// Range is a half-open byte range [Start, End) in the parsed source.
type Range struct {
	Start int
	End   int
}

// Attr is an attribute as written on a start tag. Name is lower-cased.
type Attr struct {
	Name  string
	Value string
}

// Tag is one element occurrence.
type Tag struct {
	// Name is the tag name exactly as written in the start tag.
	Name string
	// NameRange covers the name token of the start tag.
	NameRange Range
	// EndNameRange covers the name token of the end tag. It is nil when
	// the element has no end tag or the end tag is spelled differently.
	EndNameRange *Range
	// Namespace is the vocabulary the tag belongs to.
	Namespace Namespace
	// SelfClosing is true for "<x/>".
	SelfClosing bool
	// Closed is true when the element was terminated by an end tag, is
	// self-closing, or is a void element.
	Closed bool
	// Outer covers the whole element from '<' of the start tag to '>' of
	// the end tag (or of the start tag when there is no end tag).
	Outer Range
	// Inner covers the content between the start and end tags. It is
	// empty when the element is not closed by an end tag.
	Inner Range
	// Index is the position of the tag in document order.
	Index int

	Attrs    []Attr
	Parent   *Tag
	Children []*Tag
}

// Attr returns the value of the named attribute and whether it exists.
func (t *Tag) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the tag carries the named attribute.
func (t *Tag) HasAttr(name string) bool {
	_, ok := t.Attr(name)
	return ok
}

// Document is a parsed template.
type Document struct {
	Roots []*Tag
}

// Walk visits every tag in document order (pre-order). Returning false
// from fn skips the tag's children.
func (d *Document) Walk(fn func(t *Tag) bool) {
	for _, r := range d.Roots {
		walk(r, fn)
	}
}

func walk(t *Tag, fn func(t *Tag) bool) {
	if !fn(t) {
		return
	}
	for _, c := range t.Children {
		walk(c, fn)
	}
}

// Tags returns all tags in document order.
func (d *Document) Tags() []*Tag {
	var out []*Tag
	d.Walk(func(t *Tag) bool {
		out = append(out, t)
		return true
	})
	return out
}

// voidElements never have an end tag. Only lower-case spellings count so
// that components such as <Input> still nest.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Parse tokenizes src and builds the tag tree. It never fails: markup the
// tokenizer cannot finish (an unterminated start tag at end of input, for
// example) simply produces no tag.
func Parse(src []byte) *Document {
	p := &parser{src: src}
	p.run()
	return &Document{Roots: p.roots}
}

// rawTextElements hold text, not markup, inside a template.
var rawTextElements = map[string]bool{
	"iframe":   true,
	"noscript": true,
	"script":   true,
	"style":    true,
	"textarea": true,
	"title":    true,
}

type parser struct {
	src   []byte
	roots []*Tag
	stack []*Tag
	index int
}

func (p *parser) run() {
	// Masking only blanks text, so offsets into the masked copy are
	// offsets into src.
	z := html.NewTokenizer(bytes.NewReader(maskInterpolations(p.src)))
	offset := 0
	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			return
		case html.StartTagToken, html.SelfClosingTagToken:
			p.startTag(z, start, offset, tt == html.SelfClosingTagToken)
		case html.EndTagToken:
			p.endTag(start, offset)
		}
	}
}

// nameRange returns the range of the tag name inside the raw token that
// starts at start. prefix is 1 for "<" and 2 for "</".
func (p *parser) nameRange(start, end, prefix int) Range {
	i := start + prefix
	j := i
	for j < end {
		c := p.src[j]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '/' || c == '>' {
			break
		}
		j++
	}
	return Range{Start: i, End: j}
}

func (p *parser) currentNamespace() Namespace {
	if len(p.stack) == 0 {
		return HTML
	}
	top := p.stack[len(p.stack)-1]
	if top.Namespace == SVG && top.Name == "foreignObject" {
		return HTML
	}
	return top.Namespace
}

func (p *parser) startTag(z *html.Tokenizer, start, end int, selfClosing bool) {
	nr := p.nameRange(start, end, 1)
	name := string(p.src[nr.Start:nr.End])

	ns := p.currentNamespace()
	if ns == HTML {
		switch name {
		case "svg":
			ns = SVG
		case "math":
			ns = MathML
		}
	}

	t := &Tag{
		Name:        name,
		NameRange:   nr,
		Namespace:   ns,
		SelfClosing: selfClosing,
		Outer:       Range{Start: start, End: end},
		Inner:       Range{Start: end, End: end},
		Index:       p.index,
		Attrs:       readAttrs(z),
	}
	p.index++

	// The tokenizer switches to raw text after title, textarea, xmp,
	// plaintext and friends whatever their case. Templates only do that for
	// the exact lower-case HTML spelling of a few elements.
	if selfClosing || ns != HTML || !rawTextElements[name] {
		z.NextIsNotRawText()
	}

	if len(p.stack) > 0 {
		parent := p.stack[len(p.stack)-1]
		t.Parent = parent
		parent.Children = append(parent.Children, t)
	} else {
		p.roots = append(p.roots, t)
	}

	if selfClosing || (ns == HTML && voidElements[name]) {
		t.Closed = true
		return
	}
	p.stack = append(p.stack, t)
}

func readAttrs(z *html.Tokenizer) []Attr {
	var attrs []Attr
	for {
		key, val, more := z.TagAttr()
		if len(key) > 0 {
			attrs = append(attrs, Attr{Name: string(key), Value: string(val)})
		}
		if !more {
			return attrs
		}
	}
}

// endTag closes the nearest open element with the same name, compared
// case-insensitively. Elements opened above it stay unclosed. A stray end
// tag with no open counterpart is dropped.
func (p *parser) endTag(start, end int) {
	nr := p.nameRange(start, end, 2)
	name := string(p.src[nr.Start:nr.End])

	for i := len(p.stack) - 1; i >= 0; i-- {
		t := p.stack[i]
		if !strings.EqualFold(t.Name, name) {
			continue
		}
		t.Closed = true
		t.Inner.End = start
		t.Outer.End = end
		if t.Name == name {
			r := nr
			t.EndNameRange = &r
		}
		p.stack = p.stack[:i]
		return
	}
}

// maskInterpolations returns a copy of src with every {{ ... }} text
// interpolation blanked to spaces, newlines kept. Delimiters inside tags
// (attribute values) and comments are left alone. An interpolation that
// never closes is left as written.
func maskInterpolations(src []byte) []byte {
	if !bytes.Contains(src, []byte("{{")) {
		return src
	}
	out := bytes.Clone(src)
	for i := 0; i < len(out); {
		switch {
		case bytes.HasPrefix(out[i:], []byte("<!--")):
			end := bytes.Index(out[i+4:], []byte("-->"))
			if end < 0 {
				return out
			}
			i += 4 + end + 3
		case out[i] == '<' && i+1 < len(out) && isTagStart(out[i+1]):
			start := i
			i = skipTag(out, i+1)
			// Script and style bodies are not template text.
			name := tagName(out[start+1 : i])
			if (name == "script" || name == "style") && !bytes.HasSuffix(out[start:i], []byte("/>")) {
				end := bytes.Index(out[i:], []byte("</"+name))
				if end < 0 {
					return out
				}
				i += end
			}
		case bytes.HasPrefix(out[i:], []byte("{{")):
			end := bytes.Index(out[i+2:], []byte("}}"))
			if end < 0 {
				return out
			}
			stop := i + 2 + end + 2
			for ; i < stop; i++ {
				if out[i] != '\n' && out[i] != '\r' {
					out[i] = ' '
				}
			}
		default:
			i++
		}
	}
	return out
}

// tagName returns the name at the start of a tag body.
func tagName(body []byte) string {
	j := 0
	for ; j < len(body); j++ {
		c := body[j]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '>' || (c == '/' && j > 0) {
			break
		}
	}
	return string(body[:j])
}

func isTagStart(c byte) bool {
	return c == '/' || c == '!' || c == '?' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// skipTag returns the offset just past the '>' that closes the tag whose
// body starts at i, ignoring '>' inside quoted attribute values.
func skipTag(src []byte, i int) int {
	var quote byte
	for ; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i + 1
		}
	}
	return i
}
