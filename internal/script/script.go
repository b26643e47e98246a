// Package script extracts the names of locally declared components from
// the script blocks of a document using tree-sitter.
package script

import (
	"context"
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/jeduden/tagcase/internal/casing"
	"github.com/jeduden/tagcase/internal/template"
)

// componentsQuery finds "components: { ... }" in any object literal, which
// covers export default {...}, defineComponent({...}) and defineOptions.
const componentsQuery = `
(pair
  key: (property_identifier) @key
  value: (object) @components
  (#eq? @key "components"))
`

// Names is a set of PascalCase component names.
type Names map[string]bool

// Sorted returns the names in lexical order.
func (n Names) Sorted() []string {
	out := make([]string, 0, len(n))
	for k := range n {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// language holds a grammar and its lazily compiled query. Compiled queries
// are safe to share; parsers are not.
type language struct {
	lang      *sitter.Language
	queryOnce sync.Once
	query     *sitter.Query
	queryErr  error
}

func (l *language) componentsQuery() (*sitter.Query, error) {
	l.queryOnce.Do(func() {
		l.query, l.queryErr = sitter.NewQuery([]byte(componentsQuery), l.lang)
	})
	return l.query, l.queryErr
}

var languages = map[string]*language{
	"js":  {lang: javascript.GetLanguage()},
	"ts":  {lang: typescript.GetLanguage()},
	"tsx": {lang: tsx.GetLanguage()},
}

// languageFor maps a script lang attribute to a grammar.
func languageFor(lang string) *language {
	switch strings.ToLower(lang) {
	case "ts":
		return languages["ts"]
	case "tsx":
		return languages["tsx"]
	}
	return languages["js"]
}

// Analyze returns the PascalCase names of components declared in the given
// script blocks of src. Blocks that fail to parse contribute nothing.
func Analyze(src []byte, scripts []template.Script) Names {
	names := Names{}
	for _, s := range scripts {
		if s.Content.End <= s.Content.Start || s.Content.End > len(src) {
			continue
		}
		code := src[s.Content.Start:s.Content.End]
		analyzeBlock(code, s, names)
	}
	return names
}

func analyzeBlock(code []byte, s template.Script, names Names) {
	l := languageFor(s.Lang)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(l.lang)

	tree, err := parser.ParseCtx(context.Background(), nil, code)
	if err != nil {
		return
	}
	defer tree.Close()
	root := tree.RootNode()

	if q, err := l.componentsQuery(); err == nil {
		collectComponentOptions(q, root, code, names)
	}
	if s.Setup {
		collectSetupBindings(root, code, names)
	}
}

func add(names Names, name string) {
	if name == "" {
		return
	}
	names[casing.Pascal(name)] = true
}

// collectComponentOptions adds the keys of every components object.
func collectComponentOptions(q *sitter.Query, root *sitter.Node, code []byte, names Names) {
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		match = qc.FilterPredicates(match, code)
		for _, c := range match.Captures {
			if q.CaptureNameForId(c.Index) != "components" {
				continue
			}
			for i := 0; i < int(c.Node.NamedChildCount()); i++ {
				add(names, propertyName(c.Node.NamedChild(i), code))
			}
		}
	}
}

// propertyName returns the key of an object member, or "" for computed
// keys and spreads.
func propertyName(n *sitter.Node, code []byte) string {
	switch n.Type() {
	case "shorthand_property_identifier":
		return n.Content(code)
	case "pair":
		key := n.ChildByFieldName("key")
		if key == nil {
			return ""
		}
		switch key.Type() {
		case "property_identifier":
			return key.Content(code)
		case "string":
			return strings.Trim(key.Content(code), `"'`)
		}
	}
	return ""
}

// collectSetupBindings adds top-level bindings of a <script setup> block:
// imports, variable declarations, functions and classes.
func collectSetupBindings(root *sitter.Node, code []byte, names Names) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		if n.Type() == "export_statement" {
			if decl := n.ChildByFieldName("declaration"); decl != nil {
				n = decl
			}
		}
		switch n.Type() {
		case "import_statement":
			collectImport(n, code, names)
		case "lexical_declaration", "variable_declaration":
			for j := 0; j < int(n.NamedChildCount()); j++ {
				d := n.NamedChild(j)
				if d.Type() != "variable_declarator" {
					continue
				}
				if id := d.ChildByFieldName("name"); id != nil && id.Type() == "identifier" {
					add(names, id.Content(code))
				}
			}
		case "function_declaration", "class_declaration":
			if id := n.ChildByFieldName("name"); id != nil {
				add(names, id.Content(code))
			}
		}
	}
}

func collectImport(n *sitter.Node, code []byte, names Names) {
	if strings.HasPrefix(n.Content(code), "import type") {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		clause := n.NamedChild(i)
		if clause.Type() != "import_clause" {
			continue
		}
		for j := 0; j < int(clause.NamedChildCount()); j++ {
			c := clause.NamedChild(j)
			switch c.Type() {
			case "identifier":
				add(names, c.Content(code))
			case "namespace_import":
				for k := 0; k < int(c.NamedChildCount()); k++ {
					if id := c.NamedChild(k); id.Type() == "identifier" {
						add(names, id.Content(code))
					}
				}
			case "named_imports":
				for k := 0; k < int(c.NamedChildCount()); k++ {
					spec := c.NamedChild(k)
					if spec.Type() != "import_specifier" {
						continue
					}
					id := spec.ChildByFieldName("alias")
					if id == nil {
						id = spec.ChildByFieldName("name")
					}
					if id != nil {
						add(names, id.Content(code))
					}
				}
			}
		}
	}
}
