package template

// Script is a <script> block of a document.
type Script struct {
	// Setup is true for <script setup>.
	Setup bool
	// Lang is the value of the lang attribute ("" for plain JavaScript).
	Lang string
	// Content covers the code between the script tags.
	Content Range
}

// SFC is a single-file component split into its top-level blocks.
type SFC struct {
	// Template holds the children of the first top-level <template> block.
	// It is empty when there is no such block, when the block is written
	// in a non-HTML language, or when it is not properly closed.
	Template *Document
	Scripts  []Script
}

// ParseSFC splits a single-file component and parses its template block.
func ParseSFC(src []byte) *SFC {
	doc := Parse(src)
	sfc := &SFC{Template: &Document{}}

	seenTemplate := false
	for _, root := range doc.Roots {
		switch root.Name {
		case "template":
			if seenTemplate {
				continue
			}
			seenTemplate = true
			if !root.Closed || root.SelfClosing {
				continue
			}
			if lang, ok := root.Attr("lang"); ok && lang != "html" {
				continue
			}
			sfc.Template.Roots = root.Children
		case "script":
			sfc.Scripts = append(sfc.Scripts, scriptOf(root))
		}
	}
	return sfc
}

// Scripts returns the top-level <script> blocks of doc.
func Scripts(doc *Document) []Script {
	var out []Script
	for _, root := range doc.Roots {
		if root.Name == "script" {
			out = append(out, scriptOf(root))
		}
	}
	return out
}

func scriptOf(t *Tag) Script {
	lang, _ := t.Attr("lang")
	return Script{
		Setup:   t.HasAttr("setup"),
		Lang:    lang,
		Content: t.Inner,
	}
}
