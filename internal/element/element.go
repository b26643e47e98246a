// Package element classifies template tags as native markup or component
// candidates.
package element

import "github.com/jeduden/tagcase/internal/template"

// dynamicBindings are attributes that replace the rendered tag name with a
// runtime expression.
var dynamicBindings = []string{":is", "v-bind:is", "v-is"}

// IsComponentCandidate reports whether t may denote a user component.
// Native HTML and SVG names, everything inside a MathML subtree, and tags
// with a dynamic component binding are never candidates.
func IsComponentCandidate(t *template.Tag) bool {
	for _, a := range dynamicBindings {
		if t.HasAttr(a) {
			return false
		}
	}
	return IsCandidateName(t.Name, t.Namespace)
}

// IsCandidateName reports whether name, found in namespace ns, may denote a
// user component. Lookups are case-sensitive.
func IsCandidateName(name string, ns template.Namespace) bool {
	switch ns {
	case template.HTML, template.SVG:
	default:
		return false
	}
	if name == "" || htmlElements[name] || svgElements[name] {
		return false
	}
	return true
}
