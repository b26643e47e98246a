// Package resolve decides which component candidates are in scope for
// casing checks under a project's registration rules.
package resolve

import (
	"fmt"
	"regexp"

	"github.com/jeduden/tagcase/internal/casing"
)

// Options is the registration configuration of one run.
type Options struct {
	// RegisteredComponentsOnly restricts checking to components that are
	// declared locally or registered globally.
	RegisteredComponentsOnly bool
	// GlobalRegisteredComponents are PascalCase names known project-wide.
	GlobalRegisteredComponents []string
	// GlobalRegisteredComponentPatterns are regular expressions tested
	// against the PascalCase form of a candidate and against the name as
	// written.
	GlobalRegisteredComponentPatterns []string
	// Ignores are tag names, as written, that are never checked.
	Ignores []string
}

// Resolver answers scope questions for one run. It is read-only after New
// and safe to share.
type Resolver struct {
	registeredOnly bool
	globals        map[string]bool
	patterns       []*regexp.Regexp
	ignores        map[string]bool
}

// New compiles opts. It fails only on an invalid pattern.
func New(opts Options) (*Resolver, error) {
	r := &Resolver{
		registeredOnly: opts.RegisteredComponentsOnly,
		globals:        make(map[string]bool, len(opts.GlobalRegisteredComponents)),
		ignores:        make(map[string]bool, len(opts.Ignores)),
	}
	for _, g := range opts.GlobalRegisteredComponents {
		r.globals[g] = true
	}
	for _, n := range opts.Ignores {
		r.ignores[n] = true
	}
	for _, p := range opts.GlobalRegisteredComponentPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		r.patterns = append(r.patterns, re)
	}
	return r, nil
}

// Ignored reports whether the tag, spelled exactly as written, is exempt.
func (r *Resolver) Ignored(written string) bool {
	return r.ignores[written]
}

// InScope reports whether a candidate should be checked. local holds the
// PascalCase names declared by the document itself.
//
// Strategies are evaluated in order and the first hit wins: registered
// only disabled, local declaration, global name, global pattern.
func (r *Resolver) InScope(written string, local map[string]bool) bool {
	if !r.registeredOnly {
		return true
	}
	key := casing.Pascal(written)
	if local[key] {
		return true
	}
	if r.globals[key] {
		return true
	}
	for _, re := range r.patterns {
		if re.MatchString(key) || re.MatchString(written) {
			return true
		}
	}
	return false
}
