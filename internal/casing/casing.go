// Package casing checks and converts component names between the
// PascalCase and kebab-case conventions.
package casing

import (
	"fmt"
	"strings"
)

// Mode is a component naming convention.
type Mode int

// Supported conventions.
const (
	PascalCase Mode = iota
	KebabCase
)

// Label returns the name of the convention as it appears in config files
// and diagnostic messages.
func (m Mode) Label() string {
	if m == KebabCase {
		return "kebab-case"
	}
	return "PascalCase"
}

// String implements fmt.Stringer.
func (m Mode) String() string { return m.Label() }

// ParseMode converts a config value ("PascalCase" or "kebab-case") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "PascalCase":
		return PascalCase, nil
	case "kebab-case":
		return KebabCase, nil
	}
	return PascalCase, fmt.Errorf("invalid casing %q (valid: PascalCase, kebab-case)", s)
}

// Matches reports whether name is spelled according to mode. A dotted
// name (a namespaced component such as Form.Input) matches when every
// segment does.
func Matches(name string, m Mode) bool {
	if strings.Contains(name, ".") {
		for _, seg := range strings.Split(name, ".") {
			if !Matches(seg, m) {
				return false
			}
		}
		return true
	}
	if m == KebabCase {
		return isKebab(name)
	}
	return isPascal(name)
}

// Canonicalize rewrites name into the spelling required by mode. The result
// is not guaranteed to match mode when name contains characters the
// convention does not allow; callers check with Matches before using it.
func Canonicalize(name string, m Mode) string {
	if m == KebabCase {
		return toKebab(name)
	}
	return toPascal(name)
}

// Pascal returns the PascalCase identity of name. Registration lookups
// compare this form regardless of how the tag was written.
func Pascal(name string) string { return toPascal(name) }

func isPascal(name string) bool {
	if name == "" || !isUpper(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isLetter(name[i]) && !isDigit(name[i]) {
			return false
		}
	}
	return true
}

func isKebab(name string) bool {
	if name == "" || !isLower(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		switch {
		case isLower(c), isDigit(c):
		case c == '-':
			if name[i-1] == '-' || i == len(name)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// words splits name at hyphens and at every lower-case or digit character
// followed by an upper-case letter. Empty segments are dropped.
func words(name string) []string {
	var out []string
	start := 0
	flush := func(end int) {
		if end > start {
			out = append(out, name[start:end])
		}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' {
			flush(i)
			start = i + 1
			continue
		}
		if i > start && isUpper(c) && (isLower(name[i-1]) || isDigit(name[i-1])) {
			flush(i)
			start = i
		}
	}
	flush(len(name))
	return out
}

func toPascal(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, w := range words(name) {
		b.WriteByte(upper(w[0]))
		b.WriteString(w[1:])
	}
	return b.String()
}

func toKebab(name string) string {
	ws := words(name)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "-")
}

func isUpper(c byte) bool  { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool  { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return isUpper(c) || isLower(c) }

func upper(c byte) byte {
	if isLower(c) {
		return c - ('a' - 'A')
	}
	return c
}
