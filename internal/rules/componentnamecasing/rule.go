package componentnamecasing

import (
	"fmt"

	"github.com/jeduden/tagcase/internal/casing"
	"github.com/jeduden/tagcase/internal/element"
	"github.com/jeduden/tagcase/internal/lint"
	"github.com/jeduden/tagcase/internal/resolve"
	"github.com/jeduden/tagcase/internal/rule"
	"github.com/jeduden/tagcase/internal/template"
)

func init() {
	rule.Register(New())
}

// Rule enforces one casing convention on component tag names.
type Rule struct {
	Casing                            casing.Mode
	RegisteredComponentsOnly          bool
	GlobalRegisteredComponents        []string
	GlobalRegisteredComponentPatterns []string
	Ignores                           []string

	res *resolve.Resolver
}

// New returns the rule with default settings: PascalCase, registered
// components only.
func New() *Rule {
	r := &Rule{Casing: casing.PascalCase, RegisteredComponentsOnly: true}
	r.res, _ = resolve.New(r.options())
	return r
}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "TC001" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "component-name-casing" }

func (r *Rule) options() resolve.Options {
	return resolve.Options{
		RegisteredComponentsOnly:          r.RegisteredComponentsOnly,
		GlobalRegisteredComponents:        r.GlobalRegisteredComponents,
		GlobalRegisteredComponentPatterns: r.GlobalRegisteredComponentPatterns,
		Ignores:                           r.Ignores,
	}
}

// resolver returns the resolver built by ApplySettings, or compiles one
// from the exported fields when the rule was constructed directly.
func (r *Rule) resolver() (*resolve.Resolver, error) {
	if r.res != nil {
		return r.res, nil
	}
	return resolve.New(r.options())
}

// Check implements rule.Rule. Tags are visited in document order; an
// ignored tag is skipped but its children are still checked.
func (r *Rule) Check(f *lint.File) []lint.Diagnostic {
	if f.Template == nil {
		return nil
	}
	res, err := r.resolver()
	if err != nil {
		return nil
	}

	var diags []lint.Diagnostic
	f.Template.Walk(func(t *template.Tag) bool {
		if res.Ignored(t.Name) {
			return true
		}
		if !element.IsComponentCandidate(t) {
			return true
		}
		if !res.InScope(t.Name, f.LocalComponents) {
			return true
		}
		if casing.Matches(t.Name, r.Casing) {
			return true
		}
		diags = append(diags, r.diagnostic(f, t))
		return true
	})
	return diags
}

func (r *Rule) diagnostic(f *lint.File, t *template.Tag) lint.Diagnostic {
	line, col := f.Position(t.NameRange.Start)
	endLine, endCol := f.Position(t.NameRange.End)
	return lint.Diagnostic{
		File:      f.Path,
		Line:      line,
		Column:    col,
		EndLine:   endLine,
		EndColumn: endCol,
		RuleID:    r.ID(),
		RuleName:  r.Name(),
		Severity:  lint.Warning,
		Message:   fmt.Sprintf("Component name \"%s\" is not %s.", t.Name, r.Casing.Label()),
		Fix:       Rename(t, r.Casing),
	}
}

// Fix implements rule.FixableRule.
func (r *Rule) Fix(f *lint.File) []byte {
	return lint.ApplyEdits(f.Source, lint.FixEdits(r.Check(f)))
}

// ApplySettings implements rule.Configurable.
func (r *Rule) ApplySettings(settings map[string]any) error {
	for k, v := range settings {
		switch k {
		case "casing":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("component-name-casing: casing must be a string, got %T", v)
			}
			m, err := casing.ParseMode(s)
			if err != nil {
				return fmt.Errorf("component-name-casing: %w", err)
			}
			r.Casing = m
		case "registered-components-only":
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("component-name-casing: registered-components-only must be a bool, got %T", v)
			}
			r.RegisteredComponentsOnly = b
		case "global-registered-components":
			list, ok := toStringSlice(v)
			if !ok {
				return fmt.Errorf("component-name-casing: global-registered-components must be a list of strings, got %T", v)
			}
			r.GlobalRegisteredComponents = list
		case "global-registered-component-patterns":
			list, ok := toStringSlice(v)
			if !ok {
				return fmt.Errorf("component-name-casing: global-registered-component-patterns must be a list of strings, got %T", v)
			}
			r.GlobalRegisteredComponentPatterns = list
		case "ignores":
			list, ok := toStringSlice(v)
			if !ok {
				return fmt.Errorf("component-name-casing: ignores must be a list of strings, got %T", v)
			}
			r.Ignores = list
		default:
			return fmt.Errorf("component-name-casing: unknown setting %q", k)
		}
	}

	res, err := resolve.New(r.options())
	if err != nil {
		return fmt.Errorf("component-name-casing: %w", err)
	}
	r.res = res
	return nil
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return map[string]any{
		"casing":                               casing.PascalCase.Label(),
		"registered-components-only":           true,
		"global-registered-components":         []string{},
		"global-registered-component-patterns": []string{},
		"ignores":                              []string{},
	}
}

func toStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, str)
		}
		return result, true
	case nil:
		return nil, true
	}
	return nil, false
}

var _ rule.FixableRule = (*Rule)(nil)
var _ rule.Configurable = (*Rule)(nil)
