package fix

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/jeduden/tagcase/internal/config"
	"github.com/jeduden/tagcase/internal/engine"
	"github.com/jeduden/tagcase/internal/lint"
	"github.com/jeduden/tagcase/internal/log"
	"github.com/jeduden/tagcase/internal/rule"
)

// maxPasses bounds the fix loop for a single file.
const maxPasses = 10

// Fixer applies auto-fixes for fixable rules and reports remaining diagnostics.
type Fixer struct {
	Config           *config.Config
	Rules            []rule.Rule
	StripFrontMatter bool
	Logger           *log.Logger
}

// FixResult holds the outcome of a fix run.
type FixResult struct {
	// Diagnostics contains remaining diagnostics after fixing (from non-fixable
	// rules and any violations that could not be auto-fixed).
	Diagnostics []lint.Diagnostic
	// Modified lists file paths that were written back to disk.
	Modified []string
	// Errors contains any errors encountered during the fix process.
	Errors []error
}

// Fix applies auto-fixes to the files at the given paths and returns a FixResult
// containing remaining diagnostics, modified file paths, and any errors.
func (f *Fixer) Fix(paths []string) *FixResult {
	res := &FixResult{}

	for _, path := range paths {
		if f.Config.IsIgnored(path) {
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("stat %q: %w", path, err))
			continue
		}

		out, diags, errs := f.FixSource(path, source)
		res.Diagnostics = append(res.Diagnostics, diags...)
		res.Errors = append(res.Errors, errs...)

		if bytes.Equal(source, out) {
			continue
		}
		if err := os.WriteFile(path, out, info.Mode()); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("writing %q: %w", path, err))
			continue
		}
		f.logf("fixed: %s", path)
		res.Modified = append(res.Modified, path)
	}

	engine.SortDiagnostics(res.Diagnostics)
	return res
}

// FixSource fixes source as if it were read from path and returns the new
// content together with the diagnostics that remain after fixing.
func (f *Fixer) FixSource(path string, source []byte) ([]byte, []lint.Diagnostic, []error) {
	// Front matter is blanked while fixing and restored when writing.
	content := source
	prefixLen := 0
	if f.StripFrontMatter {
		content, prefixLen = lint.MaskFrontMatter(source)
	}

	effective := config.Effective(f.Config, path)
	fixable, errs := f.fixableRules(effective)

	// Apply fixable rules in repeated passes until stable. A later
	// rule's fix may introduce violations caught by an earlier rule.
	current := content
	for pass := 0; pass < maxPasses; pass++ {
		before := current
		for _, fr := range fixable {
			lf, err := lint.NewFile(path, current)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %q: %w", path, err))
				break
			}
			if len(fr.Check(lf)) == 0 {
				continue
			}
			current = fr.Fix(lf)
		}
		if bytes.Equal(before, current) {
			break
		}
	}

	// Final lint pass with all enabled rules.
	lf, err := lint.NewFile(path, current)
	if err != nil {
		return source, nil, append(errs, fmt.Errorf("parsing %q after fix: %w", path, err))
	}
	diags, _ := engine.CheckRules(lf, f.Rules, effective)
	engine.SortDiagnostics(diags)

	if bytes.Equal(content, current) {
		return source, diags, errs
	}
	out := make([]byte, 0, len(current))
	out = append(out, source[:prefixLen]...)
	out = append(out, current[prefixLen:]...)
	return out, diags, errs
}

// fixableRules returns enabled, configured rules that implement
// FixableRule, sorted by ID.
func (f *Fixer) fixableRules(effective map[string]config.RuleCfg) ([]rule.FixableRule, []error) {
	var fixable []rule.FixableRule
	var errs []error
	for _, rl := range f.Rules {
		cfg, ok := effective[rl.Name()]
		if !ok || !cfg.Enabled {
			continue
		}
		configured, err := engine.ConfigureRule(rl, cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if fr, ok := configured.(rule.FixableRule); ok {
			fixable = append(fixable, fr)
		}
	}
	sort.Slice(fixable, func(i, j int) bool {
		return fixable[i].ID() < fixable[j].ID()
	})
	return fixable, errs
}

func (f *Fixer) logf(format string, args ...any) {
	if f.Logger != nil {
		f.Logger.Printf(format, args...)
	}
}
