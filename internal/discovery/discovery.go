// Package discovery finds Vue single-file components and Markdown pages by
// expanding the glob patterns from config.
package discovery

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeduden/tagcase/internal/lint"
)

// DefaultPatterns are used when the config names no files.
var DefaultPatterns = []string{"**/*.vue"}

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of doublestar patterns, relative to BaseDir.
	// An empty or nil list means no files are discovered.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// UseGitignore enables filtering by .gitignore rules.
	UseGitignore bool
}

// Discover walks BaseDir and returns files matching any of the configured
// glob patterns. Results are deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	if len(opts.Patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	validPatterns := validatePatterns(opts.Patterns)
	if len(validPatterns) == 0 {
		return nil, nil
	}

	var gitMatcher *lint.GitignoreMatcher
	if opts.UseGitignore {
		gitMatcher = lint.NewGitignoreMatcher(baseDir)
	}

	w := &walker{
		base:     baseDir,
		absBase:  absBase,
		patterns: validPatterns,
		git:      gitMatcher,
		seen:     make(map[string]bool),
	}

	if err := filepath.WalkDir(absBase, w.visit); err != nil {
		return nil, err
	}

	sort.Strings(w.result)
	return w.result, nil
}

// validatePatterns returns patterns that are syntactically valid.
func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

type walker struct {
	base     string
	absBase  string
	patterns []string
	git      *lint.GitignoreMatcher
	seen     map[string]bool
	result   []string
}

func (w *walker) visit(path string, d os.DirEntry, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}

	rel, err := filepath.Rel(w.absBase, path)
	if err != nil || rel == "." {
		return nil
	}

	if d.IsDir() && skipDirs[d.Name()] {
		return filepath.SkipDir
	}
	if w.git != nil && w.git.IsIgnored(path, d.IsDir()) {
		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}
	if d.IsDir() {
		return nil
	}

	rel = filepath.ToSlash(rel)
	if w.matchesAny(rel) && !w.seen[rel] {
		w.seen[rel] = true
		// Report paths relative to the base the caller gave us.
		w.result = append(w.result, filepath.Join(w.base, filepath.FromSlash(rel)))
	}
	return nil
}

func (w *walker) matchesAny(rel string) bool {
	for _, p := range w.patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}
