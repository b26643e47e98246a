package lint

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// GitignoreMatcher checks whether a given path is ignored according to
// .gitignore rules. It supports multiple .gitignore files at different
// directory levels; each file's patterns apply below its own directory.
type GitignoreMatcher struct {
	// files ordered from root to leaf.
	files []gitignoreFile
}

type gitignoreFile struct {
	base string
	gi   *ignore.GitIgnore
}

// NewGitignoreMatcher creates a matcher by collecting .gitignore files
// from the given root directory, all its subdirectories and its ancestor
// directories up to the filesystem root.
func NewGitignoreMatcher(root string) *GitignoreMatcher {
	m := &GitignoreMatcher{}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return m
	}

	for _, path := range collectAncestorGitignores(absRoot) {
		m.add(path)
	}

	_ = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() && info.Name() == ".git" {
			return filepath.SkipDir
		}
		if !info.IsDir() && info.Name() == ".gitignore" {
			m.add(path)
		}
		return nil
	})

	return m
}

func (m *GitignoreMatcher) add(path string) {
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return
	}
	m.files = append(m.files, gitignoreFile{base: filepath.Dir(path), gi: gi})
}

// collectAncestorGitignores finds .gitignore files in directories above
// the given root, ordered from the filesystem root down to root's parent.
func collectAncestorGitignores(root string) []string {
	var ancestors []string
	dir := filepath.Dir(root)
	for {
		gi := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gi); err == nil {
			ancestors = append([]string{gi}, ancestors...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ancestors
}

// IsIgnored returns true if the given absolute path should be ignored.
// isDir indicates whether the path is a directory.
func (m *GitignoreMatcher) IsIgnored(absPath string, isDir bool) bool {
	for _, f := range m.files {
		rel, err := filepath.Rel(f.base, absPath)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		if isDir {
			rel += "/"
		}
		if f.gi.MatchesPath(rel) {
			return true
		}
	}
	return false
}
