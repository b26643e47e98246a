package config

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. The loaded config's rules
// override the defaults; any rule not mentioned in loaded keeps its default
// value. Files, Ignore and Overrides come from the loaded config only.
func Merge(defaults, loaded *Config) *Config {
	rules := make(map[string]RuleCfg, len(defaults.Rules))
	for k, v := range defaults.Rules {
		rules[k] = v
	}

	if loaded == nil {
		return &Config{Rules: rules, FrontMatter: defaults.FrontMatter}
	}

	for k, v := range loaded.Rules {
		rules[k] = v
	}

	fm := defaults.FrontMatter
	if loaded.FrontMatter != nil {
		fm = loaded.FrontMatter
	}

	return &Config{
		Files:       loaded.Files,
		Rules:       rules,
		Ignore:      loaded.Ignore,
		Overrides:   loaded.Overrides,
		FrontMatter: fm,
	}
}

// Effective returns the effective rule configuration for a given file path.
// It starts with the top-level rules and then applies each override whose
// file patterns match filePath, in order. Later overrides take precedence.
func Effective(cfg *Config, filePath string) map[string]RuleCfg {
	result := make(map[string]RuleCfg, len(cfg.Rules))
	for k, v := range cfg.Rules {
		result[k] = v
	}

	clean := filepath.Clean(filePath)
	for _, o := range cfg.Overrides {
		if matchesAny(o.Files, clean) {
			for k, v := range o.Rules {
				result[k] = v
			}
		}
	}

	return result
}

// FrontMatterEnabled reports whether leading front matter is masked before
// linting. It defaults to true.
func (c *Config) FrontMatterEnabled() bool {
	if c == nil || c.FrontMatter == nil {
		return true
	}
	return *c.FrontMatter
}

// IsIgnored reports whether filePath, its cleaned form or its base name
// matches one of the ignore patterns.
func (c *Config) IsIgnored(filePath string) bool {
	if c == nil {
		return false
	}
	return matchesAny(c.Ignore, filePath) ||
		matchesAny(c.Ignore, filepath.ToSlash(filepath.Clean(filePath))) ||
		matchesAny(c.Ignore, filepath.Base(filePath))
}

// matchesAny returns true if filePath matches any of the given glob patterns.
func matchesAny(patterns []string, filePath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			continue
		}
		if g.Match(filepath.ToSlash(filePath)) {
			return true
		}
	}
	return false
}
