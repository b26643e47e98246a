package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	// Files are doublestar patterns linted when no paths are given.
	Files       []string           `yaml:"files,omitempty"`
	Rules       map[string]RuleCfg `yaml:"rules"`
	Ignore      []string           `yaml:"ignore,omitempty"`
	Overrides   []Override         `yaml:"overrides,omitempty"`
	FrontMatter *bool              `yaml:"front-matter,omitempty"`
}

// Override applies rule settings to files matching glob patterns.
type Override struct {
	Files []string           `yaml:"files"`
	Rules map[string]RuleCfg `yaml:"rules"`
}

// RuleCfg is a YAML union: can be bool (enable/disable) or map[string]any (settings).
type RuleCfg struct {
	Enabled  bool
	Settings map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
// It handles three forms:
//   - false -> Enabled=false, Settings=nil
//   - true  -> Enabled=true,  Settings=nil
//   - {key: val, ...} -> Enabled=true, Settings={key: val, ...}
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			r.Enabled = b
			r.Settings = nil
			return nil
		}
	}

	if value.Kind == yaml.MappingNode {
		var m map[string]any
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid rule config: %w", err)
		}
		r.Enabled = true
		r.Settings = m
		return nil
	}

	return fmt.Errorf("rule config must be a bool or a mapping, got %v", value.Kind)
}

// MarshalYAML writes a disabled rule or one without settings as a bool and
// an enabled rule with settings as its settings mapping.
func (r RuleCfg) MarshalYAML() (any, error) {
	if !r.Enabled {
		return false, nil
	}
	if len(r.Settings) == 0 {
		return true, nil
	}
	return r.Settings, nil
}
