package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schema string

// Validate checks raw config YAML against the embedded schema. Unknown
// top-level keys, wrongly typed values and unknown settings of built-in
// rules are reported. An empty document is valid.
func Validate(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	js, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}

	ctx := cuecontext.New()
	schemaVal := ctx.CompileString(schema)
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("invalid config schema: %w", err)
	}
	def := schemaVal.LookupPath(cue.ParsePath("#Config"))

	dataVal := ctx.CompileBytes(js)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("compile config: %w", err)
	}

	return def.Unify(dataVal).Validate(cue.Concrete(true))
}
