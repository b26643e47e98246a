package output

import (
	"fmt"
	"io"

	"github.com/jeduden/tagcase/internal/lint"
)

// Formatter defines the interface for outputting diagnostics.
type Formatter interface {
	Format(w io.Writer, diagnostics []lint.Diagnostic) error
}

// New returns the formatter registered under name.
func New(name string, color bool) (Formatter, error) {
	switch name {
	case "", "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text or json)", name)
	}
}
