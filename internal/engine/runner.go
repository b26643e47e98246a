package engine

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jeduden/tagcase/internal/config"
	"github.com/jeduden/tagcase/internal/lint"
	"github.com/jeduden/tagcase/internal/log"
	"github.com/jeduden/tagcase/internal/rule"
)

// Runner drives the linting pipeline: for each file it reads the content,
// builds a File (parsing the template once), determines the effective rule
// configuration, runs enabled rules, and collects diagnostics.
type Runner struct {
	Config           *config.Config
	Rules            []rule.Rule
	StripFrontMatter bool
	// Jobs bounds the number of files linted at once. Zero or less means
	// GOMAXPROCS.
	Jobs   int
	Logger *log.Logger
}

// Result holds the output of a lint run.
type Result struct {
	Diagnostics []lint.Diagnostic
	Errors      []error
}

// fileResult is the outcome for one path; each worker owns one slot.
type fileResult struct {
	diags []lint.Diagnostic
	errs  []error
}

// Run lints the files at the given paths and returns a Result containing
// all diagnostics (sorted by file, line, column) and any errors encountered.
func (r *Runner) Run(paths []string) *Result {
	return r.RunContext(context.Background(), paths)
}

// RunContext is Run with cancellation. Files not started before ctx is
// done are skipped and ctx's error is reported once.
func (r *Runner) RunContext(ctx context.Context, paths []string) *Result {
	results := make([]fileResult, len(paths))

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.lintPath(path)
			return nil
		})
	}

	res := &Result{}
	if err := g.Wait(); err != nil {
		res.Errors = append(res.Errors, err)
	}
	for _, fr := range results {
		res.Diagnostics = append(res.Diagnostics, fr.diags...)
		res.Errors = append(res.Errors, fr.errs...)
	}
	SortDiagnostics(res.Diagnostics)
	return res
}

func (r *Runner) lintPath(path string) fileResult {
	if r.Config.IsIgnored(path) {
		r.logf("skip (ignored): %s", path)
		return fileResult{}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fileResult{errs: []error{fmt.Errorf("reading %q: %w", path, err)}}
	}

	r.logf("file: %s", path)
	diags, errs := r.lintSource(path, source)
	return fileResult{diags: diags, errs: errs}
}

// RunSource lints source as if it were read from path. Ignore patterns do
// not apply; path only selects the document kind and the overrides.
func (r *Runner) RunSource(path string, source []byte) *Result {
	diags, errs := r.lintSource(path, source)
	SortDiagnostics(diags)
	return &Result{Diagnostics: diags, Errors: errs}
}

func (r *Runner) lintSource(path string, source []byte) ([]lint.Diagnostic, []error) {
	if r.StripFrontMatter {
		source, _ = lint.MaskFrontMatter(source)
	}

	f, err := lint.NewFile(path, source)
	if err != nil {
		return nil, []error{fmt.Errorf("parsing %q: %w", path, err)}
	}

	diags, errs := CheckRules(f, r.Rules, config.Effective(r.Config, path))
	for _, err := range errs {
		r.logf("rule configuration failed for %s: %v", path, err)
	}
	return diags, errs
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// SortDiagnostics orders diagnostics by file, line and column.
func SortDiagnostics(diags []lint.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		di, dj := diags[i], diags[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})
}
