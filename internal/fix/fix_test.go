package fix

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jeduden/tagcase/internal/config"
	"github.com/jeduden/tagcase/internal/lint"
	"github.com/jeduden/tagcase/internal/rule"
	"github.com/jeduden/tagcase/internal/rules/componentnamecasing"
)

// --- mock rules for testing ---

// mockNonFixableRule always reports a diagnostic but cannot fix.
type mockNonFixableRule struct {
	id   string
	name string
}

func (r *mockNonFixableRule) ID() string   { return r.id }
func (r *mockNonFixableRule) Name() string { return r.name }
func (r *mockNonFixableRule) Check(f *lint.File) []lint.Diagnostic {
	return []lint.Diagnostic{{
		File: f.Path, Line: 1, Column: 1,
		RuleID: r.id, RuleName: r.name,
		Severity: lint.Warning, Message: "always",
	}}
}

// mockWrapRule replaces <LegacySlot/> with <the-wrapper>, introducing
// a tag the casing rule then has to rewrite.
type mockWrapRule struct {
	id   string
	name string
}

func (r *mockWrapRule) ID() string   { return r.id }
func (r *mockWrapRule) Name() string { return r.name }
func (r *mockWrapRule) Check(f *lint.File) []lint.Diagnostic {
	if !bytes.Contains(f.Source, []byte("<LegacySlot/>")) {
		return nil
	}
	return []lint.Diagnostic{{
		File: f.Path, Line: 1, Column: 1,
		RuleID: r.id, RuleName: r.name,
		Severity: lint.Warning, Message: "legacy slot",
	}}
}

func (r *mockWrapRule) Fix(f *lint.File) []byte {
	return bytes.ReplaceAll(f.Source, []byte("<LegacySlot/>"), []byte("<the-wrapper></the-wrapper>"))
}

var _ rule.FixableRule = (*mockWrapRule)(nil)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func casingFixer(settings map[string]any) *Fixer {
	return &Fixer{
		Config: &config.Config{Rules: map[string]config.RuleCfg{
			"component-name-casing": {Enabled: true, Settings: settings},
		}},
		Rules: []rule.Rule{componentnamecasing.New()},
	}
}

var allComponents = map[string]any{"registered-components-only": false}

func TestFix_RenamesStartAndEndTags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<template>\n  <the-card id=\"x\">\n    <the-title/>\n  </the-card  >\n</template>\n")

	res := casingFixer(allComponents).Fix([]string{path})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Modified) != 1 || res.Modified[0] != path {
		t.Fatalf("expected %s to be modified, got %v", path, res.Modified)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("expected no remaining diagnostics, got %+v", res.Diagnostics)
	}
	want := "<template>\n  <TheCard id=\"x\">\n    <TheTitle/>\n  </TheCard  >\n</template>\n"
	if got := readFile(t, path); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFix_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<template><TheCard><FooBar/></TheCard></template>\n")

	fixer := casingFixer(map[string]any{"casing": "kebab-case", "registered-components-only": false})
	first := fixer.Fix([]string{path})
	if len(first.Modified) != 1 {
		t.Fatalf("expected first pass to modify the file, got %v", first.Modified)
	}
	after := readFile(t, path)
	if after != "<template><the-card><foo-bar/></the-card></template>\n" {
		t.Fatalf("unexpected first pass output %q", after)
	}

	second := fixer.Fix([]string{path})
	if len(second.Modified) != 0 {
		t.Errorf("second pass should not modify, got %v", second.Modified)
	}
	if readFile(t, path) != after {
		t.Error("second pass changed the file")
	}
}

func TestFix_NonFixableViolationsReported(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<template><the-card/></template>\n")

	fixer := casingFixer(allComponents)
	fixer.Config.Rules["mock-always"] = config.RuleCfg{Enabled: true}
	fixer.Rules = append(fixer.Rules, &mockNonFixableRule{id: "TC900", name: "mock-always"})

	res := fixer.Fix([]string{path})
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].RuleID != "TC900" {
		t.Fatalf("expected only the non-fixable diagnostic, got %+v", res.Diagnostics)
	}
}

func TestFix_NoViolationsNotModified(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<template><TheCard/></template>\n")

	res := casingFixer(allComponents).Fix([]string{path})
	if len(res.Modified) != 0 {
		t.Errorf("expected no modifications, got %v", res.Modified)
	}
}

func TestFix_ReadOnlyFileError(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<template><the-card/></template>\n")
	if err := os.Chmod(path, 0o444); err != nil {
		t.Fatal(err)
	}

	res := casingFixer(allComponents).Fix([]string{path})
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0].Error(), "writing") {
		t.Fatalf("expected a write error, got %v", res.Errors)
	}
}

func TestFix_MultipleFilesFixedIndependently(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "A.vue", "<template><the-a/></template>\n")
	b := writeFile(t, dir, "B.vue", "<template><TheB/></template>\n")
	c := writeFile(t, dir, "docs/c.md", "# C\n\n<the-c/>\n")

	res := casingFixer(allComponents).Fix([]string{a, b, c})
	if len(res.Modified) != 2 {
		t.Fatalf("expected 2 modified files, got %v", res.Modified)
	}
	if readFile(t, a) != "<template><TheA/></template>\n" {
		t.Errorf("A.vue not fixed: %q", readFile(t, a))
	}
	if readFile(t, c) != "# C\n\n<TheC/>\n" {
		t.Errorf("c.md not fixed: %q", readFile(t, c))
	}
}

func TestFix_EmptyPathsReturnsEmptyResult(t *testing.T) {
	res := casingFixer(nil).Fix(nil)
	if len(res.Diagnostics) != 0 || len(res.Modified) != 0 || len(res.Errors) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestFix_LaterRuleOutputFixedByEarlierRule(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<template><LegacySlot/></template>\n")

	fixer := casingFixer(allComponents)
	fixer.Config.Rules["mock-wrap"] = config.RuleCfg{Enabled: true}
	// TC001 sorts before TC500, so the wrapper only appears after the
	// casing rule ran once; the second pass rewrites it.
	fixer.Rules = append(fixer.Rules, &mockWrapRule{id: "TC500", name: "mock-wrap"})

	res := fixer.Fix([]string{path})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	want := "<template><TheWrapper></TheWrapper></template>\n"
	if got := readFile(t, path); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("expected convergence, got %+v", res.Diagnostics)
	}
}

func TestFixer_StripFrontMatter_PreservesFrontMatter(t *testing.T) {
	dir := t.TempDir()
	src := "---\ntitle: <keep-me>\n---\n<template>\n  <the-card/>\n</template>\n"
	path := writeFile(t, dir, "Page.vue", src)

	fixer := casingFixer(allComponents)
	fixer.StripFrontMatter = true
	res := fixer.Fix([]string{path})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	want := "---\ntitle: <keep-me>\n---\n<template>\n  <TheCard/>\n</template>\n"
	if got := readFile(t, path); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFix_IgnoredFileSkipped(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dist/App.vue", "<template><the-card/></template>\n")

	fixer := casingFixer(allComponents)
	fixer.Config.Ignore = []string{"**/dist/**"}
	res := fixer.Fix([]string{path})
	if len(res.Modified) != 0 {
		t.Errorf("ignored file should not be modified, got %v", res.Modified)
	}
}

func TestFix_NonexistentFileError(t *testing.T) {
	res := casingFixer(nil).Fix([]string{"/nonexistent/App.vue"})
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0].Error(), "reading") {
		t.Fatalf("expected read error, got %v", res.Errors)
	}
}

func TestFix_PreservesFilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<template><the-card/></template>\n")
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}

	casingFixer(allComponents).Fix([]string{path})
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestFix_SettingsErrorReported(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<template><the-card/></template>\n")

	res := casingFixer(map[string]any{"casing": "snake_case"}).Fix([]string{path})
	if len(res.Errors) == 0 {
		t.Fatal("expected settings error")
	}
	if len(res.Modified) != 0 {
		t.Errorf("nothing should be written with broken settings, got %v", res.Modified)
	}
}

func TestFixSource(t *testing.T) {
	out, diags, errs := casingFixer(allComponents).FixSource("stdin.vue", []byte("<template><the-card/></template>"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(diags) != 0 {
		t.Errorf("expected no remaining diagnostics, got %+v", diags)
	}
	if string(out) != "<template><TheCard/></template>" {
		t.Errorf("got %q", out)
	}
}
