package lint

import (
	"testing"
)

func TestStripFrontMatter(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPrefix  string
		wantContent string
	}{
		{
			name:        "with front matter",
			input:       "---\ntitle: hello\n---\n<template><div/></template>\n",
			wantPrefix:  "---\ntitle: hello\n---\n",
			wantContent: "<template><div/></template>\n",
		},
		{
			name:        "no front matter",
			input:       "<template><div/></template>\n",
			wantPrefix:  "",
			wantContent: "<template><div/></template>\n",
		},
		{
			name:        "unclosed front matter",
			input:       "---\ntitle: hello\n<template/>\n",
			wantPrefix:  "",
			wantContent: "---\ntitle: hello\n<template/>\n",
		},
		{
			name:        "empty front matter",
			input:       "---\n---\n<template/>\n",
			wantPrefix:  "---\n---\n",
			wantContent: "<template/>\n",
		},
		{
			name:        "dashes not at start",
			input:       "<template/>\n---\nfoo\n---\n",
			wantPrefix:  "",
			wantContent: "<template/>\n---\nfoo\n---\n",
		},
		{
			name:        "empty input",
			input:       "",
			wantPrefix:  "",
			wantContent: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, content := StripFrontMatter([]byte(tt.input))
			if string(prefix) != tt.wantPrefix {
				t.Errorf("prefix = %q, want %q", prefix, tt.wantPrefix)
			}
			if string(content) != tt.wantContent {
				t.Errorf("content = %q, want %q", content, tt.wantContent)
			}
		})
	}
}

func TestMaskFrontMatter_KeepsOffsets(t *testing.T) {
	src := []byte("---\nlayout: doc\n---\n<template><foo-bar/></template>\n")
	masked, n := MaskFrontMatter(src)
	if n != len("---\nlayout: doc\n---\n") {
		t.Fatalf("prefix length = %d", n)
	}
	if len(masked) != len(src) {
		t.Fatalf("masked length %d, want %d", len(masked), len(src))
	}
	want := "   \n           \n   \n<template><foo-bar/></template>\n"
	if string(masked) != want {
		t.Errorf("masked = %q, want %q", masked, want)
	}
	if string(src[:3]) != "---" {
		t.Error("source must not be modified")
	}
}

func TestMaskFrontMatter_None(t *testing.T) {
	src := []byte("<template/>\n")
	masked, n := MaskFrontMatter(src)
	if n != 0 || string(masked) != string(src) {
		t.Errorf("got (%q, %d), want unchanged", masked, n)
	}
}
