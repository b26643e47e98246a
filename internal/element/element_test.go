package element

import (
	"testing"

	"github.com/jeduden/tagcase/internal/template"
)

func firstTag(t *testing.T, src, name string) *template.Tag {
	t.Helper()
	for _, tg := range template.Parse([]byte(src)).Tags() {
		if tg.Name == name {
			return tg
		}
	}
	t.Fatalf("tag %q not found in %q", name, src)
	return nil
}

func TestIsComponentCandidate_Native(t *testing.T) {
	cases := []struct {
		src, name string
	}{
		{"<div/>", "div"},
		{"<img>", "img"},
		{"<svg><path/></svg>", "path"},
		{"<svg><path/></svg>", "svg"},
		{"<math><mspace/></math>", "mspace"},
		{"<div><slot></slot></div>", "slot"},
		{"<h1>Title</h1>", "h1"},
		{"<text />", "text"},
		{`<circle cx="0" cy="0" :d="radius">`, "circle"},
		{"<template><div/></template>", "template"},
	}
	for _, tc := range cases {
		if IsComponentCandidate(firstTag(t, tc.src, tc.name)) {
			t.Errorf("%s in %q: expected not a candidate", tc.name, tc.src)
		}
	}
}

func TestIsComponentCandidate_Components(t *testing.T) {
	cases := []struct {
		src, name string
	}{
		{"<TheComponent/>", "TheComponent"},
		{"<the-component></the-component>", "the-component"},
		{"<svg><TheComponent /></svg>", "TheComponent"},
		{"<svg><the-component /></svg>", "the-component"},
		{"<Button/>", "Button"},
		{"<custom-element></custom-element>", "custom-element"},
	}
	for _, tc := range cases {
		if !IsComponentCandidate(firstTag(t, tc.src, tc.name)) {
			t.Errorf("%s in %q: expected a candidate", tc.name, tc.src)
		}
	}
}

func TestIsComponentCandidate_MathSubtree(t *testing.T) {
	tg := firstTag(t, "<math><cool-thing/></math>", "cool-thing")
	if IsComponentCandidate(tg) {
		t.Error("tags inside a MathML subtree are never candidates")
	}
}

func TestIsComponentCandidate_NamespaceRestored(t *testing.T) {
	tg := firstTag(t, "<div><svg><g/></svg><the-component/></div>", "the-component")
	if tg.Namespace != template.HTML {
		t.Fatalf("namespace = %s, want html", tg.Namespace)
	}
	if !IsComponentCandidate(tg) {
		t.Error("expected a candidate after leaving the svg subtree")
	}
}

func TestIsComponentCandidate_DynamicBinding(t *testing.T) {
	for _, src := range []string{
		`<the-component :is="componentName"></the-component>`,
		`<the-component v-bind:is="componentName"></the-component>`,
		`<the-component v-is="'x'"></the-component>`,
	} {
		if IsComponentCandidate(firstTag(t, src, "the-component")) {
			t.Errorf("%q: dynamic binding must not be a candidate", src)
		}
	}

	// A static is attribute does not replace the tag.
	if !IsComponentCandidate(firstTag(t, `<the-component is="x"/>`, "the-component")) {
		t.Error("static is attribute should not exclude the tag")
	}
}
