package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStops_UsageExample(t *testing.T) {
	b, err := parseStops(stopsExample)
	if err != nil {
		t.Fatalf("parseStops(%q) failed: %v", stopsExample, err)
	}
	if b.NumColorStops() != 3 {
		t.Fatalf("got %d stops, want 3", b.NumColorStops())
	}
	if got := b.Eval(0).Hex(); got != "#000000ff" {
		t.Errorf("Eval(0): got %s, want #000000ff", got)
	}
	if got := b.Eval(0.5).Hex(); got != "#ff0000ff" {
		t.Errorf("Eval(0.5): got %s, want #ff0000ff", got)
	}
	if got := b.Eval(1).Hex(); got != "#ffffffff" {
		t.Errorf("Eval(1): got %s, want #ffffffff", got)
	}
}

func TestParseStops_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"three digit hex", "#000:0,#fff:1"},
		{"missing param", "red,blue:1"},
		{"bad param", "red:x,blue:1"},
		{"unknown color", "nocolor:0,blue:1"},
		{"decreasing", "red:0.8,blue:0.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseStops(tt.in); err == nil {
				t.Errorf("parseStops(%q) should fail", tt.in)
			}
		})
	}
}

func TestBuildEntries(t *testing.T) {
	entries, err := buildEntries(stopsExample, "orange")
	if err != nil {
		t.Fatalf("buildEntries failed: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.name)
	}
	want := []string{"flame", "heat", "ice", "rainbow", "terrain", "glow", "custom"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("entry names (-want +got):\n%s", diff)
	}
	if got := entries[5].band.Eval(0).Hex(); got != "#ff800000" {
		t.Errorf("glow start: got %s, want #ff800000", got)
	}

	if _, err := buildEntries("", "notacolor"); err == nil {
		t.Error("buildEntries with a bad glow color should fail")
	}
}
