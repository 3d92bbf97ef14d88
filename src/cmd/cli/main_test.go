package main

import (
	"strings"
	"testing"

	"desktop-automate/src/geometry"
)

func TestParseRect(t *testing.T) {
	tests := []struct {
		in      string
		want    geometry.Rect
		wantErr bool
	}{
		{"100,100,300,200", geometry.Rect{Left: 100, Top: 100, Right: 300, Bottom: 200}, false},
		{" -10, -10 , 10, 10 ", geometry.Rect{Left: -10, Top: -10, Right: 10, Bottom: 10}, false},
		// Mirrored rects are accepted, not normalized.
		{"300,200,100,100", geometry.Rect{Left: 300, Top: 200, Right: 100, Bottom: 100}, false},
		{"", geometry.Rect{}, true},
		{"1,2,3", geometry.Rect{}, true},
		{"1,2,3,4,5", geometry.Rect{}, true},
		{"a,b,c,d", geometry.Rect{}, true},
	}

	for _, tt := range tests {
		got, err := parseRect(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRect(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRect(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRect(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	expected := []string{"outline", "flash", "type", "paste", "click", "capture", "inspect"}
	for _, name := range expected {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestOutlineRejectsMalformedRect(t *testing.T) {
	err := runWithArgs([]string{"outline", "--rect", "1,2,3"})
	if err == nil {
		t.Fatal("expected error for malformed rect")
	}
	if !strings.Contains(err.Error(), "invalid rect") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOutlineRequiresRect(t *testing.T) {
	if err := runWithArgs([]string{"outline"}); err == nil {
		t.Fatal("expected error when --rect is missing")
	}
}

func TestOutlineRejectsMalformedColor(t *testing.T) {
	err := runWithArgs([]string{"outline", "--rect", "0,0,10,10", "--color", "nope", "--duration", "1"})
	if err == nil {
		t.Fatal("expected error for malformed color")
	}
}

func TestInspectRequiresQuery(t *testing.T) {
	err := runWithArgs([]string{"inspect"})
	if err == nil {
		t.Fatal("expected error when neither --title nor --class is given")
	}
	if !strings.Contains(err.Error(), "--title or --class") {
		t.Errorf("unexpected error: %v", err)
	}
}
