package geometry

import "testing"

func TestRGBLayout(t *testing.T) {
	// COLORREF layout: red lands in the low byte.
	if got := RGB(255, 0, 0); got != Red {
		t.Errorf("RGB(255,0,0) = %#x, want %#x", uint32(got), uint32(Red))
	}
	if got := RGB(0, 255, 0); got != Green {
		t.Errorf("RGB(0,255,0) = %#x, want %#x", uint32(got), uint32(Green))
	}
	if got := RGB(0, 0, 255); got != Blue {
		t.Errorf("RGB(0,0,255) = %#x, want %#x", uint32(got), uint32(Blue))
	}

	c := RGB(0x12, 0x34, 0x56)
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 {
		t.Errorf("channel round-trip failed: got (%#x,%#x,%#x)", c.R(), c.G(), c.B())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"255,0,0", Red, false},
		{"0, 255, 0", Green, false},
		{"#FF0000", Red, false},
		{"#0000ff", Blue, false},
		{"", 0, true},
		{"255,0", 0, true},
		{"256,0,0", 0, true},
		{"#F00", 0, true},
		{"#GGGGGG", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error, got %#x", tt.in, uint32(got))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{Left: 100, Top: 100, Right: 300, Bottom: 200}
	if r.Width() != 200 || r.Height() != 100 {
		t.Errorf("unexpected dimensions: w=%d h=%d", r.Width(), r.Height())
	}
	if c := r.Center(); c.X != 200 || c.Y != 150 {
		t.Errorf("unexpected center: %+v", c)
	}
	if !r.HasArea() {
		t.Error("expected HasArea to be true")
	}
}

func TestRectDegenerate(t *testing.T) {
	// Mirrored rects are legal input and simply report negative spans.
	r := Rect{Left: 300, Top: 200, Right: 100, Bottom: 100}
	if r.Width() != -200 || r.Height() != -100 {
		t.Errorf("unexpected mirrored dimensions: w=%d h=%d", r.Width(), r.Height())
	}
	if !r.HasArea() {
		t.Error("mirrored rect still spans an area")
	}

	empty := Rect{Left: 50, Top: 50, Right: 50, Bottom: 80}
	if empty.HasArea() {
		t.Error("zero-width rect must not report area")
	}
}
