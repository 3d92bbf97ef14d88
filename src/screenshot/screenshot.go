package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/kbinani/screenshot"

	"desktop-automate/src/geometry"
)

// Capture captures the entire virtual screen across all active displays.
func Capture() (*image.RGBA, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("no active displays found")
	}

	union := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		union = union.Union(screenshot.GetDisplayBounds(i))
	}

	return screenshot.CaptureRect(union)
}

// CaptureRect captures the given screen rectangle and returns it encoded
// as PNG. The rect must span an area; mirrored rects are rejected here
// because an image cannot have negative dimensions.
func CaptureRect(r geometry.Rect) ([]byte, error) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return nil, fmt.Errorf("capture rect has no area: %v", r)
	}

	img, err := screenshot.CaptureRect(image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)))
	if err != nil {
		return nil, fmt.Errorf("failed to capture rect: %v", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode capture as PNG: %v", err)
	}
	return buf.Bytes(), nil
}

// PrimaryBounds returns the bounds of the primary display.
func PrimaryBounds() (geometry.Rect, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return geometry.Rect{}, fmt.Errorf("no active displays found")
	}

	b := screenshot.GetDisplayBounds(0)
	return geometry.Rect{
		Left:   int32(b.Min.X),
		Top:    int32(b.Min.Y),
		Right:  int32(b.Max.X),
		Bottom: int32(b.Max.Y),
	}, nil
}
