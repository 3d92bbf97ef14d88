package window

import (
	"errors"

	"desktop-automate/src/geometry"
	"desktop-automate/src/overlay"
)

var (
	// ErrNotFound implies no top-level window matched the query.
	ErrNotFound = errors.New("window not found")

	// ErrUnavailable implies window lookup is not supported on this
	// platform.
	ErrUnavailable = errors.New("window lookup unavailable")
)

// Window is a handle to a top-level window.
type Window struct {
	hwnd uintptr
}

// FindByTitle locates a top-level window by its exact title.
func FindByTitle(title string) (*Window, error) {
	return findByTitle(title)
}

// FindByClass locates a top-level window by its class name.
func FindByClass(class string) (*Window, error) {
	return findByClass(class)
}

// Foreground returns the window that currently has input focus.
func Foreground() (*Window, error) {
	return foreground()
}

// Rect returns the window's bounding rectangle in screen coordinates.
func (w *Window) Rect() (geometry.Rect, error) {
	return w.rect()
}

// Focus brings the window to the foreground.
func (w *Window) Focus() error {
	return w.focus()
}

// Outline blocks while an overlay outline is shown around the window's
// current bounds.
func (w *Window) Outline(thickness int32, color geometry.Color, durationMS int) error {
	r, err := w.Rect()
	if err != nil {
		return err
	}
	overlay.Show(overlay.Request{
		Rect:       r,
		Thickness:  thickness,
		Color:      color,
		DurationMS: durationMS,
	})
	return nil
}
