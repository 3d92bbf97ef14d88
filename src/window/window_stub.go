//go:build !windows

package window

import "desktop-automate/src/geometry"

func findByTitle(string) (*Window, error) {
	return nil, ErrUnavailable
}

func findByClass(string) (*Window, error) {
	return nil, ErrUnavailable
}

func foreground() (*Window, error) {
	return nil, ErrUnavailable
}

func (w *Window) rect() (geometry.Rect, error) {
	return geometry.Rect{}, ErrUnavailable
}

func (w *Window) focus() error {
	return ErrUnavailable
}
