//go:build windows

package window

import (
	"syscall"

	"github.com/lxn/win"

	"desktop-automate/src/geometry"
)

func findByTitle(title string) (*Window, error) {
	hwnd := win.FindWindow(nil, syscall.StringToUTF16Ptr(title))
	if hwnd == 0 {
		return nil, ErrNotFound
	}
	return &Window{hwnd: uintptr(hwnd)}, nil
}

func findByClass(class string) (*Window, error) {
	hwnd := win.FindWindow(syscall.StringToUTF16Ptr(class), nil)
	if hwnd == 0 {
		return nil, ErrNotFound
	}
	return &Window{hwnd: uintptr(hwnd)}, nil
}

func foreground() (*Window, error) {
	hwnd := win.GetForegroundWindow()
	if hwnd == 0 {
		return nil, ErrNotFound
	}
	return &Window{hwnd: uintptr(hwnd)}, nil
}

func (w *Window) rect() (geometry.Rect, error) {
	var rc win.RECT
	if !win.GetWindowRect(win.HWND(w.hwnd), &rc) {
		return geometry.Rect{}, ErrNotFound
	}
	return geometry.Rect{
		Left:   rc.Left,
		Top:    rc.Top,
		Right:  rc.Right,
		Bottom: rc.Bottom,
	}, nil
}

func (w *Window) focus() error {
	win.BringWindowToTop(win.HWND(w.hwnd))
	if !win.SetForegroundWindow(win.HWND(w.hwnd)) {
		return ErrNotFound
	}
	return nil
}
