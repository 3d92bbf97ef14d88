package overlay

import (
	"desktop-automate/src/geometry"
)

// Request describes one outline overlay. The fields are copied into the
// window's render state when the window is created and are not read again
// afterwards.
type Request struct {
	Rect       geometry.Rect
	Thickness  int32
	Color      geometry.Color
	DurationMS int
}

// Show displays a full-screen, topmost, click-through window that strokes
// the requested rectangle outline, then tears it down after DurationMS.
//
// The call blocks until the overlay is dismissed: the calling goroutine is
// pinned to its OS thread and pumps the window's message loop itself. A
// failure to create the window (including running without a desktop
// session) makes Show a silent no-op.
func Show(req Request) {
	showOutline(req)
}

// Flash strokes the rectangle directly onto the screen surface with no
// backing window. The mark has no lifetime of its own and disappears with
// the next repaint of whatever is underneath.
func Flash(rect geometry.Rect, thickness int32, color geometry.Color) {
	flashOutline(rect, thickness, color)
}

// CloseAll posts a close request to every overlay window currently alive.
// Safe to call from any goroutine; windows that are still being created
// are closed as soon as their message loop sees the request.
func CloseAll() {
	closeAll()
}
