//go:build !windows

package overlay

import "desktop-automate/src/geometry"

// Without a Windows session there is nothing to draw on; the overlay is a
// best-effort visual aid and degrades to a no-op.

func showOutline(Request) {}

func flashOutline(geometry.Rect, int32, geometry.Color) {}

func closeAll() {}
