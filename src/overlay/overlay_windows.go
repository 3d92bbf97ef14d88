//go:build windows

package overlay

import (
	"log"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"desktop-automate/src/geometry"
)

const (
	overlayClassName = "AutomateOutlineOverlay"
	outlineTimerID   = 1

	// SetLayeredWindowAttributes flag: treat crKey as fully transparent.
	lwaColorKey = 0x00000001
	psSolid     = 0
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procFillRect                   = user32.NewProc("FillRect")
	procGetDC                      = user32.NewProc("GetDC")
	procReleaseDC                  = user32.NewProc("ReleaseDC")
	procCreateSolidBrush           = gdi32.NewProc("CreateSolidBrush")
	procCreatePen                  = gdi32.NewProc("CreatePen")
	procRectangle                  = gdi32.NewProc("Rectangle")
)

// renderState is the paint-time copy of a Request. Each state is owned by
// exactly one window: attached before the window is shown, detached once
// on WM_DESTROY.
type renderState struct {
	rect      geometry.Rect
	thickness int32
	color     geometry.Color
}

var (
	registerOnce sync.Once
	overlayAtom  win.ATOM
	overlayProc  = syscall.NewCallback(outlineWndProc)

	// stateMu also serializes concurrent Show calls' map access; each
	// window itself is only ever touched from its own pump thread.
	stateMu sync.Mutex
	states  = map[win.HWND]*renderState{}
)

func registerOverlayClass() {
	wndClass := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		LpfnWndProc:   overlayProc,
		HInstance:     win.GetModuleHandle(nil),
		HbrBackground: 0, // painted by hand, keyed for transparency
		LpszClassName: syscall.StringToUTF16Ptr(overlayClassName),
	}

	overlayAtom = win.RegisterClassEx(&wndClass)
	if overlayAtom == 0 {
		log.Printf("overlay: RegisterClassEx failed")
	}
}

func showOutline(req Request) {
	// The window and its message loop must stay on one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	registerOnce.Do(registerOverlayClass)
	if overlayAtom == 0 {
		return
	}

	hwnd := win.CreateWindowEx(
		win.WS_EX_TOPMOST|win.WS_EX_LAYERED|win.WS_EX_TRANSPARENT,
		syscall.StringToUTF16Ptr(overlayClassName),
		syscall.StringToUTF16Ptr(""),
		win.WS_POPUP,
		0, 0,
		win.GetSystemMetrics(win.SM_CXSCREEN),
		win.GetSystemMetrics(win.SM_CYSCREEN),
		0, 0, win.GetModuleHandle(nil), nil,
	)
	if hwnd == 0 {
		log.Printf("overlay: CreateWindowEx failed")
		return
	}

	stateMu.Lock()
	states[hwnd] = &renderState{rect: req.Rect, thickness: req.Thickness, color: req.Color}
	stateMu.Unlock()

	// Black background keyed fully transparent. A color key is enough for
	// a stroked outline and skips per-pixel alpha blending entirely.
	procSetLayeredWindowAttributes.Call(uintptr(hwnd), 0, 0, lwaColorKey)

	win.ShowWindow(hwnd, win.SW_SHOW)
	win.InvalidateRect(hwnd, nil, true)

	if win.SetTimer(hwnd, outlineTimerID, uint32(req.DurationMS), 0) == 0 {
		log.Printf("overlay: SetTimer failed, dismissing immediately")
		win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
	}

	var msg win.MSG
	for {
		ret := win.GetMessage(&msg, 0, 0, 0)
		if ret == 0 { // WM_QUIT
			return
		}
		if ret == -1 {
			log.Printf("overlay: GetMessage error")
			return
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

func outlineWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case win.WM_ERASEBKGND:
		// WM_PAINT repaints the full client area itself.
		return 1

	case win.WM_PAINT:
		var ps win.PAINTSTRUCT
		hdc := win.BeginPaint(hwnd, &ps)
		paintOutline(hwnd, hdc, &ps)
		win.EndPaint(hwnd, &ps)
		return 0

	case win.WM_TIMER:
		if wParam == outlineTimerID {
			// One-shot: the timer dies before the close request is queued.
			win.KillTimer(hwnd, outlineTimerID)
			win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
		}
		return 0

	case win.WM_DESTROY:
		stateMu.Lock()
		delete(states, hwnd)
		stateMu.Unlock()
		win.PostQuitMessage(0)
		return 0
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func paintOutline(hwnd win.HWND, hdc win.HDC, ps *win.PAINTSTRUCT) {
	stateMu.Lock()
	st := states[hwnd]
	stateMu.Unlock()
	if st == nil {
		// Paint delivered before the state was attached; nothing to draw.
		return
	}

	if bg, _, _ := procCreateSolidBrush.Call(0); bg != 0 {
		procFillRect.Call(uintptr(hdc), uintptr(unsafe.Pointer(&ps.RcPaint)), bg)
		win.DeleteObject(win.HGDIOBJ(bg))
	}

	strokeRect(hdc, st.rect, st.thickness, st.color)
}

// strokeRect draws an unfilled rectangle with a solid pen. Restroking the
// identical geometry with the identical pen leaves the screen unchanged,
// so repeated WM_PAINT deliveries are harmless.
func strokeRect(hdc win.HDC, r geometry.Rect, thickness int32, color geometry.Color) {
	pen, _, _ := procCreatePen.Call(psSolid, uintptr(int(thickness)), uintptr(uint32(color)))
	if pen == 0 {
		log.Printf("overlay: CreatePen failed")
		return
	}

	oldPen := win.SelectObject(hdc, win.HGDIOBJ(pen))
	oldBrush := win.SelectObject(hdc, win.GetStockObject(win.NULL_BRUSH))

	procRectangle.Call(
		uintptr(hdc),
		uintptr(int(r.Left)),
		uintptr(int(r.Top)),
		uintptr(int(r.Right)),
		uintptr(int(r.Bottom)),
	)

	win.SelectObject(hdc, oldBrush)
	win.SelectObject(hdc, oldPen)
	win.DeleteObject(win.HGDIOBJ(pen))
}

func flashOutline(rect geometry.Rect, thickness int32, color geometry.Color) {
	hdc, _, _ := procGetDC.Call(0)
	if hdc == 0 {
		return
	}
	// The screen DC is released on every path, including pen failure.
	defer procReleaseDC.Call(0, hdc)

	strokeRect(win.HDC(hdc), rect, thickness, color)
}

func closeAll() {
	stateMu.Lock()
	hwnds := make([]win.HWND, 0, len(states))
	for h := range states {
		hwnds = append(hwnds, h)
	}
	stateMu.Unlock()

	for _, h := range hwnds {
		win.PostMessage(h, win.WM_CLOSE, 0, 0)
	}
}
