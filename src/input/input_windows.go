//go:build windows

package input

import (
	"time"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"desktop-automate/src/clipboard"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSetCursorPos = user32.NewProc("SetCursorPos")
)

// keyboardInput matches the Win32 INPUT struct carrying a KEYBDINPUT.
// The trailing padding brings it up to the size of the mouse variant,
// the largest member of the union.
type keyboardInput struct {
	inputType uint32
	_         uint32
	ki        win.KEYBDINPUT
	_         [8]byte
}

// mouseInput matches the Win32 INPUT struct carrying a MOUSEINPUT.
type mouseInput struct {
	inputType uint32
	_         uint32
	mi        win.MOUSEINPUT
}

func nativeKeyFlags(f uint32) uint32 {
	var out uint32
	if f&flagKeyUp != 0 {
		out |= win.KEYEVENTF_KEYUP
	}
	if f&flagUnicode != 0 {
		out |= win.KEYEVENTF_UNICODE
	}
	return out
}

func sendKeyEvents(events []keyEvent) error {
	inputs := make([]keyboardInput, len(events))
	for i, ev := range events {
		inputs[i] = keyboardInput{
			inputType: win.INPUT_KEYBOARD,
			ki: win.KEYBDINPUT{
				WVk:     ev.vk,
				WScan:   ev.scan,
				DwFlags: nativeKeyFlags(ev.flags),
			},
		}
	}

	sent := win.SendInput(uint32(len(inputs)), unsafe.Pointer(&inputs[0]), int32(unsafe.Sizeof(inputs[0])))
	if sent != uint32(len(inputs)) {
		return ErrInputRejected
	}
	return nil
}

func typeText(text string, delayMS int) error {
	events := eventsForText(text)
	if len(events) == 0 {
		return nil
	}

	if delayMS <= 0 {
		return sendKeyEvents(events)
	}

	pause := time.Duration(delayMS) * time.Millisecond
	for i := 0; i < len(events); i += 2 {
		if err := sendKeyEvents(events[i : i+2]); err != nil {
			return err
		}
		time.Sleep(pause)
	}
	return nil
}

func click(x, y int32) error {
	if ret, _, _ := procSetCursorPos.Call(uintptr(int(x)), uintptr(int(y))); ret == 0 {
		return ErrPointerMove
	}

	inputs := []mouseInput{
		{
			inputType: win.INPUT_MOUSE,
			mi:        win.MOUSEINPUT{Dx: x, Dy: y, DwFlags: win.MOUSEEVENTF_LEFTDOWN},
		},
		{
			inputType: win.INPUT_MOUSE,
			mi:        win.MOUSEINPUT{Dx: x, Dy: y, DwFlags: win.MOUSEEVENTF_LEFTUP},
		},
	}

	sent := win.SendInput(uint32(len(inputs)), unsafe.Pointer(&inputs[0]), int32(unsafe.Sizeof(inputs[0])))
	if sent != uint32(len(inputs)) {
		return ErrInputRejected
	}
	return nil
}

func pasteText(text string) error {
	if err := clipboard.Write(text); err != nil {
		return err
	}
	return sendKeyEvents(pasteChord())
}
