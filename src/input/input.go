package input

import "errors"

var (
	// ErrInputRejected implies the OS accepted fewer synthesized events
	// than requested. The injection is not retried.
	ErrInputRejected = errors.New("input events rejected")

	// ErrPointerMove implies the pointer could not be repositioned; no
	// button events were emitted.
	ErrPointerMove = errors.New("pointer reposition failed")

	// ErrUnavailable implies input synthesis is not supported on this
	// platform.
	ErrUnavailable = errors.New("input synthesis unavailable")
)

// TypeText injects text as keyboard events, one down/up pair per UTF-16
// unit, with newline translated to a Return key press. With delayMS == 0
// every pair is queued in a single batch; otherwise each pair is sent on
// its own with a delayMS pause after it.
//
// Returns nil only when the OS accepted every requested event.
func TypeText(text string, delayMS int) error {
	return typeText(text, delayMS)
}

// Click moves the pointer to the screen coordinates and emits a left
// button down/up pair there. A failed pointer move aborts before any
// button event is sent.
func Click(x, y int32) error {
	return click(x, y)
}

// PasteText places text on the clipboard and synthesizes Ctrl+V. Faster
// than TypeText for large payloads, at the cost of clobbering the
// clipboard. The clipboard package must have been initialized.
func PasteText(text string) error {
	return pasteText(text)
}
