package input

import "unicode/utf16"

// Mirrors of the KEYEVENTF_* values so event planning stays portable and
// testable; the Windows sender maps them onto the real flags.
const (
	flagKeyUp   = 0x0002
	flagUnicode = 0x0004

	vkReturn  = 0x0D
	vkControl = 0x11
	vkV       = 0x56
)

// keyEvent describes one synthetic keyboard event before it is mapped to
// the platform INPUT layout.
type keyEvent struct {
	vk    uint16
	scan  uint16
	flags uint32
}

// eventsForText plans the down/up pairs for text. Newlines become Return
// key presses rather than Unicode injections; everything else is emitted
// as UTF-16 code units carrying the Unicode flag, so characters outside
// the BMP produce two pairs.
func eventsForText(text string) []keyEvent {
	events := make([]keyEvent, 0, 2*len(text))
	for _, r := range text {
		if r == '\n' {
			events = append(events,
				keyEvent{vk: vkReturn},
				keyEvent{vk: vkReturn, flags: flagKeyUp},
			)
			continue
		}
		for _, unit := range utf16.Encode([]rune{r}) {
			events = append(events,
				keyEvent{scan: unit, flags: flagUnicode},
				keyEvent{scan: unit, flags: flagUnicode | flagKeyUp},
			)
		}
	}
	return events
}

// pasteChord is the Ctrl+V sequence used by PasteText.
func pasteChord() []keyEvent {
	return []keyEvent{
		{vk: vkControl},
		{vk: vkV},
		{vk: vkV, flags: flagKeyUp},
		{vk: vkControl, flags: flagKeyUp},
	}
}
