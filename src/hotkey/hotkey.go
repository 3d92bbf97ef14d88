package hotkey

import (
	"log"
	"strings"
	"sync"

	gohook "github.com/robotn/gohook"
)

// Listen registers a global hotkey combination such as "Ctrl+Alt+H" and
// invokes callback each time all of its keys are held together. The
// listener runs on its own goroutine; the callback must not block for
// long, or it will delay detection of the next press.
func Listen(hotkeyConfig string, callback func()) {
	keys := parseHotkey(hotkeyConfig)

	type keyState struct {
		name     string
		rawcodes []uint16
		pressed  bool
	}

	var keyStates []keyState
	for _, keyName := range keys {
		rawcodes := keyNameToRawcodes(keyName)
		if len(rawcodes) == 0 {
			log.Printf("hotkey: cannot map key %q, combination may not work", keyName)
			continue
		}
		keyStates = append(keyStates, keyState{name: keyName, rawcodes: rawcodes})
	}

	if len(keyStates) == 0 {
		log.Printf("hotkey: no valid keys in %q", hotkeyConfig)
		return
	}

	log.Printf("hotkey: listener configured for %s", hotkeyConfig)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("hotkey: panic in listener goroutine: %v", r)
			}
		}()

		evChan := gohook.Start()
		if evChan == nil {
			log.Printf("hotkey: gohook.Start returned nil channel")
			return
		}

		var mu sync.Mutex
		for ev := range evChan {
			switch ev.Kind {
			case gohook.KeyDown:
				mu.Lock()
				for i := range keyStates {
					for _, rawcode := range keyStates[i].rawcodes {
						if ev.Rawcode == rawcode {
							keyStates[i].pressed = true
						}
					}
				}

				allPressed := true
				for i := range keyStates {
					if !keyStates[i].pressed {
						allPressed = false
						break
					}
				}

				if allPressed {
					for i := range keyStates {
						keyStates[i].pressed = false
					}
					mu.Unlock()
					log.Printf("hotkey: %s activated", hotkeyConfig)
					if callback != nil {
						callback()
					}
				} else {
					mu.Unlock()
				}

			case gohook.KeyUp:
				mu.Lock()
				for i := range keyStates {
					for _, rawcode := range keyStates[i].rawcodes {
						if ev.Rawcode == rawcode {
							keyStates[i].pressed = false
						}
					}
				}
				mu.Unlock()
			}
		}
		log.Printf("hotkey: event channel closed")
	}()
}

// parseHotkey converts a hotkey string like "Ctrl+Alt+h" to normalized
// key names.
func parseHotkey(hotkeyConfig string) []string {
	parts := strings.Split(strings.ToLower(hotkeyConfig), "+")
	var keys []string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "":
		case "win", "cmd", "super":
			keys = append(keys, "cmd")
		default:
			keys = append(keys, part)
		}
	}

	return keys
}

// keyNameToRawcodes maps a key name to its Windows virtual key codes.
// Modifiers return both left and right variants.
func keyNameToRawcodes(keyName string) []uint16 {
	keyName = strings.ToLower(strings.TrimSpace(keyName))

	switch keyName {
	case "ctrl":
		return []uint16{162, 163} // VK_LCONTROL, VK_RCONTROL
	case "alt":
		return []uint16{164, 165} // VK_LMENU, VK_RMENU
	case "shift":
		return []uint16{160, 161} // VK_LSHIFT, VK_RSHIFT
	case "win", "cmd", "super":
		return []uint16{91, 92} // VK_LWIN, VK_RWIN
	case "space":
		return []uint16{32}
	case "enter":
		return []uint16{13}
	case "esc":
		return []uint16{27}
	case "tab":
		return []uint16{9}
	}

	// Letters a-z: VK 0x41-0x5A. Digits 0-9: VK 0x30-0x39.
	if len(keyName) == 1 {
		c := keyName[0]
		switch {
		case c >= 'a' && c <= 'z':
			return []uint16{uint16(c-'a') + 65}
		case c >= '0' && c <= '9':
			return []uint16{uint16(c-'0') + 48}
		}
	}

	// Function keys f1-f24: VK 0x70-0x87.
	if strings.HasPrefix(keyName, "f") {
		var n int
		for _, c := range keyName[1:] {
			if c < '0' || c > '9' {
				return nil
			}
			n = n*10 + int(c-'0')
		}
		if n >= 1 && n <= 24 {
			return []uint16{uint16(n-1) + 112}
		}
	}

	return nil
}
