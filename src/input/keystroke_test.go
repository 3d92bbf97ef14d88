package input

import "testing"

func TestEventsForTextPairsPerCharacter(t *testing.T) {
	text := "hello"
	events := eventsForText(text)

	if len(events) != 2*len(text) {
		t.Fatalf("expected %d events for %q, got %d", 2*len(text), text, len(events))
	}

	for i := 0; i < len(events); i += 2 {
		down, up := events[i], events[i+1]
		if down.flags != flagUnicode {
			t.Errorf("event %d: expected unicode down flags, got %#x", i, down.flags)
		}
		if up.flags != flagUnicode|flagKeyUp {
			t.Errorf("event %d: expected unicode up flags, got %#x", i+1, up.flags)
		}
		if down.scan != up.scan {
			t.Errorf("pair %d: down/up scan mismatch: %d vs %d", i/2, down.scan, up.scan)
		}
		if down.scan != uint16(text[i/2]) {
			t.Errorf("pair %d: scan %d, want %d", i/2, down.scan, text[i/2])
		}
		if down.vk != 0 || up.vk != 0 {
			t.Errorf("pair %d: unicode events must not carry a virtual key", i/2)
		}
	}
}

func TestEventsForTextNewline(t *testing.T) {
	events := eventsForText("\n")
	if len(events) != 2 {
		t.Fatalf("expected a single down/up pair, got %d events", len(events))
	}

	down, up := events[0], events[1]
	if down.vk != vkReturn || down.flags != 0 {
		t.Errorf("down event = %+v, want Return key down", down)
	}
	if up.vk != vkReturn || up.flags != flagKeyUp {
		t.Errorf("up event = %+v, want Return key up", up)
	}
	if down.scan != 0 || up.scan != 0 {
		t.Error("newline must be a key press, not a unicode injection")
	}
}

func TestEventsForTextMixed(t *testing.T) {
	events := eventsForText("a\nb")
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
	if events[0].scan != 'a' || events[2].vk != vkReturn || events[4].scan != 'b' {
		t.Errorf("unexpected event order: %+v", events)
	}
}

func TestEventsForTextSurrogatePair(t *testing.T) {
	// Outside the BMP one rune spans two UTF-16 units, so two pairs.
	events := eventsForText("\U0001F600")
	if len(events) != 4 {
		t.Fatalf("expected 4 events for a surrogate pair, got %d", len(events))
	}
	if events[0].scan == events[2].scan {
		t.Error("expected distinct high/low surrogate units")
	}
}

func TestEventsForTextEmpty(t *testing.T) {
	if events := eventsForText(""); len(events) != 0 {
		t.Errorf("expected no events for empty text, got %d", len(events))
	}
}

func TestPasteChord(t *testing.T) {
	chord := pasteChord()
	if len(chord) != 4 {
		t.Fatalf("expected 4 events, got %d", len(chord))
	}
	// Ctrl must wrap the V press on both sides.
	if chord[0].vk != vkControl || chord[0].flags != 0 {
		t.Errorf("chord must open with Ctrl down, got %+v", chord[0])
	}
	if chord[3].vk != vkControl || chord[3].flags != flagKeyUp {
		t.Errorf("chord must close with Ctrl up, got %+v", chord[3])
	}
	if chord[1].vk != vkV || chord[2].vk != vkV || chord[2].flags != flagKeyUp {
		t.Errorf("inner events must press and release V, got %+v %+v", chord[1], chord[2])
	}
}
