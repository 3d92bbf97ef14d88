package eventloop

import (
	"context"
	"log"

	"desktop-automate/src/config"
	"desktop-automate/src/overlay"
	"desktop-automate/src/window"
)

// Loop is the single-goroutine coordinator for the resident helper: it
// turns hotkey activations into overlay highlights of the focused window.
// Each highlight runs to completion on the loop goroutine, so a second
// activation during an active overlay is simply queued (or dropped when
// the queue is full).
type Loop struct {
	cfg      *config.Config
	hotkeyCh chan struct{}
}

// New creates an event loop with highlight parameters taken from cfg.
func New(cfg *config.Config) *Loop {
	if cfg == nil {
		cfg = &config.Config{
			OutlineThickness:  config.DefaultThickness,
			OutlineDurationMS: config.DefaultDurationMS,
		}
	}
	return &Loop{
		cfg:      cfg,
		hotkeyCh: make(chan struct{}, 4),
	}
}

// NotifyHotkey queues a highlight request. Never blocks; activations
// beyond the queue capacity are dropped.
func (l *Loop) NotifyHotkey() {
	select {
	case l.hotkeyCh <- struct{}{}:
	default:
		log.Printf("eventloop: hotkey queue full, dropping activation")
	}
}

// Run processes hotkey events until ctx is cancelled. Cancellation also
// dismisses any overlay currently on screen, unblocking the loop.
func (l *Loop) Run(ctx context.Context) {
	stop := context.AfterFunc(ctx, overlay.CloseAll)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.hotkeyCh:
			l.highlightForeground()
		}
	}
}

// highlightForeground outlines the currently focused window. Blocks for
// the configured overlay duration.
func (l *Loop) highlightForeground() {
	w, err := window.Foreground()
	if err != nil {
		log.Printf("eventloop: no foreground window: %v", err)
		return
	}

	if err := w.Outline(l.cfg.OutlineThickness, l.cfg.OutlineColor, l.cfg.OutlineDurationMS); err != nil {
		log.Printf("eventloop: highlight failed: %v", err)
	}
}
