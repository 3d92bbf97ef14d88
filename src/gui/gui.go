package gui

import (
	"github.com/getlantern/systray"
)

// Callbacks connects the tray menu to the rest of the application.
type Callbacks struct {
	OnHighlight func()
	OnQuit      func()
}

// StartSystray runs the tray icon loop. Blocks until Quit is chosen.
func StartSystray(cb Callbacks) {
	systray.Run(func() { onReady(cb) }, func() { onExit(cb) })
}

func onReady(cb Callbacks) {
	systray.SetIcon(getIcon())
	systray.SetTitle("Desktop Automate")
	systray.SetTooltip("Desktop Automate - highlight the focused window")

	mHighlight := systray.AddMenuItem("Highlight Focused Window", "Outline the focused window on screen")
	mQuit := systray.AddMenuItem("Quit", "Quit the helper")

	go func() {
		for {
			select {
			case <-mHighlight.ClickedCh:
				if cb.OnHighlight != nil {
					cb.OnHighlight()
				}
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func onExit(cb Callbacks) {
	if cb.OnQuit != nil {
		cb.OnQuit()
	}
}

func getIcon() []byte {
	// TODO: embed a proper .ico; systray tolerates nil and shows a blank icon
	return nil
}
