package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"desktop-automate/src/config"
	"desktop-automate/src/eventloop"
	"desktop-automate/src/gui"
	"desktop-automate/src/hotkey"
	"desktop-automate/src/logutil"
	"desktop-automate/src/overlay"
)

// enableDPIAwareness sets per-monitor DPI awareness on Windows so overlay
// coordinates match physical screen coordinates on scaled displays.
func enableDPIAwareness() {
	if runtime.GOOS != "windows" {
		return
	}
	// Prefer per-monitor DPI awareness via Shcore.SetProcessDpiAwareness (Win 8.1+)
	shcore := syscall.NewLazyDLL("Shcore.dll")
	setProcessDpiAwareness := shcore.NewProc("SetProcessDpiAwareness")
	const PROCESS_PER_MONITOR_DPI_AWARE = 2
	if err := setProcessDpiAwareness.Find(); err == nil {
		_, _, _ = setProcessDpiAwareness.Call(uintptr(PROCESS_PER_MONITOR_DPI_AWARE))
		return
	}
	// Fallback: user32.SetProcessDPIAware (Vista+)
	user32 := syscall.NewLazyDLL("user32.dll")
	setProcessDPIAware := user32.NewProc("SetProcessDPIAware")
	if err := setProcessDPIAware.Find(); err == nil {
		_, _, _ = setProcessDPIAware.Call()
	}
}

func main() {
	// Ensure DPI awareness before creating any windows or querying metrics
	enableDPIAwareness()

	// Keep the main goroutine on its own OS thread so the tray loop does
	// not share a message queue with overlay pumps.
	runtime.LockOSThread()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logutil.Setup(cfg.EnableFileLogging)

	log.Printf("Desktop Automate helper initialized")
	log.Printf("Hotkey: %s", cfg.Hotkey)
	log.Printf("Outline: thickness=%d color=%#06x duration=%dms",
		cfg.OutlineThickness, uint32(cfg.OutlineColor), cfg.OutlineDurationMS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := eventloop.New(cfg)
	go loop.Run(ctx)

	hotkey.Listen(cfg.Hotkey, loop.NotifyHotkey)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Printf("Signal received, shutting down")
		cancel()
		overlay.CloseAll()
		os.Exit(0)
	}()

	// Blocks until Quit is chosen from the tray menu.
	gui.StartSystray(gui.Callbacks{
		OnHighlight: loop.NotifyHotkey,
		OnQuit:      cancel,
	})
}
