package clipboard

import (
	"errors"
	"sync"

	"golang.design/x/clipboard"
)

var (
	mu          sync.Mutex
	initialized bool
)

// ErrUnavailable implies the clipboard was never initialized, or the
// platform offers none.
var ErrUnavailable = errors.New("clipboard unavailable")

func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		return err
	}
	initialized = true
	return nil
}

// Write performs a mutex-guarded clipboard write to prevent corruption
// under parallel writers.
func Write(text string) error {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		return ErrUnavailable
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
