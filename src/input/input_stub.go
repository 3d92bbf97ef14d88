//go:build !windows

package input

func typeText(string, int) error {
	return ErrUnavailable
}

func click(int32, int32) error {
	return ErrUnavailable
}

func pasteText(string) error {
	return ErrUnavailable
}
