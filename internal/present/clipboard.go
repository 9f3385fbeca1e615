package present

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	ErrNothingToCopy        = errors.New("Nothing to copy.")
	ErrClipboardUnavailable = errors.New("Copy failed — clipboard access is unavailable.")
)

// CopiedMessage is shown on the meta line after a successful copy.
const CopiedMessage = "Result copied to clipboard"

// Clipboard writes text to a platform clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// clipboardError reads as ErrClipboardUnavailable and still matches the
// platform cause through errors.Is and errors.As.
type clipboardError struct {
	cause error
}

func (e *clipboardError) Error() string { return ErrClipboardUnavailable.Error() }

func (e *clipboardError) Unwrap() []error { return []error{ErrClipboardUnavailable, e.cause} }

// Copy writes the output's result line verbatim to cb. It fails with
// ErrNothingToCopy when there is no result and with ErrClipboardUnavailable
// when the clipboard refuses. The message is the same on every surface.
func Copy(cb Clipboard, out Output) error {
	text := strings.TrimSpace(out.Text())
	if text == "" {
		return ErrNothingToCopy
	}

	if err := cb.WriteAll(text); err != nil {
		return &clipboardError{cause: err}
	}
	return nil
}
