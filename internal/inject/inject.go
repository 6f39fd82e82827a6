// Package inject applies abstract input events to the local desktop.
package inject

import "kvmlink/internal/event"

// Injector moves the real pointer and presses real buttons. Implementations
// are not safe for concurrent use and may be bound to the OS thread that
// first touches them; the receiver pipeline confines each instance to a
// single locked worker goroutine.
type Injector interface {
	// MoveTo moves the cursor to absolute screen coordinates.
	MoveTo(x, y int) error

	// SetButton presses (down=true) or releases a named mouse button.
	// The caller filters out event.ButtonOther before getting here.
	SetButton(b event.Button, down bool) error
}
