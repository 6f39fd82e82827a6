// Package capture observes raw operating system input and hands it to a
// callback, one event at a time.
package capture

// Kind classifies a raw event as reported by the OS hook.
type Kind uint8

const (
	KindMouseMove Kind = iota + 1
	KindMouseDown
	KindMouseUp
	KindOther // wheel, keyboard, anything the relay does not carry
)

// RawEvent is one platform input event, unfiltered. Button carries the
// platform button code (1=left, 2=right, 3=middle, higher codes vary by
// device); coordinates are absolute screen positions.
type RawEvent struct {
	Kind   Kind
	X, Y   int32
	Button uint8
}

// Source delivers raw input events to a callback. Subscribe blocks until
// capture ends or fails. The callback runs synchronously on the capture
// thread: until it returns, the next event is not delivered, which is what
// lets a caller keep downstream order equal to capture order.
type Source interface {
	Subscribe(fn func(RawEvent)) error
}
