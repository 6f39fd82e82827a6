// Package event defines the platform-independent input events carried
// between a kvmlink sender and receiver.
package event

// Type discriminates Event variants. Tags are part of the wire format:
// a new variant takes the next free tag, existing tags are never renumbered.
type Type uint8

const (
	TypeMouseMove   Type = 0x01
	TypeMouseButton Type = 0x02

	// 0x03 is reserved for keyboard key events.
)

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft   Button = 0x01
	ButtonRight  Button = 0x02
	ButtonMiddle Button = 0x03

	// ButtonOther marks a button with no named mapping; the raw platform
	// code travels alongside in Event.RawButton so nothing is lost.
	ButtonOther Button = 0x04
)

// MapButton converts a raw platform button code to a Button plus the raw
// code to carry for unnamed buttons. The mapping is total: 1=left, 2=right,
// 3=middle, anything else is preserved as ButtonOther with its code.
func MapButton(code uint8) (Button, uint8) {
	switch code {
	case 1:
		return ButtonLeft, 0
	case 2:
		return ButtonRight, 0
	case 3:
		return ButtonMiddle, 0
	}
	return ButtonOther, code
}

// Event is one abstract input event. Which fields are meaningful depends on
// Type:
//
//	TypeMouseMove:   X, Y (absolute screen coordinates, signed; negative on
//	                 multi-monitor layouts whose origin is not top-left)
//	TypeMouseButton: Button, RawButton, Down
type Event struct {
	Type      Type
	X, Y      int32
	Button    Button
	RawButton uint8 // original platform code when Button == ButtonOther
	Down      bool
}

// MouseMove builds an absolute mouse move event.
func MouseMove(x, y int32) Event {
	return Event{Type: TypeMouseMove, X: x, Y: y}
}

// MouseButton builds a button press (down=true) or release event.
func MouseButton(b Button, rawCode uint8, down bool) Event {
	return Event{Type: TypeMouseButton, Button: b, RawButton: rawCode, Down: down}
}

// Envelope wraps one Event with per-connection transport metadata. Seq
// starts at 1 and increases by one per captured event; the timestamp is the
// sender's wall clock in milliseconds at capture time. Both exist for
// diagnostics only and never drive ordering or loss decisions.
type Envelope struct {
	TimestampMillis uint64
	Seq             uint64
	Event           Event
}
