// Package protocol implements the kvmlink wire format: a fixed binary
// encoding of event envelopes plus length-prefixed framing for TCP.
//
// Sender and receiver are built and deployed independently, so this layout
// is the de-facto protocol contract and must stay byte-stable.
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"

	"kvmlink/internal/event"
)

// Envelope header: [type(1)] [seq(8)] [timestamp(16)] = 25 bytes. All
// integers are little-endian. The timestamp is a 128-bit millisecond field
// of which a conforming sender only ever sets the low 64 bits; a non-zero
// high half is rejected as corrupt.
//
// Wire format per type:
//
//	MouseMove   (0x01): header + x(int32) + y(int32)                       = 33 bytes
//	MouseButton (0x02): header + button(uint8) + code(uint8) + down(uint8) = 28 bytes
//
// Type 0x03 is reserved for keyboard events. Tags are append-only: a new
// variant takes a fresh tag and existing layouts never change, so a peer
// that predates a variant fails cleanly on the tag instead of misreading
// the payload.
const EnvelopeHeaderSize = 25

// Button kind bytes reuse the event.Button values (left=0x01, right=0x02,
// middle=0x03, other=0x04). The raw platform code byte is always present
// and is zero for the three named buttons.

// EncodeEnvelope serializes env to wire format. Encoding is total: every
// well-formed envelope value serializes.
func EncodeEnvelope(env *event.Envelope) []byte {
	size := EnvelopeHeaderSize
	switch env.Event.Type {
	case event.TypeMouseMove:
		size += 8 // x(4) + y(4)
	case event.TypeMouseButton:
		size += 3 // button(1) + code(1) + down(1)
	}

	buf := make([]byte, size)
	buf[0] = byte(env.Event.Type)
	binary.LittleEndian.PutUint64(buf[1:9], env.Seq)
	binary.LittleEndian.PutUint64(buf[9:17], env.TimestampMillis)
	// buf[17:25] is the high half of the 128-bit timestamp, always zero.

	payload := buf[EnvelopeHeaderSize:]
	switch env.Event.Type {
	case event.TypeMouseMove:
		binary.LittleEndian.PutUint32(payload[0:4], uint32(env.Event.X))
		binary.LittleEndian.PutUint32(payload[4:8], uint32(env.Event.Y))
	case event.TypeMouseButton:
		payload[0] = byte(env.Event.Button)
		payload[1] = env.Event.RawButton
		if env.Event.Down {
			payload[2] = 1
		}
	}

	return buf
}

// DecodeEnvelope deserializes wire bytes into an envelope. It is the exact
// inverse of EncodeEnvelope for anything EncodeEnvelope produced, and fails
// with an error on truncated input, unknown tags, or invalid field values.
// It never panics.
func DecodeEnvelope(data []byte) (*event.Envelope, error) {
	if len(data) < EnvelopeHeaderSize {
		return nil, errors.New("protocol: envelope too short")
	}

	env := &event.Envelope{
		Seq:             binary.LittleEndian.Uint64(data[1:9]),
		TimestampMillis: binary.LittleEndian.Uint64(data[9:17]),
	}
	if hi := binary.LittleEndian.Uint64(data[17:25]); hi != 0 {
		return nil, errors.New("protocol: timestamp out of range")
	}

	payload := data[EnvelopeHeaderSize:]
	switch event.Type(data[0]) {
	case event.TypeMouseMove:
		if len(payload) < 8 {
			return nil, errors.New("protocol: mouse move payload too short")
		}
		env.Event.Type = event.TypeMouseMove
		env.Event.X = int32(binary.LittleEndian.Uint32(payload[0:4]))
		env.Event.Y = int32(binary.LittleEndian.Uint32(payload[4:8]))
	case event.TypeMouseButton:
		if len(payload) < 3 {
			return nil, errors.New("protocol: mouse button payload too short")
		}
		switch b := event.Button(payload[0]); b {
		case event.ButtonLeft, event.ButtonRight, event.ButtonMiddle, event.ButtonOther:
			env.Event.Button = b
		default:
			return nil, fmt.Errorf("protocol: unknown button kind 0x%02x", payload[0])
		}
		switch payload[2] {
		case 0:
		case 1:
			env.Event.Down = true
		default:
			return nil, fmt.Errorf("protocol: invalid button state 0x%02x", payload[2])
		}
		env.Event.Type = event.TypeMouseButton
		env.Event.RawButton = payload[1]
	default:
		return nil, fmt.Errorf("protocol: unknown event type 0x%02x", data[0])
	}

	return env, nil
}
