// Package network implements the two halves of the kvmlink relay: a sender
// that turns capture callbacks into framed TCP writes, and a server that
// turns framed TCP reads into injected input.
package network

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"kvmlink/internal/capture"
	"kvmlink/internal/event"
	"kvmlink/internal/protocol"
)

// Sender relays captured input events over one TCP connection. Capture
// callbacks arrive on an OS thread the sender does not control; writes are
// serialized under mu and each frame is flushed before the callback
// returns, so wire order always equals capture order and a captured event
// can never race ahead of its predecessor.
type Sender struct {
	conn  net.Conn
	mu    sync.Mutex
	w     *bufio.Writer
	seq   atomic.Uint64
	debug bool
}

// Dial opens the relay connection to addr. There is no retry: a sender that
// cannot reach its receiver should exit and let the operator fix the link.
func Dial(addr string, debug bool) (*Sender, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	return NewSender(conn, debug), nil
}

// NewSender wraps an established connection.
func NewSender(conn net.Conn, debug bool) *Sender {
	return &Sender{conn: conn, w: bufio.NewWriter(conn), debug: debug}
}

// Run subscribes HandleRaw to src and blocks until capture ends or fails.
func (s *Sender) Run(src capture.Source) error {
	return src.Subscribe(s.HandleRaw)
}

// HandleRaw is the capture callback: map, stamp, encode, frame, send.
// Non-mouse raw events are discarded since the protocol carries only mouse
// data. A write or flush failure is logged and the event dropped; capture
// keeps running.
func (s *Sender) HandleRaw(raw capture.RawEvent) {
	ev, ok := MapRaw(raw)
	if !ok {
		return
	}

	env := event.Envelope{
		TimestampMillis: uint64(time.Now().UnixMilli()),
		Seq:             s.seq.Add(1),
		Event:           ev,
	}
	payload := protocol.EncodeEnvelope(&env)

	// Held across write and flush: the frame must be contiguous on the
	// wire and fully out before the next callback's frame begins.
	s.mu.Lock()
	err := protocol.WriteFrame(s.w, payload)
	if err == nil {
		err = s.w.Flush()
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("Sender: send error: %v", err)
		return
	}
	if s.debug {
		log.Printf("Sender: sent seq=%d ts=%d len=%dB type=0x%02x",
			env.Seq, env.TimestampMillis, len(payload), uint8(ev.Type))
	}
}

// Close closes the underlying connection.
func (s *Sender) Close() error {
	return s.conn.Close()
}

// MapRaw converts a raw capture event to a wire event. Raw events the
// protocol does not carry report ok=false and are simply not forwarded.
func MapRaw(raw capture.RawEvent) (event.Event, bool) {
	switch raw.Kind {
	case capture.KindMouseMove:
		return event.MouseMove(raw.X, raw.Y), true
	case capture.KindMouseDown:
		b, code := event.MapButton(raw.Button)
		return event.MouseButton(b, code, true), true
	case capture.KindMouseUp:
		b, code := event.MapButton(raw.Button)
		return event.MouseButton(b, code, false), true
	}
	return event.Event{}, false
}
