package network

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"
	"runtime"

	"kvmlink/internal/event"
	"kvmlink/internal/inject"
	"kvmlink/internal/osutils"
	"kvmlink/internal/protocol"
)

// queueDepth bounds the per-connection hand-off channel between the reader
// and the injector worker. Injection is slower than decoding; the bound
// keeps a burst of mouse moves from growing the queue without limit.
const queueDepth = 128

// Server accepts sender connections and injects their events locally.
// Each connection gets one reader goroutine and one injector worker that
// exclusively owns one injector instance; connections are fully isolated
// from one another.
type Server struct {
	ln          net.Listener
	newInjector func() (inject.Injector, error)
}

// Listen binds the relay listener on addr. newInjector is called once per
// accepted connection, on the worker that will own the result.
func Listen(addr string, newInjector func() (inject.Injector, error)) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", addr, err)
	}
	return &Server{ln: ln, newInjector: newInjector}, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve runs the accept loop until the listener closes. It never waits on
// a connection's lifetime: each accepted connection is handed off and the
// loop immediately accepts the next one.
func (s *Server) Serve() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return err
		}
		log.Printf("Receiver: client connected from %s", conn.RemoteAddr())
		go s.handleConn(conn)
	}
}

// Close stops the accept loop. Connections already accepted keep running
// until their streams end.
func (s *Server) Close() error {
	return s.ln.Close()
}

// handleConn reads frames until the stream ends, handing decoded envelopes
// to this connection's injector worker in FIFO order. A decode failure
// drops that one frame and keeps reading; a framing-level failure ends the
// connection, after which the worker drains whatever is already queued.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	// The sender is about to drive this pointer; make sure the display
	// is awake to show it.
	osutils.WakeUp()

	events := make(chan event.Envelope, queueDepth)
	done := make(chan struct{})
	go s.injectLoop(conn.RemoteAddr(), events, done)

	r := bufio.NewReader(conn)
	for {
		payload, err := protocol.ReadFrame(r)
		if err != nil {
			if err != io.EOF {
				log.Printf("Receiver: read error from %s: %v", conn.RemoteAddr(), err)
			}
			break
		}

		env, err := protocol.DecodeEnvelope(payload)
		if err != nil {
			log.Printf("Receiver: dropping frame from %s: %v", conn.RemoteAddr(), err)
			continue
		}
		events <- *env
	}

	close(events)
	<-done
	log.Printf("Receiver: client disconnected %s", conn.RemoteAddr())
}

// injectLoop owns this connection's injector for its whole lifetime. The
// goroutine is pinned to one OS thread because injection backends are not
// movable across threads. It exits once the channel is closed and drained.
func (s *Server) injectLoop(peer net.Addr, events <-chan event.Envelope, done chan<- struct{}) {
	defer close(done)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	inj, err := s.newInjector()
	if err != nil {
		log.Printf("Receiver: injector unavailable for %s: %v", peer, err)
		for range events {
			// Keep the reader from blocking on a full channel.
		}
		return
	}

	for env := range events {
		if err := applyEvent(inj, env.Event); err != nil {
			log.Printf("Receiver: inject error (seq=%d): %v", env.Seq, err)
		}
	}
}

// applyEvent maps one wire event onto the injector. Buttons with no local
// equivalent are skipped without disturbing later events.
func applyEvent(inj inject.Injector, ev event.Event) error {
	switch ev.Type {
	case event.TypeMouseMove:
		return inj.MoveTo(int(ev.X), int(ev.Y))
	case event.TypeMouseButton:
		if ev.Button == event.ButtonOther {
			log.Printf("Receiver: skipping unmapped button code %d", ev.RawButton)
			return nil
		}
		return inj.SetButton(ev.Button, ev.Down)
	}
	return fmt.Errorf("network: no injection for event type 0x%02x", uint8(ev.Type))
}
