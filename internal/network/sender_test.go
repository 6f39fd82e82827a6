package network

import (
	"bufio"
	"net"
	"testing"

	"kvmlink/internal/capture"
	"kvmlink/internal/event"
	"kvmlink/internal/protocol"
)

// TestMapRaw tests the raw-to-wire mapping, including the discard path
func TestMapRaw(t *testing.T) {
	ev, ok := MapRaw(capture.RawEvent{Kind: capture.KindMouseMove, X: 5, Y: -6})
	if !ok || ev.Type != event.TypeMouseMove || ev.X != 5 || ev.Y != -6 {
		t.Errorf("Move mapping wrong: ok=%v ev=%+v", ok, ev)
	}

	ev, ok = MapRaw(capture.RawEvent{Kind: capture.KindMouseDown, Button: 2})
	if !ok || ev.Type != event.TypeMouseButton || ev.Button != event.ButtonRight || !ev.Down {
		t.Errorf("Press mapping wrong: ok=%v ev=%+v", ok, ev)
	}

	ev, ok = MapRaw(capture.RawEvent{Kind: capture.KindMouseUp, Button: 17})
	if !ok || ev.Button != event.ButtonOther || ev.RawButton != 17 || ev.Down {
		t.Errorf("Release mapping wrong: ok=%v ev=%+v", ok, ev)
	}

	if _, ok = MapRaw(capture.RawEvent{Kind: capture.KindOther}); ok {
		t.Error("Non-mouse raw event should be discarded")
	}
}

// TestSenderSequenceAndOrder tests that the sender stamps seq 1..N and that
// frames appear on the wire in capture order
func TestSenderSequenceAndOrder(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	s := NewSender(client, false)
	go func() {
		s.HandleRaw(capture.RawEvent{Kind: capture.KindMouseMove, X: 100, Y: 200})
		s.HandleRaw(capture.RawEvent{Kind: capture.KindOther}) // discarded, no seq
		s.HandleRaw(capture.RawEvent{Kind: capture.KindMouseDown, Button: 1})
		s.HandleRaw(capture.RawEvent{Kind: capture.KindMouseUp, Button: 1})
		s.Close()
	}()

	r := bufio.NewReader(server)
	var envs []event.Envelope
	for {
		payload, err := protocol.ReadFrame(r)
		if err != nil {
			break
		}
		env, err := protocol.DecodeEnvelope(payload)
		if err != nil {
			t.Fatalf("DecodeEnvelope failed: %v", err)
		}
		envs = append(envs, *env)
	}

	if len(envs) != 3 {
		t.Fatalf("Expected 3 envelopes, got %d", len(envs))
	}
	for i, env := range envs {
		if env.Seq != uint64(i+1) {
			t.Errorf("Envelope %d: seq = %d, want %d", i, env.Seq, i+1)
		}
	}
	if envs[0].Event != event.MouseMove(100, 200) {
		t.Errorf("First event wrong: %+v", envs[0].Event)
	}
	if envs[1].Event.Type != event.TypeMouseButton || !envs[1].Event.Down {
		t.Errorf("Second event should be a press: %+v", envs[1].Event)
	}
	if envs[2].Event.Type != event.TypeMouseButton || envs[2].Event.Down {
		t.Errorf("Third event should be a release: %+v", envs[2].Event)
	}
}
