package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Frame layout on the stream: [length(uint32 little-endian)] [payload].
// One frame per envelope; frames never interleave on a connection.

// MaxFrameSize bounds a single frame's payload at 1 MiB. The wire contract
// itself has no limit; real envelopes are under 40 bytes, so a length
// anywhere near this bound means a corrupt or hostile stream and the
// connection is torn down rather than the allocation attempted.
const MaxFrameSize = 1 << 20

// WriteFrame writes one length-prefixed frame to w. The caller is
// responsible for serializing concurrent writers; prefix and payload of a
// frame must reach the stream back to back.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return fmt.Errorf("protocol: frame too large: %d bytes", len(payload))
	}

	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// ReadFrame reads the next frame's payload from r, retrying short reads
// until the exact byte counts are in. A stream that ends cleanly between
// frames returns io.EOF; one that ends mid-frame returns
// io.ErrUnexpectedEOF. No partial payload is ever returned.
func ReadFrame(r io.Reader) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}

	length := binary.LittleEndian.Uint32(prefix[:])
	if length > MaxFrameSize {
		return nil, fmt.Errorf("protocol: frame too large: %d bytes", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return payload, nil
}
