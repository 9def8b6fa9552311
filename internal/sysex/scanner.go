package sysex

// Scanner extracts complete SysEx frames from an inbound raw MIDI byte
// stream. It has two states: idle, where non-SysEx bytes pass through
// unbuffered, and in-frame, where bytes accumulate until the end byte.
type Scanner struct {
	buf     [BufferSize]byte
	pos     int
	inFrame bool
}

// Feed consumes one byte and returns a completed frame (start and end bytes
// included) when b terminates one. The returned slice aliases the scanner's
// buffer and is only valid until the next Feed.
//
// A start byte always resets the scanner, silently discarding any partial
// frame. Once the buffer is full, data bytes are dropped until the next
// frame boundary; a frame that overflowed never completes.
func (s *Scanner) Feed(b byte) ([]byte, bool) {
	switch {
	case b == StartByte:
		s.buf[0] = b
		s.pos = 1
		s.inFrame = true

	case b == EndByte:
		if !s.inFrame {
			return nil, false
		}
		s.inFrame = false
		if s.pos >= BufferSize {
			// Frame overflowed earlier; drop it whole.
			s.pos = 0
			return nil, false
		}
		s.buf[s.pos] = b
		frame := s.buf[:s.pos+1]
		s.pos = 0
		return frame, true

	case s.inFrame:
		if s.pos < BufferSize {
			s.buf[s.pos] = b
			s.pos++
		}
		// else: overflow, drop until F7 or F0.
	}
	// Bytes arriving while idle are passthrough MIDI, never buffered.
	return nil, false
}
