// Package transport provides an in-memory Transport double for tests and
// examples, standing in for the device's USB-MIDI stack.
package transport

// Loopback is a contracts.Transport backed by two byte FIFOs: the host pushes
// bytes the device will read, and everything the device writes is captured
// for the host to inspect. It is single-threaded, like the control loop that
// drives it.
type Loopback struct {
	Connected bool

	// WriteLimit, when non-negative, caps how many bytes a single Write
	// accepts. Used to provoke short writes in tests. -1 means unlimited.
	WriteLimit int

	inbound []byte
	sent    []byte
}

// NewLoopback returns a connected loopback with unlimited writes.
func NewLoopback() *Loopback {
	return &Loopback{Connected: true, WriteLimit: -1}
}

// IsConnected reports the simulated mount state.
func (l *Loopback) IsConnected() bool { return l.Connected }

// BytesAvailable returns how many pushed bytes remain unread.
func (l *Loopback) BytesAvailable() int { return len(l.inbound) }

// Read drains pushed bytes into buf.
func (l *Loopback) Read(buf []byte) int {
	n := copy(buf, l.inbound)
	l.inbound = l.inbound[n:]
	return n
}

// Write captures outbound bytes, honoring WriteLimit.
func (l *Loopback) Write(data []byte) int {
	n := len(data)
	if l.WriteLimit >= 0 && n > l.WriteLimit {
		n = l.WriteLimit
	}
	l.sent = append(l.sent, data[:n]...)
	return n
}

// Push queues bytes for the device to read.
func (l *Loopback) Push(data ...byte) {
	l.inbound = append(l.inbound, data...)
}

// TakeSent returns everything written since the last call and clears it.
func (l *Loopback) TakeSent() []byte {
	out := l.sent
	l.sent = nil
	return out
}
