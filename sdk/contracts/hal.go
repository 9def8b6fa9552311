package contracts

// Pin identifies a hardware GPIO pin number.
type Pin uint8

// PinReader reads digital switch inputs. Switch inputs are active low:
// ReadPin returns the electrical level, so a pressed switch reads false.
type PinReader interface {
	ReadPin(pin Pin) bool
}

// Clock provides a monotonic millisecond timestamp. The value wraps; all
// elapsed-time comparisons must use wrap-safe uint32 subtraction.
type Clock interface {
	NowMS() uint32
}

// LED drives the activity indicator output.
type LED interface {
	SetLED(on bool)
}

// Transport is the USB-MIDI byte stream the device talks through. It is
// consumed, never implemented here: a real device wires its USB stack in,
// tests wire a loopback.
type Transport interface {
	// IsConnected reports whether the host side is mounted.
	IsConnected() bool
	// BytesAvailable returns how many inbound bytes can be read without blocking.
	BytesAvailable() int
	// Read copies up to len(buf) inbound bytes and returns how many were copied.
	Read(buf []byte) int
	// Write sends raw MIDI bytes and returns how many were accepted. A return
	// shorter than len(data) is a send failure; callers report it but do not
	// retry.
	Write(data []byte) int
}

// Storage is byte-addressable non-volatile memory with sector-erase
// semantics: a region must be erased before it can be programmed.
// Implementations backed by real flash must run Erase and Program inside an
// interrupt-masked critical section, kept as short as possible.
type Storage interface {
	// SectorSize returns the minimum erasable unit in bytes.
	SectorSize() uint32
	// Read copies len(buf) bytes starting at offset into buf.
	Read(offset uint32, buf []byte) error
	// Erase resets the given region to the erased state (all 0xFF).
	// Offset and length must be sector aligned.
	Erase(offset, length uint32) error
	// Program writes data starting at offset into a previously erased region.
	Program(offset uint32, data []byte) error
}

// Hardware groups the consumed platform services a controller is built on.
type Hardware struct {
	Transport Transport
	Storage   Storage
	Pins      PinReader
	Clock     Clock
	LED       LED
}
