// Package storage provides an in-memory Storage double with real flash
// semantics: sector-aligned erase to 0xFF, program into erased cells, and
// hooks for injecting faults.
package storage

import (
	"errors"
	"fmt"
)

// Flash fault and misuse errors.
var (
	ErrBounds     = errors.New("memflash: access out of bounds")
	ErrAlignment  = errors.New("memflash: erase not sector aligned")
	ErrNotErased  = errors.New("memflash: programming non-erased cells")
	ErrInjectedIO = errors.New("memflash: injected fault")
)

// MemFlash simulates a byte-addressable flash part.
type MemFlash struct {
	sectorSize uint32
	data       []byte

	// FailErase and FailProgram make the next matching call fail with
	// ErrInjectedIO, then reset.
	FailErase   bool
	FailProgram bool
	// CorruptProgram flips a bit in the first programmed byte, so read-back
	// verification fails while the program call itself succeeds.
	CorruptProgram bool
}

// NewMemFlash creates a part of the given total size, fully erased.
func NewMemFlash(size, sectorSize uint32) *MemFlash {
	data := make([]byte, size)
	for i := range data {
		data[i] = 0xFF
	}
	return &MemFlash{sectorSize: sectorSize, data: data}
}

// SectorSize returns the minimum erasable unit.
func (f *MemFlash) SectorSize() uint32 { return f.sectorSize }

// Read copies len(buf) bytes starting at offset.
func (f *MemFlash) Read(offset uint32, buf []byte) error {
	if int(offset)+len(buf) > len(f.data) {
		return fmt.Errorf("%w: read %d+%d", ErrBounds, offset, len(buf))
	}
	copy(buf, f.data[offset:])
	return nil
}

// Erase resets a sector-aligned region to 0xFF.
func (f *MemFlash) Erase(offset, length uint32) error {
	if f.FailErase {
		f.FailErase = false
		return ErrInjectedIO
	}
	if offset%f.sectorSize != 0 || length%f.sectorSize != 0 {
		return fmt.Errorf("%w: %d+%d", ErrAlignment, offset, length)
	}
	if int(offset+length) > len(f.data) {
		return fmt.Errorf("%w: erase %d+%d", ErrBounds, offset, length)
	}
	for i := offset; i < offset+length; i++ {
		f.data[i] = 0xFF
	}
	return nil
}

// Program writes data into a previously erased region. Like the real part,
// it refuses to raise bits.
func (f *MemFlash) Program(offset uint32, data []byte) error {
	if f.FailProgram {
		f.FailProgram = false
		return ErrInjectedIO
	}
	if int(offset)+len(data) > len(f.data) {
		return fmt.Errorf("%w: program %d+%d", ErrBounds, offset, len(data))
	}
	for i, b := range data {
		if f.data[offset+uint32(i)] != 0xFF {
			return fmt.Errorf("%w: offset %d", ErrNotErased, offset+uint32(i))
		}
		f.data[offset+uint32(i)] = b
	}
	if f.CorruptProgram && len(data) > 0 {
		f.data[offset] ^= 0x01
		f.CorruptProgram = false
	}
	return nil
}
