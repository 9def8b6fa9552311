// Package usbmidi turns configured actions into 4-byte USB-MIDI event
// packets and writes them to the transport.
package usbmidi

import "github.com/leandrodaf/footswitch/sdk/contracts"

// USB-MIDI code index numbers (packet byte 0, low nibble).
const (
	cinNoteOff       = 0x08
	cinNoteOn        = 0x09
	cinControlChange = 0x0B
	cinProgramChange = 0x0C
)

// Encode maps an action to its USB-MIDI event packet. The high nibble of
// byte 0 carries the virtual cable number. It returns false for KindNone and
// for any out-of-range field: the store should only ever hold valid actions,
// but encode does not trust that.
func Encode(a contracts.Action, cable uint8) ([4]byte, bool) {
	var pkt [4]byte
	if !a.Valid() || a.Kind == contracts.KindNone {
		return pkt, false
	}
	head := cable << 4
	switch a.Kind {
	case contracts.KindControlChange:
		pkt[0] = head | cinControlChange
		pkt[1] = 0xB0 | a.Channel
		pkt[2] = a.Param1
		pkt[3] = a.Param2
	case contracts.KindProgramChange:
		pkt[0] = head | cinProgramChange
		pkt[1] = 0xC0 | a.Channel
		pkt[2] = a.Param1
		pkt[3] = 0
	case contracts.KindNote:
		if a.Param2 > 0 {
			pkt[0] = head | cinNoteOn
			pkt[1] = 0x90 | a.Channel
			pkt[2] = a.Param1
			pkt[3] = a.Param2
		} else {
			pkt[0] = head | cinNoteOff
			pkt[1] = 0x80 | a.Channel
			pkt[2] = a.Param1
			pkt[3] = 0
		}
	default:
		return pkt, false
	}
	return pkt, true
}
