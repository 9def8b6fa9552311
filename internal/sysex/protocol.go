// Package sysex implements the vendor configuration protocol: a byte-stream
// scanner that reassembles SysEx frames out of the raw MIDI stream, and the
// command handler that reads and writes the config store.
//
// Frame grammar: F0 00 7D 01 <command> <payload...> F7. The byte layout is
// the externally documented interface and must stay bit-exact.
package sysex

// Frame delimiters and header bytes.
const (
	StartByte = 0xF0
	EndByte   = 0xF7

	ManufacturerID1 = 0x00 // educational/development manufacturer prefix
	ManufacturerID2 = 0x7D
	DeviceID        = 0x01
)

// Commands.
const (
	CmdGetInfo    = 0x01
	CmdGetMessage = 0x02
	CmdSetMessage = 0x03
)

// ProtocolVersion is reported in the GET_INFO reply.
const ProtocolVersion = 0x01

// SET_MESSAGE status bytes.
const (
	SetStatusOK    = 0x00
	SetStatusError = 0x01
)

// BufferSize bounds frame reassembly; longer frames are dropped at the next
// frame boundary. Replies are truncated to fit the same bound.
const BufferSize = 64

// Fixed frame lengths. headerLen counts F0 through the command byte.
const (
	headerLen     = 5
	getInfoLen    = 6 // F0 00 7D 01 01 F7
	getMessageLen = 8 // F0 00 7D 01 02 <sw> <ev> F7
	setMessageMin = 9 // F0 00 7D 01 03 <sw> <ev> <count> F7
	actionLen     = 4 // kind, channel, param1, param2
)
