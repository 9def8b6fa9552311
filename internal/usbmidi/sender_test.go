package usbmidi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandrodaf/footswitch/internal/logger"
	"github.com/leandrodaf/footswitch/internal/transport"
	"github.com/leandrodaf/footswitch/sdk/contracts"
)

func TestSendListEmitsPacketsInOrder(t *testing.T) {
	tr := transport.NewLoopback()
	pulses := 0
	s := NewSender(tr, 0, logger.NewNopLogger(), func() { pulses++ })

	ev := contracts.EventActions{Count: 3}
	ev.Actions[0] = contracts.Action{Kind: contracts.KindControlChange, Channel: 0, Param1: 64, Param2: 127}
	ev.Actions[1] = contracts.Action{Kind: contracts.KindNone} // inert, skipped
	ev.Actions[2] = contracts.Action{Kind: contracts.KindProgramChange, Channel: 1, Param1: 9}
	s.SendList(ev)

	assert.Equal(t, []byte{
		0x0B, 0xB0, 64, 127,
		0x0C, 0xC1, 9, 0,
	}, tr.TakeSent())
	assert.Equal(t, 1, pulses, "activity fires once per batch")
}

func TestSendListIgnoresEntriesBeyondCount(t *testing.T) {
	tr := transport.NewLoopback()
	s := NewSender(tr, 0, logger.NewNopLogger(), nil)

	ev := contracts.EventActions{Count: 1}
	ev.Actions[0] = contracts.Action{Kind: contracts.KindControlChange, Param1: 1, Param2: 2}
	ev.Actions[1] = contracts.Action{Kind: contracts.KindControlChange, Param1: 3, Param2: 4}
	s.SendList(ev)

	assert.Len(t, tr.TakeSent(), 4)
}

func TestSendListWhenDisconnected(t *testing.T) {
	tr := transport.NewLoopback()
	tr.Connected = false
	pulses := 0
	s := NewSender(tr, 0, logger.NewNopLogger(), func() { pulses++ })

	ev := contracts.EventActions{Count: 1}
	ev.Actions[0] = contracts.Action{Kind: contracts.KindControlChange, Param1: 1, Param2: 2}
	s.SendList(ev)

	assert.Empty(t, tr.TakeSent())
	assert.Zero(t, pulses)
}

func TestSendListShortWriteDoesNotPulse(t *testing.T) {
	tr := transport.NewLoopback()
	tr.WriteLimit = 2 // every packet write comes up short
	pulses := 0
	s := NewSender(tr, 0, logger.NewNopLogger(), func() { pulses++ })

	ev := contracts.EventActions{Count: 1}
	ev.Actions[0] = contracts.Action{Kind: contracts.KindControlChange, Param1: 1, Param2: 2}
	s.SendList(ev)

	assert.Zero(t, pulses)
}
