package usbmidi

import "github.com/leandrodaf/footswitch/sdk/contracts"

// Sender serializes action lists onto the transport.
type Sender struct {
	transport  contracts.Transport
	cable      uint8
	log        contracts.Logger
	onActivity func()
}

// NewSender builds a sender for the given cable. onActivity fires once per
// sent batch, not per packet; pass nil to disable.
func NewSender(tr contracts.Transport, cable uint8, log contracts.Logger, onActivity func()) *Sender {
	return &Sender{transport: tr, cable: cable, log: log, onActivity: onActivity}
}

// SendList emits every active action of ev back-to-back, in list order.
// Inert and invalid actions are skipped. Short writes are logged as send
// failures and not retried. The activity callback fires once if anything
// went out.
func (s *Sender) SendList(ev contracts.EventActions) {
	if !s.transport.IsConnected() {
		return
	}
	sent := 0
	for i, a := range ev.Active() {
		pkt, ok := Encode(a, s.cable)
		if !ok {
			continue
		}
		if n := s.transport.Write(pkt[:]); n != len(pkt) {
			s.log.Warn("short MIDI write",
				contracts.Int("action", i),
				contracts.Int("wrote", n))
			continue
		}
		sent++
	}
	if sent > 0 && s.onActivity != nil {
		s.onActivity()
	}
}
