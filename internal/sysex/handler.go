package sysex

import (
	"github.com/leandrodaf/footswitch/internal/config"
	"github.com/leandrodaf/footswitch/sdk/contracts"
)

// Handler runs the configuration commands against the store. It is fed raw
// inbound MIDI bytes and replies synchronously on the transport; each frame
// is processed to completion before the next byte is consumed.
type Handler struct {
	store      *config.Store
	transport  contracts.Transport
	log        contracts.Logger
	onActivity func()
	scanner    Scanner
}

// NewHandler builds a protocol handler bound to a store and transport.
// onActivity fires once per reply sent; pass nil to disable.
func NewHandler(store *config.Store, tr contracts.Transport, log contracts.Logger, onActivity func()) *Handler {
	return &Handler{store: store, transport: tr, log: log, onActivity: onActivity}
}

// Feed consumes a chunk of the raw inbound MIDI stream. Non-SysEx bytes pass
// through untouched; completed frames are validated and dispatched.
func (h *Handler) Feed(data []byte) {
	for _, b := range data {
		if frame, ok := h.scanner.Feed(b); ok {
			h.handleFrame(frame)
		}
	}
}

// handleFrame checks the vendor header and dispatches one command. Frames
// failing the header or their fixed length are dropped without a response.
func (h *Handler) handleFrame(frame []byte) {
	if len(frame) < getInfoLen {
		return
	}
	if frame[1] != ManufacturerID1 || frame[2] != ManufacturerID2 || frame[3] != DeviceID {
		return
	}
	switch frame[4] {
	case CmdGetInfo:
		h.getInfo(frame)
	case CmdGetMessage:
		h.getMessage(frame)
	case CmdSetMessage:
		h.setMessage(frame)
	default:
		h.log.Debug("unknown SysEx command", contracts.Uint8("command", frame[4]))
	}
}

// getInfo replies with the switch count and protocol version.
func (h *Handler) getInfo(frame []byte) {
	if len(frame) != getInfoLen {
		return
	}
	h.reply([]byte{
		StartByte, ManufacturerID1, ManufacturerID2, DeviceID, CmdGetInfo,
		h.store.SwitchCount(), ProtocolVersion, EndByte,
	})
}

// getMessage replies with the action list bound to one event slot.
// Out-of-range requests are silently ignored.
func (h *Handler) getMessage(frame []byte) {
	if len(frame) != getMessageLen {
		return
	}
	sw, ev := frame[5], frame[6]
	if ev > uint8(contracts.Release) {
		return
	}
	actions, ok := h.store.Actions(contracts.EventKey{Switch: sw, Edge: contracts.Edge(ev)})
	if !ok {
		return
	}
	// Active clamps the stored count to the array; the frame budget clamps
	// further so the reply never exceeds 9 framing bytes plus 4 per action.
	active := actions.Active()
	if limit := (BufferSize - setMessageMin) / actionLen; len(active) > limit {
		active = active[:limit]
	}
	out := make([]byte, 0, setMessageMin+len(active)*actionLen)
	out = append(out, StartByte, ManufacturerID1, ManufacturerID2, DeviceID, CmdGetMessage,
		sw, ev, uint8(len(active)))
	for _, a := range active {
		out = append(out, byte(a.Kind), a.Channel, a.Param1, a.Param2)
	}
	out = append(out, EndByte)
	h.reply(out)
}

// setMessage replaces one event slot's action list and persists the config.
// Actions decode into a scratch list and commit only when every one of them
// validates, so an error reply always means the store is untouched. The
// acknowledgement reflects the flash outcome: a failed persist replies with
// the error status even though the new list is resident.
func (h *Handler) setMessage(frame []byte) {
	if len(frame) < setMessageMin {
		return
	}
	sw, ev, count := frame[5], frame[6], frame[7]
	key := contracts.EventKey{Switch: sw, Edge: contracts.Edge(ev)}
	if ev > uint8(contracts.Release) || sw >= h.store.SwitchCount() ||
		count > contracts.MaxActionsPerEvent ||
		len(frame) < setMessageMin+int(count)*actionLen {
		h.replyStatus(SetStatusError)
		return
	}

	var list contracts.EventActions
	list.Count = count
	for i := 0; i < int(count); i++ {
		base := 8 + i*actionLen
		a := contracts.Action{
			Kind:    contracts.ActionKind(frame[base]),
			Channel: frame[base+1] & 0x0F,
			Param1:  frame[base+2] & 0x7F,
			Param2:  frame[base+3] & 0x7F,
		}
		if !a.Valid() {
			h.replyStatus(SetStatusError)
			return
		}
		list.Actions[i] = a
	}

	if err := h.store.SetActions(key, list); err != nil {
		h.log.Warn("SET_MESSAGE rejected", contracts.Err(err))
		h.replyStatus(SetStatusError)
		return
	}
	if err := h.store.Persist(); err != nil {
		h.log.Error("SET_MESSAGE persist failed", contracts.Err(err))
		h.replyStatus(SetStatusError)
		return
	}
	h.log.Info("event reconfigured",
		contracts.Uint8("switch", sw),
		contracts.String("edge", contracts.Edge(ev).String()),
		contracts.Uint8("actions", count))
	h.replyStatus(SetStatusOK)
}

func (h *Handler) replyStatus(status byte) {
	h.reply([]byte{
		StartByte, ManufacturerID1, ManufacturerID2, DeviceID, CmdSetMessage,
		status, EndByte,
	})
}

func (h *Handler) reply(frame []byte) {
	if n := h.transport.Write(frame); n != len(frame) {
		h.log.Warn("short SysEx reply", contracts.Int("wrote", n), contracts.Int("want", len(frame)))
		return
	}
	if h.onActivity != nil {
		h.onActivity()
	}
}
