// Package debounce polls the switch pins and commits edge transitions once
// the raw level has differed from the debounced level for the full debounce
// window.
package debounce

import "github.com/leandrodaf/footswitch/sdk/contracts"

// switchState is the per-switch debounce record: the committed level and the
// time of the last committed transition.
type switchState struct {
	pressed    bool
	lastEdgeMS uint32
}

// Debouncer owns one timer per switch; switches never block each other.
type Debouncer struct {
	pins     contracts.PinReader
	clock    contracts.Clock
	windowMS uint32
	pinTable []contracts.Pin
	states   []switchState
	dispatch func(contracts.EventKey)
}

// New builds a debouncer over the given pin table. dispatch is invoked
// synchronously for every committed edge.
func New(pins contracts.PinReader, clock contracts.Clock, pinTable []contracts.Pin, windowMS uint32, dispatch func(contracts.EventKey)) *Debouncer {
	return &Debouncer{
		pins:     pins,
		clock:    clock,
		windowMS: windowMS,
		pinTable: pinTable,
		states:   make([]switchState, len(pinTable)),
		dispatch: dispatch,
	}
}

// Poll samples every switch once. A transition commits only when the raw
// level differs from the debounced level and the debounce window has elapsed
// since that switch's last committed edge. Inside the window, bouncing is
// ignored entirely; the switch re-arms when the window elapses.
func (d *Debouncer) Poll() {
	now := d.clock.NowMS()
	for i := range d.states {
		st := &d.states[i]
		pressed := !d.pins.ReadPin(d.pinTable[i]) // active low
		if pressed == st.pressed {
			continue
		}
		if now-st.lastEdgeMS < d.windowMS { // wrap-safe uint32 subtraction
			continue
		}
		st.pressed = pressed
		st.lastEdgeMS = now
		edge := contracts.Release
		if pressed {
			edge = contracts.Press
		}
		d.dispatch(contracts.EventKey{Switch: uint8(i), Edge: edge})
	}
}

// Pressed reports the debounced level of switch i.
func (d *Debouncer) Pressed(i int) bool {
	if i < 0 || i >= len(d.states) {
		return false
	}
	return d.states[i].pressed
}
