package contracts

// Limits of the configuration model. These are wire-format constants shared
// with the flash image and the SysEx protocol; changing them breaks
// compatibility with already-flashed devices.
const (
	// MaxSwitches is the largest number of foot switches a device can expose.
	MaxSwitches = 16
	// MaxActionsPerEvent bounds how many MIDI actions one switch event may emit.
	MaxActionsPerEvent = 10
)

// ActionKind identifies the type of MIDI message an action emits.
type ActionKind uint8

const (
	// KindNone is a valid but inert action; it emits nothing.
	KindNone ActionKind = 0
	// KindControlChange emits a Control Change (param1 = controller, param2 = value).
	KindControlChange ActionKind = 1
	// KindProgramChange emits a Program Change (param1 = program, param2 unused).
	KindProgramChange ActionKind = 2
	// KindNote emits Note On when param2 > 0, Note Off otherwise.
	KindNote ActionKind = 3
)

func (k ActionKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindControlChange:
		return "cc"
	case KindProgramChange:
		return "pc"
	case KindNote:
		return "note"
	}
	return "invalid"
}

// Action describes one MIDI message a switch event sends.
type Action struct {
	Kind    ActionKind // Message type.
	Channel uint8      // MIDI channel, 0-15.
	Param1  uint8      // First data byte, 0-127.
	Param2  uint8      // Second data byte, 0-127.
}

// Valid reports whether every field is independently in range. KindNone with
// in-range fields is valid (and inert).
func (a Action) Valid() bool {
	return a.Kind <= KindNote && a.Channel <= 15 && a.Param1 <= 127 && a.Param2 <= 127
}

// EventActions is the ordered action list bound to one switch event. Entries
// past Count are undefined and must never be sent.
type EventActions struct {
	Count   uint8
	Actions [MaxActionsPerEvent]Action
}

// Active returns the slice of actions that are actually configured.
func (e *EventActions) Active() []Action {
	n := e.Count
	if n > MaxActionsPerEvent {
		n = MaxActionsPerEvent
	}
	return e.Actions[:n]
}

// Edge is the direction of a debounced switch transition.
type Edge uint8

const (
	// Press is the electrical-high-to-low transition (switches are active low).
	Press Edge = 0
	// Release is the low-to-high transition.
	Release Edge = 1
)

func (e Edge) String() string {
	if e == Press {
		return "press"
	}
	return "release"
}

// EventKey addresses one event slot in the device configuration.
type EventKey struct {
	Switch uint8
	Edge   Edge
}
