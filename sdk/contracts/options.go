package contracts

// ControllerOptions defines the configuration options for a foot-switch
// controller.
type ControllerOptions struct {
	Logger        Logger   // Logger for lifecycle and protocol events.
	LogLevel      LogLevel // Level of logging to use.
	SwitchPins    []Pin    // Pin table, one entry per switch; fixed at boot.
	CableNumber   uint8    // USB-MIDI virtual cable, 0-15.
	FlashOffset   uint32   // Byte offset of the config region in storage.
	DebounceMS    uint32   // Minimum stable interval before a switch edge commits.
	BlinkPeriodMS uint32   // Full on/off period of one activity blink.
	BlinkCount    uint8    // Number of blinks per activity trigger.
}

// Option is a function that modifies ControllerOptions.
type Option func(*ControllerOptions)

// WithLogger sets the logger for the controller.
func WithLogger(l Logger) Option {
	return func(opts *ControllerOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the controller.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ControllerOptions) {
		opts.LogLevel = level
	}
}

// WithSwitchPins sets the switch pin table. The number of switches the device
// exposes is the length of the table, capped at MaxSwitches.
func WithSwitchPins(pins ...Pin) Option {
	return func(opts *ControllerOptions) {
		opts.SwitchPins = pins
	}
}

// WithCableNumber sets the USB-MIDI virtual cable number.
func WithCableNumber(cable uint8) Option {
	return func(opts *ControllerOptions) {
		opts.CableNumber = cable
	}
}

// WithFlashOffset sets where in storage the configuration image lives. The
// offset must be sector aligned.
func WithFlashOffset(offset uint32) Option {
	return func(opts *ControllerOptions) {
		opts.FlashOffset = offset
	}
}

// WithDebounceWindow sets the debounce window in milliseconds.
func WithDebounceWindow(ms uint32) Option {
	return func(opts *ControllerOptions) {
		opts.DebounceMS = ms
	}
}

// WithBlink sets the activity blink period and repeat count.
func WithBlink(periodMS uint32, count uint8) Option {
	return func(opts *ControllerOptions) {
		opts.BlinkPeriodMS = periodMS
		opts.BlinkCount = count
	}
}
