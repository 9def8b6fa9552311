// Package footswitch wires the configuration store, the SysEx protocol
// handler, the switch debouncer and the activity indicator into one
// cooperatively scheduled controller over consumed hardware services.
package footswitch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/leandrodaf/footswitch/internal/config"
	"github.com/leandrodaf/footswitch/internal/debounce"
	"github.com/leandrodaf/footswitch/internal/indicator"
	"github.com/leandrodaf/footswitch/internal/sysex"
	"github.com/leandrodaf/footswitch/internal/usbmidi"
	"github.com/leandrodaf/footswitch/sdk/contracts"
)

// Hardware wiring errors.
var (
	ErrNilTransport    = errors.New("footswitch: nil transport")
	ErrNilStorage      = errors.New("footswitch: nil storage")
	ErrNilPins         = errors.New("footswitch: nil pin reader")
	ErrNilClock        = errors.New("footswitch: nil clock")
	ErrNilLED          = errors.New("footswitch: nil LED")
	ErrTooManySwitches = errors.New("footswitch: pin table exceeds MaxSwitches")
)

// Controller is the single logical thread of control. One goroutine drives
// it: either by calling Tick from the platform's main loop or through Run.
type Controller struct {
	hw  contracts.Hardware
	log contracts.Logger

	store     *config.Store
	handler   *sysex.Handler
	debouncer *debounce.Debouncer
	indicator *indicator.Indicator
	sender    *usbmidi.Sender

	connected bool
	readBuf   [32]byte
}

// NewController validates the hardware, applies option defaults and runs the
// boot sequence: build defaults, load the persisted config, and persist the
// defaults if loading fails. It returns a controller that always holds a
// valid resident configuration.
func NewController(hw contracts.Hardware, opts ...contracts.Option) (*Controller, error) {
	if err := checkHardware(hw); err != nil {
		return nil, err
	}
	options := applyDefaultOptions(opts...)
	if len(options.SwitchPins) > contracts.MaxSwitches {
		return nil, fmt.Errorf("%w: %d pins", ErrTooManySwitches, len(options.SwitchPins))
	}

	c := &Controller{hw: hw, log: options.Logger}
	c.store = config.NewStore(hw.Storage, options.FlashOffset, options.Logger)
	c.store.Boot(uint8(len(options.SwitchPins)))

	c.indicator = indicator.New(hw.LED, hw.Clock, hw.Transport.IsConnected,
		options.BlinkPeriodMS, options.BlinkCount)
	c.sender = usbmidi.NewSender(hw.Transport, options.CableNumber,
		options.Logger, c.indicator.Trigger)
	c.handler = sysex.NewHandler(c.store, hw.Transport, options.Logger,
		c.indicator.Trigger)
	c.debouncer = debounce.New(hw.Pins, hw.Clock, options.SwitchPins,
		options.DebounceMS, c.dispatchEvent)

	c.log.Info("controller ready",
		contracts.Int("switches", len(options.SwitchPins)),
		contracts.Uint32("flash_offset", options.FlashOffset))
	return c, nil
}

func checkHardware(hw contracts.Hardware) error {
	var errs error
	if hw.Transport == nil {
		errs = multierr.Append(errs, ErrNilTransport)
	}
	if hw.Storage == nil {
		errs = multierr.Append(errs, ErrNilStorage)
	}
	if hw.Pins == nil {
		errs = multierr.Append(errs, ErrNilPins)
	}
	if hw.Clock == nil {
		errs = multierr.Append(errs, ErrNilClock)
	}
	if hw.LED == nil {
		errs = multierr.Append(errs, ErrNilLED)
	}
	return errs
}

// dispatchEvent sends the action list configured for a debounced edge.
func (c *Controller) dispatchEvent(key contracts.EventKey) {
	c.log.Debug("switch event",
		contracts.Uint8("switch", key.Switch),
		contracts.String("edge", key.Edge.String()))
	if actions, ok := c.store.Actions(key); ok {
		c.sender.SendList(actions)
	}
}

// Tick runs one iteration of the control loop: drain the transport through
// the SysEx handler, poll the switches, advance the indicator. Everything
// runs synchronously; a SysEx command completes before the next byte is
// consumed.
func (c *Controller) Tick() {
	c.pollTransport()
	c.debouncer.Poll()
	c.indicator.Update()
}

func (c *Controller) pollTransport() {
	if conn := c.hw.Transport.IsConnected(); conn != c.connected {
		c.connected = conn
		c.log.Info("transport connection changed", contracts.Bool("connected", conn))
	}
	for c.hw.Transport.BytesAvailable() > 0 {
		n := c.hw.Transport.Read(c.readBuf[:])
		if n == 0 {
			break
		}
		c.indicator.Trigger()
		c.handler.Feed(c.readBuf[:n])
	}
}

// Run drives Tick until ctx is done. Hosts and simulations use this; firmware
// targets call Tick straight from their main loop instead.
func (c *Controller) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

// SwitchCount returns the number of configured switches.
func (c *Controller) SwitchCount() uint8 {
	return c.store.SwitchCount()
}

// Actions returns a copy of the action list bound to key.
func (c *Controller) Actions(key contracts.EventKey) (contracts.EventActions, bool) {
	return c.store.Actions(key)
}
