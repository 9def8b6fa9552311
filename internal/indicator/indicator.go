// Package indicator drives the activity LED: a short blink burst on MIDI
// traffic, otherwise a mirror of the transport connection state.
package indicator

import "github.com/leandrodaf/footswitch/sdk/contracts"

// Indicator is a non-blocking blink state machine advanced by Update.
type Indicator struct {
	led       contracts.LED
	clock     contracts.Clock
	connected func() bool

	periodMS   uint32
	blinkCount uint8

	blinking     bool
	ledOn        bool
	remaining    uint8
	lastToggleMS uint32
}

// New builds an indicator. connected supplies the idle state of the LED.
func New(led contracts.LED, clock contracts.Clock, connected func() bool, periodMS uint32, blinkCount uint8) *Indicator {
	return &Indicator{
		led:        led,
		clock:      clock,
		connected:  connected,
		periodMS:   periodMS,
		blinkCount: blinkCount,
	}
}

// Trigger (re-)starts a blink burst. Overlapping triggers restart the burst,
// counter and phase included, rather than extending it. With a blink count of
// zero the burst is a no-op and the LED stays on the idle mirror.
func (ind *Indicator) Trigger() {
	if ind.blinkCount == 0 {
		return
	}
	ind.blinking = true
	ind.remaining = ind.blinkCount * 2 // one count per on/off half-period
	ind.ledOn = true
	ind.lastToggleMS = ind.clock.NowMS()
}

// Update advances the state machine one step and writes the LED output.
func (ind *Indicator) Update() {
	if !ind.blinking {
		ind.led.SetLED(ind.connected())
		return
	}
	now := ind.clock.NowMS()
	if now-ind.lastToggleMS >= ind.periodMS/2 {
		ind.ledOn = !ind.ledOn
		ind.lastToggleMS = now
		ind.remaining--
		if ind.remaining == 0 {
			ind.blinking = false
		}
	}
	ind.led.SetLED(ind.ledOn)
}

// Blinking reports whether a burst is in progress.
func (ind *Indicator) Blinking() bool {
	return ind.blinking
}
