package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rig struct {
	nowMS     uint32
	connected bool
	ledOn     bool
	writes    int
}

func (r *rig) NowMS() uint32 { return r.nowMS }

func (r *rig) SetLED(on bool) {
	r.ledOn = on
	r.writes++
}

func newIndicator(r *rig) *Indicator {
	return New(r, r, func() bool { return r.connected }, 250, 3)
}

func TestIdleMirrorsConnection(t *testing.T) {
	r := &rig{}
	ind := newIndicator(r)

	ind.Update()
	assert.False(t, r.ledOn)

	r.connected = true
	ind.Update()
	assert.True(t, r.ledOn)
}

func TestBlinkBurstTogglesAndFinishes(t *testing.T) {
	r := &rig{connected: false, nowMS: 500}
	ind := newIndicator(r)

	ind.Trigger()
	ind.Update()
	assert.True(t, r.ledOn, "burst starts in the on phase")
	assert.True(t, ind.Blinking())

	// 3 blinks = 6 toggles at 125ms half-periods.
	var seen []bool
	for i := 0; i < 6; i++ {
		r.nowMS += 125
		ind.Update()
		seen = append(seen, r.ledOn)
	}
	assert.Equal(t, []bool{false, true, false, true, false, true}, seen)
	assert.False(t, ind.Blinking())

	// Back to mirroring the (disconnected) transport.
	ind.Update()
	assert.False(t, r.ledOn)
}

func TestBlinkHoldsPhaseInsideHalfPeriod(t *testing.T) {
	r := &rig{nowMS: 100}
	ind := newIndicator(r)

	ind.Trigger()
	for i := 0; i < 12; i++ {
		r.nowMS += 10 // 120ms total, still inside the first half-period
		ind.Update()
		assert.True(t, r.ledOn)
	}
}

func TestZeroBlinkCountStaysOnIdleMirror(t *testing.T) {
	r := &rig{connected: true, nowMS: 100}
	ind := New(r, r, func() bool { return r.connected }, 250, 0)

	ind.Trigger()
	assert.False(t, ind.Blinking())

	for i := 0; i < 8; i++ {
		r.nowMS += 125
		ind.Update()
		assert.True(t, r.ledOn)
	}
}

func TestRetriggerRestartsBurst(t *testing.T) {
	r := &rig{nowMS: 100}
	ind := newIndicator(r)

	ind.Trigger()
	r.nowMS += 125
	ind.Update() // first toggle: off
	assert.False(t, r.ledOn)

	// Re-trigger mid-burst: counter and phase reset rather than extend.
	ind.Trigger()
	ind.Update()
	assert.True(t, r.ledOn)

	var toggles int
	for i := 0; i < 6; i++ {
		r.nowMS += 125
		ind.Update()
		toggles++
	}
	assert.Equal(t, 6, toggles)
	assert.False(t, ind.Blinking(), "a full burst runs after the restart")
}
