package footswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/footswitch/internal/storage"
	"github.com/leandrodaf/footswitch/internal/transport"
	"github.com/leandrodaf/footswitch/sdk/contracts"
)

// bench simulates the pins, clock and LED around a loopback transport and a
// memory flash.
type bench struct {
	nowMS  uint32
	levels map[contracts.Pin]bool
	ledOn  bool
}

func (b *bench) NowMS() uint32 { return b.nowMS }

func (b *bench) ReadPin(p contracts.Pin) bool {
	level, ok := b.levels[p]
	if !ok {
		return true
	}
	return level
}

func (b *bench) SetLED(on bool) { b.ledOn = on }

func newBench() (*Controller, *bench, *transport.Loopback, *storage.MemFlash) {
	tr := transport.NewLoopback()
	flash := storage.NewMemFlash(512*1024, 4096)
	hw := &bench{nowMS: 1000, levels: map[contracts.Pin]bool{}}
	ctrl, err := NewController(contracts.Hardware{
		Transport: tr,
		Storage:   flash,
		Pins:      hw,
		Clock:     hw,
		LED:       hw,
	}, contracts.WithSwitchPins(2, 3))
	if err != nil {
		panic(err)
	}
	return ctrl, hw, tr, flash
}

func TestNewControllerRejectsMissingHardware(t *testing.T) {
	_, err := NewController(contracts.Hardware{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilTransport)
	assert.ErrorIs(t, err, ErrNilStorage)
	assert.ErrorIs(t, err, ErrNilPins)
	assert.ErrorIs(t, err, ErrNilClock)
	assert.ErrorIs(t, err, ErrNilLED)
}

func TestNewControllerRejectsOversizedPinTable(t *testing.T) {
	tr := transport.NewLoopback()
	flash := storage.NewMemFlash(512*1024, 4096)
	hw := &bench{levels: map[contracts.Pin]bool{}}
	pins := make([]contracts.Pin, contracts.MaxSwitches+1)
	for i := range pins {
		pins[i] = contracts.Pin(i)
	}
	_, err := NewController(contracts.Hardware{
		Transport: tr, Storage: flash, Pins: hw, Clock: hw, LED: hw,
	}, contracts.WithSwitchPins(pins...))
	assert.ErrorIs(t, err, ErrTooManySwitches)
}

func TestBootPersistsDefaults(t *testing.T) {
	ctrl, _, _, flash := newBench()
	assert.Equal(t, uint8(2), ctrl.SwitchCount())

	// A second controller over the same flash loads what the first persisted.
	tr := transport.NewLoopback()
	hw := &bench{levels: map[contracts.Pin]bool{}}
	again, err := NewController(contracts.Hardware{
		Transport: tr, Storage: flash, Pins: hw, Clock: hw, LED: hw,
	}, contracts.WithSwitchPins(2, 3))
	require.NoError(t, err)

	actions, ok := again.Actions(contracts.EventKey{Switch: 0, Edge: contracts.Press})
	require.True(t, ok)
	assert.Equal(t, contracts.KindControlChange, actions.Actions[0].Kind)
}

func TestPressSendsDefaultControlChange(t *testing.T) {
	ctrl, hw, tr, _ := newBench()

	hw.levels[2] = false // press switch 0
	ctrl.Tick()
	assert.Equal(t, []byte{0x0B, 0xB0, 0x00, 0x7F}, tr.TakeSent())

	hw.nowMS += 25
	hw.levels[2] = true // release
	ctrl.Tick()
	assert.Equal(t, []byte{0x0B, 0xB0, 0x00, 0x00}, tr.TakeSent())
}

func TestSendStartsBlink(t *testing.T) {
	ctrl, hw, _, _ := newBench()

	ctrl.Tick()
	assert.True(t, hw.ledOn, "idle LED mirrors the connected transport")

	hw.levels[2] = false
	ctrl.Tick()
	assert.True(t, hw.ledOn, "blink burst starts in the on phase")

	hw.nowMS += 125
	ctrl.Tick()
	assert.False(t, hw.ledOn, "first blink toggle turns the LED off")
}

func TestSysExReconfigureEndToEnd(t *testing.T) {
	ctrl, hw, tr, _ := newBench()

	tr.Push(0xF0, 0x00, 0x7D, 0x01, 0x03,
		0x00, 0x00, 0x01,
		0x03, 0x00, 0x3C, 0x64, // note, ch0, C4, vel 100
		0xF7)
	ctrl.Tick()
	assert.Equal(t, []byte{0xF0, 0x00, 0x7D, 0x01, 0x03, 0x00, 0xF7}, tr.TakeSent())

	// The next press emits the new note instead of the default CC.
	hw.nowMS += 25
	hw.levels[2] = false
	ctrl.Tick()
	assert.Equal(t, []byte{0x09, 0x90, 0x3C, 0x64}, tr.TakeSent())
}

func TestGetInfoOverTheLoop(t *testing.T) {
	ctrl, _, tr, _ := newBench()

	tr.Push(0xF0, 0x00, 0x7D, 0x01, 0x01, 0xF7)
	ctrl.Tick()
	assert.Equal(t, []byte{0xF0, 0x00, 0x7D, 0x01, 0x01, 0x02, 0x01, 0xF7}, tr.TakeSent())
}

func TestDisconnectedTransportDimsLED(t *testing.T) {
	ctrl, hw, tr, _ := newBench()

	tr.Connected = false
	ctrl.Tick()
	assert.False(t, hw.ledOn)

	tr.Connected = true
	ctrl.Tick()
	assert.True(t, hw.ledOn)
}
