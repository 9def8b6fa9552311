package debounce

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandrodaf/footswitch/sdk/contracts"
)

// rig scripts pin levels and the millisecond clock.
type rig struct {
	nowMS  uint32
	levels map[contracts.Pin]bool
}

func newRig() *rig {
	return &rig{nowMS: 1000, levels: map[contracts.Pin]bool{}}
}

func (r *rig) NowMS() uint32 { return r.nowMS }

func (r *rig) ReadPin(p contracts.Pin) bool {
	level, ok := r.levels[p]
	if !ok {
		return true // pull-up idle
	}
	return level
}

func collect(events *[]contracts.EventKey) func(contracts.EventKey) {
	return func(key contracts.EventKey) { *events = append(*events, key) }
}

func TestPressAndReleaseEdges(t *testing.T) {
	r := newRig()
	var events []contracts.EventKey
	d := New(r, r, []contracts.Pin{2}, 20, collect(&events))

	r.levels[2] = false // active low: pressed
	d.Poll()
	r.nowMS += 30
	r.levels[2] = true
	d.Poll()

	assert.Equal(t, []contracts.EventKey{
		{Switch: 0, Edge: contracts.Press},
		{Switch: 0, Edge: contracts.Release},
	}, events)
	assert.False(t, d.Pressed(0))
}

func TestBounceInsideWindowIsIgnored(t *testing.T) {
	r := newRig()
	var events []contracts.EventKey
	d := New(r, r, []contracts.Pin{2}, 20, collect(&events))

	r.levels[2] = false
	d.Poll() // commits press at t=1000

	// Contact bounce: rapid flapping inside the 20ms window.
	for i := 0; i < 10; i++ {
		r.nowMS += 1
		r.levels[2] = i%2 == 0
		d.Poll()
	}

	assert.Len(t, events, 1, "two raw transitions under 20ms apart commit once")
	assert.True(t, d.Pressed(0))
}

func TestTransitionsOutsideWindowBothCommit(t *testing.T) {
	r := newRig()
	var events []contracts.EventKey
	d := New(r, r, []contracts.Pin{2}, 20, collect(&events))

	r.levels[2] = false
	d.Poll()
	r.nowMS += 20 // exactly the window re-arms
	r.levels[2] = true
	d.Poll()

	assert.Len(t, events, 2)
}

func TestSwitchTimersAreIndependent(t *testing.T) {
	r := newRig()
	var events []contracts.EventKey
	d := New(r, r, []contracts.Pin{2, 3}, 20, collect(&events))

	r.levels[2] = false
	d.Poll() // switch 0 press, its window starts

	// Switch 1 presses 5ms later; switch 0's window must not block it.
	r.nowMS += 5
	r.levels[3] = false
	d.Poll()

	assert.Equal(t, []contracts.EventKey{
		{Switch: 0, Edge: contracts.Press},
		{Switch: 1, Edge: contracts.Press},
	}, events)
}

func TestWrapSafeElapsedTime(t *testing.T) {
	r := newRig()
	var events []contracts.EventKey
	d := New(r, r, []contracts.Pin{2}, 20, collect(&events))

	r.nowMS = 0xFFFFFFF0
	r.levels[2] = false
	d.Poll()

	r.nowMS = 30 // wrapped; elapsed is 62ms
	r.levels[2] = true
	d.Poll()

	assert.Len(t, events, 2)
}

func TestStableLevelNeverDispatches(t *testing.T) {
	r := newRig()
	var events []contracts.EventKey
	d := New(r, r, []contracts.Pin{2}, 20, collect(&events))

	for i := 0; i < 100; i++ {
		r.nowMS += 10
		d.Poll()
	}
	assert.Empty(t, events)
}
