// A bench run of the controller against simulated hardware: boot from blank
// flash, press a switch, reconfigure it over SysEx, press it again.
package main

import (
	"fmt"

	"github.com/leandrodaf/footswitch/internal/logger"
	"github.com/leandrodaf/footswitch/internal/storage"
	"github.com/leandrodaf/footswitch/internal/transport"
	"github.com/leandrodaf/footswitch/sdk/contracts"
	"github.com/leandrodaf/footswitch/sdk/footswitch"
)

// bench simulates the clock, the switch pins and the LED.
type bench struct {
	nowMS  uint32
	levels map[contracts.Pin]bool
	ledOn  bool
}

func (b *bench) NowMS() uint32 { return b.nowMS }

func (b *bench) ReadPin(p contracts.Pin) bool {
	level, ok := b.levels[p]
	if !ok {
		return true // pull-up: idle reads high
	}
	return level
}

func (b *bench) SetLED(on bool) { b.ledOn = on }

func main() {
	log := logger.NewDevelopmentLogger()

	tr := transport.NewLoopback()
	flash := storage.NewMemFlash(512*1024, 4096)
	hw := &bench{nowMS: 100, levels: map[contracts.Pin]bool{}}

	ctrl, err := footswitch.NewController(contracts.Hardware{
		Transport: tr,
		Storage:   flash,
		Pins:      hw,
		Clock:     hw,
		LED:       hw,
	},
		contracts.WithLogger(log),
		contracts.WithSwitchPins(2, 3),
	)
	if err != nil {
		log.Error("controller init failed", contracts.Err(err))
		return
	}
	fmt.Println("switches:", ctrl.SwitchCount())

	// Press switch 0 (active low) and let the debouncer commit it.
	hw.levels[2] = false
	ctrl.Tick()
	fmt.Printf("press sent:   %X\n", tr.TakeSent())

	hw.nowMS += 25
	hw.levels[2] = true
	ctrl.Tick()
	fmt.Printf("release sent: %X\n", tr.TakeSent())

	// Rebind switch 0 press to Note On C4 over SysEx.
	tr.Push(0xF0, 0x00, 0x7D, 0x01, 0x03,
		0x00,                   // switch 0
		0x00,                   // press
		0x01,                   // one action
		0x03, 0x00, 0x3C, 0x64, // note, ch 0, C4, velocity 100
		0xF7)
	ctrl.Tick()
	fmt.Printf("set reply:    %X\n", tr.TakeSent())

	hw.nowMS += 25
	hw.levels[2] = false
	ctrl.Tick()
	fmt.Printf("press sent:   %X\n", tr.TakeSent())
}
