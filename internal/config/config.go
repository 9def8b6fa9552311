// Package config implements the persistent device configuration: the typed
// per-switch action table, its checksummed flash image, and the store that
// owns the single resident copy.
package config

import "github.com/leandrodaf/footswitch/sdk/contracts"

// Magic is the sentinel that marks a flash region as holding a config image.
const Magic uint32 = 0x4D494449

// DeviceConfig is the single persisted aggregate. Event slots exist for all
// MaxSwitches regardless of how many switches are configured, so the flash
// image size never changes.
type DeviceConfig struct {
	Magic       uint32
	SwitchCount uint8
	Events      [2 * contracts.MaxSwitches]contracts.EventActions
	Checksum    uint32
}

func slotIndex(key contracts.EventKey) int {
	return int(key.Switch)*2 + int(key.Edge)
}

// keyValid reports whether key addresses a meaningful slot for this config.
func (c *DeviceConfig) keyValid(key contracts.EventKey) bool {
	return key.Switch < c.SwitchCount && key.Edge <= contracts.Release
}

// EventFor returns the action list bound to key, or nil if key is out of
// range for the configured switch count.
func (c *DeviceConfig) EventFor(key contracts.EventKey) *contracts.EventActions {
	if !c.keyValid(key) {
		return nil
	}
	return &c.Events[slotIndex(key)]
}

// DefaultConfig builds the deterministic baseline: switch i sends
// ControlChange(channel 0, controller i mod 128) with value 127 on press and
// value 0 on release.
func DefaultConfig(switchCount uint8) DeviceConfig {
	if switchCount > contracts.MaxSwitches {
		switchCount = contracts.MaxSwitches
	}
	cfg := DeviceConfig{
		Magic:       Magic,
		SwitchCount: switchCount,
	}
	for i := uint8(0); i < switchCount; i++ {
		controller := i % 128
		press := cfg.EventFor(contracts.EventKey{Switch: i, Edge: contracts.Press})
		press.Count = 1
		press.Actions[0] = contracts.Action{
			Kind:    contracts.KindControlChange,
			Channel: 0,
			Param1:  controller,
			Param2:  127,
		}
		release := cfg.EventFor(contracts.EventKey{Switch: i, Edge: contracts.Release})
		release.Count = 1
		release.Actions[0] = contracts.Action{
			Kind:    contracts.KindControlChange,
			Channel: 0,
			Param1:  controller,
			Param2:  0,
		}
	}
	return cfg
}
