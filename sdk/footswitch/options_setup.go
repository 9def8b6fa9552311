package footswitch

import (
	"github.com/leandrodaf/footswitch/internal/logger"
	"github.com/leandrodaf/footswitch/sdk/contracts"
)

// Hardware defaults matching the reference unit: two TRS switches on pins 2
// (tip) and 3 (ring), config image at 256 KiB.
const (
	defaultFlashOffset   = 256 * 1024
	defaultDebounceMS    = 20
	defaultBlinkPeriodMS = 250
	defaultBlinkCount    = 3
)

// applyDefaultOptions sets default values for ControllerOptions if not
// explicitly provided.
func applyDefaultOptions(opts ...contracts.Option) contracts.ControllerOptions {
	options := &contracts.ControllerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewNopLogger() // Targets may have no console at all.
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if len(options.SwitchPins) == 0 {
		options.SwitchPins = []contracts.Pin{2, 3}
	}
	if options.DebounceMS == 0 {
		options.DebounceMS = defaultDebounceMS
	}
	if options.BlinkPeriodMS == 0 {
		options.BlinkPeriodMS = defaultBlinkPeriodMS
	}
	if options.BlinkCount == 0 {
		options.BlinkCount = defaultBlinkCount
	}
	if options.FlashOffset == 0 {
		options.FlashOffset = defaultFlashOffset
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options
}
