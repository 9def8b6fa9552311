package config

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/leandrodaf/footswitch/sdk/contracts"
)

// Flash image layout, little endian:
//
//	offset size  field
//	0      4     magic
//	4      1     switch count
//	5      3     reserved
//	8      1312  32 event slots × (count + 10 × [kind ch p1 p2])
//	1320   4     checksum over bytes 0..1319
const (
	slotSize       = 1 + 4*contracts.MaxActionsPerEvent
	eventsOffset   = 8
	checksumOffset = eventsOffset + 2*contracts.MaxSwitches*slotSize

	// ImageSize is the fixed size of the on-flash configuration image.
	ImageSize = checksumOffset + 4
)

// ErrShortImage is returned when unmarshaling a buffer smaller than ImageSize.
var ErrShortImage = errors.New("config: image too short")

// Marshal serializes cfg into its fixed flash image. The checksum field is
// written as-is; callers that want a consistent image set it first.
func Marshal(cfg *DeviceConfig) []byte {
	img := make([]byte, ImageSize)
	binary.LittleEndian.PutUint32(img[0:], cfg.Magic)
	img[4] = cfg.SwitchCount
	pos := eventsOffset
	for s := range cfg.Events {
		ev := &cfg.Events[s]
		img[pos] = ev.Count
		pos++
		for a := range ev.Actions {
			act := &ev.Actions[a]
			img[pos] = byte(act.Kind)
			img[pos+1] = act.Channel
			img[pos+2] = act.Param1
			img[pos+3] = act.Param2
			pos += 4
		}
	}
	binary.LittleEndian.PutUint32(img[checksumOffset:], cfg.Checksum)
	return img
}

// Unmarshal decodes a flash image. It only checks the buffer size; magic and
// checksum validation belong to the caller so that load failures can be told
// apart.
func Unmarshal(img []byte) (DeviceConfig, error) {
	var cfg DeviceConfig
	if len(img) < ImageSize {
		return cfg, fmt.Errorf("%w: %d bytes", ErrShortImage, len(img))
	}
	cfg.Magic = binary.LittleEndian.Uint32(img[0:])
	cfg.SwitchCount = img[4]
	pos := eventsOffset
	for s := range cfg.Events {
		ev := &cfg.Events[s]
		ev.Count = img[pos]
		pos++
		for a := range ev.Actions {
			ev.Actions[a] = contracts.Action{
				Kind:    contracts.ActionKind(img[pos]),
				Channel: img[pos+1],
				Param1:  img[pos+2],
				Param2:  img[pos+3],
			}
			pos += 4
		}
	}
	cfg.Checksum = binary.LittleEndian.Uint32(img[checksumOffset:])
	return cfg, nil
}
