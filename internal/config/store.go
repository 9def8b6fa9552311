package config

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/leandrodaf/footswitch/sdk/contracts"
)

// Sentinel load/persist failures. None of them is fatal: callers fall back to
// defaults or keep running on the in-memory config.
var (
	ErrBadMagic    = errors.New("config: bad magic")
	ErrBadChecksum = errors.New("config: checksum mismatch")
	ErrBadImage    = errors.New("config: image fails validation")
	ErrVerify      = errors.New("config: flash verify failed")
	ErrBadKey      = errors.New("config: event key out of range")
	ErrBadActions  = errors.New("config: invalid action list")
	ErrSwitchCount = errors.New("config: switch count mismatch")
)

// Store owns the single resident DeviceConfig and is the only code path that
// touches persistent storage. All mutation goes through SetActions + Persist.
type Store struct {
	storage contracts.Storage
	offset  uint32
	log     contracts.Logger
	cfg     DeviceConfig
}

// NewStore creates a store over the given flash region. offset must be
// sector aligned.
func NewStore(storage contracts.Storage, offset uint32, log contracts.Logger) *Store {
	return &Store{storage: storage, offset: offset, log: log}
}

// Boot establishes the resident config: build defaults, try to load a
// persisted image, and if that fails persist the defaults. After Boot the
// device always holds a valid, checksummed config; a persist failure here is
// logged and the device runs on the unpersisted defaults.
func (s *Store) Boot(switchCount uint8) {
	s.cfg = DefaultConfig(switchCount)
	err := s.Load()
	if err == nil && s.cfg.SwitchCount == switchCount {
		s.log.Info("config loaded from flash",
			contracts.Uint8("switches", s.cfg.SwitchCount))
		return
	}
	if err == nil {
		err = fmt.Errorf("%w: image has %d switches, device has %d",
			ErrSwitchCount, s.cfg.SwitchCount, switchCount)
	}
	s.log.Warn("falling back to default config", contracts.Err(err))
	s.cfg = DefaultConfig(switchCount)
	if perr := s.Persist(); perr != nil {
		s.log.Error("persisting default config failed", contracts.Err(perr))
	}
}

// Load reads the flash region and replaces the resident config if the image
// carries the right magic and a matching checksum.
func (s *Store) Load() error {
	img := make([]byte, ImageSize)
	if err := s.storage.Read(s.offset, img); err != nil {
		return fmt.Errorf("config: read: %w", err)
	}
	cfg, err := Unmarshal(img)
	if err != nil {
		return err
	}
	if cfg.Magic != Magic {
		return fmt.Errorf("%w: got 0x%08X", ErrBadMagic, cfg.Magic)
	}
	if want := checksumOfImage(img); cfg.Checksum != want {
		return fmt.Errorf("%w: stored 0x%08X, computed 0x%08X",
			ErrBadChecksum, cfg.Checksum, want)
	}
	if err := validateImage(&cfg); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// validateImage checks the semantic bounds a checksum cannot: a foreign or
// tampered image can carry a valid hash over out-of-range counts, and those
// must never become resident.
func validateImage(cfg *DeviceConfig) error {
	if cfg.SwitchCount > contracts.MaxSwitches {
		return fmt.Errorf("%w: switch count %d", ErrBadImage, cfg.SwitchCount)
	}
	for i := range cfg.Events {
		if count := cfg.Events[i].Count; count > contracts.MaxActionsPerEvent {
			return fmt.Errorf("%w: slot %d holds %d actions", ErrBadImage, i, count)
		}
	}
	return nil
}

// Persist writes the whole config image to flash (erase, program, read-back
// verify). It never writes partially: the image always covers the full
// region so the sector-granular erase/program stays atomic. No retry; the
// error is surfaced to the caller.
func (s *Store) Persist() error {
	s.cfg.Checksum = ChecksumOf(&s.cfg)
	img := Marshal(&s.cfg)

	eraseLen := sectorAlign(ImageSize, s.storage.SectorSize())
	if err := s.storage.Erase(s.offset, eraseLen); err != nil {
		return fmt.Errorf("config: erase: %w", err)
	}
	if err := s.storage.Program(s.offset, img); err != nil {
		return fmt.Errorf("config: program: %w", err)
	}
	return s.verify()
}

// verify reloads the region and re-checks magic and checksum independently,
// so a verify error names everything that is wrong with the written image.
func (s *Store) verify() error {
	img := make([]byte, ImageSize)
	if err := s.storage.Read(s.offset, img); err != nil {
		return fmt.Errorf("config: verify read: %w", err)
	}
	var errs error
	if got := binary.LittleEndian.Uint32(img[0:]); got != Magic {
		errs = multierr.Append(errs, fmt.Errorf("%w: got 0x%08X", ErrBadMagic, got))
	}
	stored := binary.LittleEndian.Uint32(img[checksumOffset:])
	if want := checksumOfImage(img); stored != want {
		errs = multierr.Append(errs, fmt.Errorf("%w: stored 0x%08X, computed 0x%08X",
			ErrBadChecksum, stored, want))
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrVerify, errs)
	}
	return nil
}

// SwitchCount returns the number of switches the resident config covers.
func (s *Store) SwitchCount() uint8 {
	return s.cfg.SwitchCount
}

// Actions returns a copy of the action list bound to key.
func (s *Store) Actions(key contracts.EventKey) (contracts.EventActions, bool) {
	ev := s.cfg.EventFor(key)
	if ev == nil {
		return contracts.EventActions{}, false
	}
	return *ev, true
}

// SetActions replaces the action list bound to key in memory. The caller is
// responsible for calling Persist afterwards; splitting the two keeps the
// commit atomic from the protocol handler's point of view.
func (s *Store) SetActions(key contracts.EventKey, ev contracts.EventActions) error {
	slot := s.cfg.EventFor(key)
	if slot == nil {
		return ErrBadKey
	}
	if ev.Count > contracts.MaxActionsPerEvent {
		return fmt.Errorf("%w: count %d", ErrBadActions, ev.Count)
	}
	for i, a := range ev.Active() {
		if !a.Valid() {
			return fmt.Errorf("%w: action %d", ErrBadActions, i)
		}
	}
	*slot = ev
	return nil
}

// Snapshot returns a copy of the resident config.
func (s *Store) Snapshot() DeviceConfig {
	return s.cfg
}

func sectorAlign(n, sector uint32) uint32 {
	if sector == 0 {
		return n
	}
	return (n + sector - 1) / sector * sector
}
