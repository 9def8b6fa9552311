package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumDeterministic(t *testing.T) {
	cfg := DefaultConfig(2)
	first := ChecksumOf(&cfg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ChecksumOf(&cfg))
	}
}

func TestChecksumSeesEveryByte(t *testing.T) {
	cfg := DefaultConfig(2)
	base := checksumOfImage(Marshal(&cfg))

	img := Marshal(&cfg)
	for pos := 0; pos < checksumOffset; pos++ {
		img[pos] ^= 0x01
		assert.NotEqual(t, base, checksumOfImage(img), "bit flip at byte %d went unnoticed", pos)
		img[pos] ^= 0x01
	}
}

func TestChecksumIgnoresChecksumField(t *testing.T) {
	cfg := DefaultConfig(2)
	a := ChecksumOf(&cfg)
	cfg.Checksum = 0xDEADBEEF
	assert.Equal(t, a, ChecksumOf(&cfg))
}

func TestChecksumDiffersAcrossConfigs(t *testing.T) {
	a := DefaultConfig(2)
	b := DefaultConfig(3)
	assert.NotEqual(t, ChecksumOf(&a), ChecksumOf(&b))
}
