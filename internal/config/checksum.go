package config

const (
	crcPoly = 0xEDB88320
	crcSeed = 0x12345678
)

// crcUpdate folds data into hash with the reflected 0xEDB88320 polynomial.
// This is deliberately not hash/crc32: the device format uses seed 0x12345678
// and no final inversion, and the value must match bytes already burned into
// deployed units.
func crcUpdate(hash uint32, data []byte) uint32 {
	for _, b := range data {
		hash ^= uint32(b)
		for i := 0; i < 8; i++ {
			if hash&1 != 0 {
				hash = hash>>1 ^ crcPoly
			} else {
				hash >>= 1
			}
		}
	}
	return hash
}

// ChecksumOf computes the integrity hash over every image byte except the
// checksum field itself.
func ChecksumOf(cfg *DeviceConfig) uint32 {
	img := Marshal(cfg)
	return crcUpdate(crcSeed, img[:checksumOffset])
}

// checksumOfImage recomputes the hash straight from a raw image.
func checksumOfImage(img []byte) uint32 {
	return crcUpdate(crcSeed, img[:checksumOffset])
}
