package sampling

import (
	"github.com/zeebo/blake3"
)

const seedKeySize = 32

// NewSeededPRNG returns a KeyedPRNG keyed with the blake3 hash of seed.
// Unlike [NewKeyedPRNG], it accepts seed material of arbitrary length,
// e.g. a label or a serialized secret.
func NewSeededPRNG(seed []byte) (*KeyedPRNG, error) {
	hasher := blake3.New()
	hasher.Write(seed)
	key := hasher.Sum(nil)
	return NewKeyedPRNG(key[:seedKeySize])
}
