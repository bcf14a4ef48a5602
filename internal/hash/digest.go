// Package hash provides the xxHash64 helpers used for table fingerprints.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest accumulates row shapes and cell bits into a single xxHash64 value.
//
// The zero value is not usable; create one with NewDigest.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteInt adds an integer, typically a row length, to the digest.
func (h *Digest) WriteInt(v int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(v))
	_, _ = h.d.Write(h.buf[:])
}

// WriteFloat adds the IEEE 754 bits of v to the digest.
//
// Every NaN is folded onto the canonical quiet NaN so that missing cells hash
// identically regardless of how they were produced.
func (h *Digest) WriteFloat(v float64) {
	bits := math.Float64bits(v)
	if math.IsNaN(v) {
		bits = math.Float64bits(math.NaN())
	}
	binary.LittleEndian.PutUint64(h.buf[:], bits)
	_, _ = h.d.Write(h.buf[:])
}

// Sum64 returns the current hash.
func (h *Digest) Sum64() uint64 {
	return h.d.Sum64()
}
