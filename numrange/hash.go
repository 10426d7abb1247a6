package numrange

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash is consistent with Equals: -0 and +0 hash alike.
func (r Range) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(normalizeZero(r.lower)))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(normalizeZero(r.upper)))
	return xxhash.Sum64(buf[:])
}

func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
