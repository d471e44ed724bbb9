package uhash

import (
	"math/bits"

	"github.com/universalhash/uhash/types"
)

// LeadingZeroBits counts zero bits of digest from byte 0, most significant
// bit first.
func LeadingZeroBits(digest types.Hash) (n uint32) {
	for _, b := range digest {
		if b != 0 {
			return n + uint32(bits.LeadingZeros8(b))
		}
		n += 8
	}
	return n
}

// MeetsDifficulty reports whether digest has at least zeroBits leading zero
// bits. Zero bits is trivially satisfied; more than 256 is unsatisfiable.
func MeetsDifficulty(digest types.Hash, zeroBits uint32) bool {
	if zeroBits == 0 {
		return true
	}
	if zeroBits > types.HashSize*8 {
		return false
	}
	return LeadingZeroBits(digest) >= zeroBits
}
