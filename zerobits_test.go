package uhash

import (
	"testing"

	"github.com/universalhash/uhash/types"
)

func TestLeadingZeroBits(t *testing.T) {
	for _, v := range []struct {
		hash string
		bits uint32
	}{
		{"ff00000000000000000000000000000000000000000000000000000000000000", 0},
		{"8000000000000000000000000000000000000000000000000000000000000000", 0},
		{"4000000000000000000000000000000000000000000000000000000000000000", 1},
		{"0100000000000000000000000000000000000000000000000000000000000000", 7},
		{"0080000000000000000000000000000000000000000000000000000000000000", 8},
		{"0000007f000000000000000000000000000000000000000000000000000000ff", 25},
		{"0000000000000000000000000000000000000000000000000000000000000000", 256},
		{"0000000000000000000000000000000000000000000000000000000000000001", 255},
	} {
		if got := LeadingZeroBits(types.MustHashFromString(v.hash)); got != v.bits {
			t.Errorf("%s: expected %d, got %d", v.hash, v.bits, got)
		}
	}
}

func TestMeetsDifficulty(t *testing.T) {
	boundary := types.MustHashFromString("0000007f000000000000000000000000000000000000000000000000000000ff")
	hardest := types.MustHashFromString("ff00000000000000000000000000000000000000000000000000000000000000")

	// zero bits is trivially satisfied
	if !MeetsDifficulty(hardest, 0) {
		t.Error("0 bits must always pass")
	}

	// more than 256 bits is unsatisfiable even for the zero digest
	if MeetsDifficulty(types.ZeroHash, 257) {
		t.Error("257 bits must never pass")
	}
	if !MeetsDifficulty(types.ZeroHash, 256) {
		t.Error("zero digest must pass 256 bits")
	}

	if MeetsDifficulty(hardest, 1) {
		t.Error("0xff-leading digest must fail 1 bit")
	}

	if !MeetsDifficulty(boundary, 25) {
		t.Error("boundary digest must pass 25 bits")
	}
	if MeetsDifficulty(boundary, 26) {
		t.Error("boundary digest must fail 26 bits")
	}
}

// the bit predicate and the 128-bit target arithmetic agree on thresholds
// expressible as both
func TestMeetsDifficulty_TargetConvergence(t *testing.T) {
	for _, hash := range []types.Hash{
		types.MustHashFromString("0000007f000000000000000000000000000000000000000000000000000000ff"),
		types.MustHashFromString("39477efda0debce95541b5ef5f31b90e73c05e3f885f835faa20cc9ff71b6b60"),
		types.MustHashFromString("00000000000000000000000000000000000000000000000000000000000000ff"),
	} {
		for bits := uint32(1); bits <= 64; bits++ {
			// leading zero bits count from byte 0, the most significant end of
			// the little-endian integer is byte 31
			var reversed types.Hash
			for i := range reversed {
				reversed[i] = hash[types.HashSize-1-i]
			}

			byBits := MeetsDifficulty(hash, bits)
			byTarget := types.DifficultyFromLeadingZeroBits(bits).CheckPoW(reversed)
			if byBits != byTarget {
				t.Fatalf("%s at %d bits: predicate %v, target check %v", hash, bits, byBits, byTarget)
			}
		}
	}
}
