package uhash

import (
	"encoding/binary"
	"math/bits"

	"github.com/universalhash/uhash/internal/blake3"
	"github.com/universalhash/uhash/internal/sha256"
)

// primitive selector values, (nonce + chain + round + 1) mod 3
const (
	primAES = iota
	primSHA256
	primBLAKE3
)

// sha256_compress mixes block into state through one SHA-256 compression
// call. The chaining value is the first 32 state bytes read as big-endian
// words; the message is the block. The compression output replaces the first
// half of the state and is xored into the second half so the full 64 bytes
// stay nonce-dependent.
func sha256_compress(state, block *[8]uint64) {
	var cv [8]uint32
	for i := 0; i < 4; i++ {
		cv[2*i] = bits.ReverseBytes32(uint32(state[i]))
		cv[2*i+1] = bits.ReverseBytes32(uint32(state[i] >> 32))
	}

	var msg [sha256.BlockSize]byte
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint64(msg[i*8:], block[i])
	}

	sha256.Compress(&cv, &msg)

	for i := 0; i < 4; i++ {
		w := uint64(bits.ReverseBytes32(cv[2*i])) | uint64(bits.ReverseBytes32(cv[2*i+1]))<<32
		state[i] = w
		state[i+4] ^= w
	}
}

// blake3_compress mixes block into state through one BLAKE3 compression
// call: chaining value = first 32 state bytes as little-endian words, block
// words little-endian, counter 0, block length 64, no flags. The full
// 16-word output becomes the new state.
func blake3_compress(state, block *[8]uint64) {
	var cv [8]uint32
	for i := 0; i < 4; i++ {
		cv[2*i] = uint32(state[i])
		cv[2*i+1] = uint32(state[i] >> 32)
	}

	var m [16]uint32
	for i := 0; i < 8; i++ {
		m[2*i] = uint32(block[i])
		m[2*i+1] = uint32(block[i] >> 32)
	}

	out := blake3.Compress(&cv, &m, 0, blake3.BlockSize, 0)

	for i := 0; i < 8; i++ {
		state[i] = uint64(out[2*i]) | uint64(out[2*i+1])<<32
	}
}
