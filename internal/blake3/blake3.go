// Package blake3 implements the raw BLAKE3 compression function.
//
// Standard hashing surfaces are served by lukechampine.com/blake3; this
// package exists because chained compression calls need the full 16-word
// output with caller-controlled chaining values, which no tree-hashing API
// exposes.
package blake3

import "math/bits"

const BlockSize = 64

const (
	FlagChunkStart = 1 << iota
	FlagChunkEnd
	FlagParent
	FlagRoot
)

// IV initialization constants, shared with SHA-256
var IV = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var msgPermutation = [16]uint8{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8}

func g(state *[16]uint32, a, b, c, d int, mx, my uint32) {
	state[a] = state[a] + state[b] + mx
	state[d] = bits.RotateLeft32(state[d]^state[a], -16)
	state[c] = state[c] + state[d]
	state[b] = bits.RotateLeft32(state[b]^state[c], -12)
	state[a] = state[a] + state[b] + my
	state[d] = bits.RotateLeft32(state[d]^state[a], -8)
	state[c] = state[c] + state[d]
	state[b] = bits.RotateLeft32(state[b]^state[c], -7)
}

func round(state, m *[16]uint32) {
	// columns
	g(state, 0, 4, 8, 12, m[0], m[1])
	g(state, 1, 5, 9, 13, m[2], m[3])
	g(state, 2, 6, 10, 14, m[4], m[5])
	g(state, 3, 7, 11, 15, m[6], m[7])

	// diagonals
	g(state, 0, 5, 10, 15, m[8], m[9])
	g(state, 1, 6, 11, 12, m[10], m[11])
	g(state, 2, 7, 8, 13, m[12], m[13])
	g(state, 3, 4, 9, 14, m[14], m[15])
}

func permute(m *[16]uint32) {
	var permuted [16]uint32
	for i := range permuted {
		permuted[i] = m[msgPermutation[i]]
	}
	*m = permuted
}

// Compress runs the BLAKE3 compression function and returns the full
// 16-word output. cv and block are not modified.
func Compress(cv *[8]uint32, block *[16]uint32, counter uint64, blockLen, flags uint32) (out [16]uint32) {
	state := [16]uint32{
		cv[0], cv[1], cv[2], cv[3],
		cv[4], cv[5], cv[6], cv[7],
		IV[0], IV[1], IV[2], IV[3],
		uint32(counter), uint32(counter >> 32), blockLen, flags,
	}

	m := *block

	round(&state, &m) // round 1
	permute(&m)
	round(&state, &m) // round 2
	permute(&m)
	round(&state, &m) // round 3
	permute(&m)
	round(&state, &m) // round 4
	permute(&m)
	round(&state, &m) // round 5
	permute(&m)
	round(&state, &m) // round 6
	permute(&m)
	round(&state, &m) // round 7

	for i := 0; i < 8; i++ {
		state[i] ^= state[i+8]
		state[i+8] ^= cv[i]
	}

	return state
}
