package uhash

import (
	"unsafe"
)

var te0, te1, te2, te3 = encLut[0], encLut[1], encLut[2], encLut[3]

// soft_aesenc one AES encryption round (SubBytes, ShiftRows, MixColumns,
// AddRoundKey) via T-tables. Matches the AESENC instruction bit for bit.
// Safe when key aliases state: key[i] is read before state[i] is written.
//
//go:nosplit
func soft_aesenc(state *[4]uint32, key *[4]uint32) {

	s0 := state[0]
	s1 := state[1]
	s2 := state[2]
	s3 := state[3]

	state[0] = key[0] ^ te0[uint8(s0)] ^ te1[uint8(s1>>8)] ^ te2[uint8(s2>>16)] ^ te3[uint8(s3>>24)]
	state[1] = key[1] ^ te0[uint8(s1)] ^ te1[uint8(s2>>8)] ^ te2[uint8(s3>>16)] ^ te3[uint8(s0>>24)]
	state[2] = key[2] ^ te0[uint8(s2)] ^ te1[uint8(s3>>8)] ^ te2[uint8(s0>>16)] ^ te3[uint8(s1>>24)]
	state[3] = key[3] ^ te0[uint8(s3)] ^ te1[uint8(s0>>8)] ^ te2[uint8(s1>>16)] ^ te3[uint8(s2>>24)]
}

// aes_compress_generic mixes a 64-byte block into a 64-byte state: four
// independent 128-bit lanes, one encryption round per lane, keyed by the
// matching lane of block. block may alias state.
func aes_compress_generic(state, block *[8]uint64) {
	// #nosec G103 -- 64 bytes reinterpreted as 4 AES lanes
	s := (*[4][4]uint32)(unsafe.Pointer(state))
	// #nosec G103
	k := (*[4][4]uint32)(unsafe.Pointer(block))

	soft_aesenc(&s[0], &k[0])
	soft_aesenc(&s[1], &k[1])
	soft_aesenc(&s[2], &k[2])
	soft_aesenc(&s[3], &k[3])
}
