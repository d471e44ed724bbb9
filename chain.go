package uhash

import (
	"encoding/binary"
	"math/bits"

	"github.com/universalhash/uhash/utils"

	"lukechampine.com/blake3"
)

// derive_seed fills seed with the first 64 XOF bytes of
// BLAKE3(header || LE64(nonce XOR chain*goldenRatio)).
func derive_seed(seed *[8]uint64, header []byte, nonce, chain uint64) {
	var tweak [NonceSize]byte
	binary.LittleEndian.PutUint64(tweak[:], nonce^(chain*goldenRatio))

	h := blake3.New(BlockSize, nil)
	_, _ = utils.WriteNoEscape(h, header)
	_, _ = utils.WriteNoEscape(h, tweak[:])

	var buf [BlockSize]byte
	_ = utils.SumNoEscape(h, buf[:0])

	for i := range seed {
		seed[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
}

// select_primitive wrapping sum mod 3: 0 AES, 1 SHA-256, 2 BLAKE3
func select_primitive(nonce, chain, round uint64) uint64 {
	return (nonce + chain + round + 1) % 3
}

// mix_address data-dependent scratchpad block index for a round
func mix_address(s0, s1, round uint64) uint64 {
	a := s0 ^ s1 ^ bits.RotateLeft64(round, 13) ^ (round * addressMixer)
	return a & (NumBlocks - 1)
}

// run executes one full chain: seed derivation, scratchpad fill, and the
// memory-hard mixing loop. The chain's final state is left in cs.state.
func (cs *chainState) run(header []byte, nonce, chain uint64) {
	derive_seed(&cs.seed, header, nonce, chain)

	// scratchpad init, self-keyed AES feedback from the seed
	cs.state = cs.seed
	for i := 0; i < len(cs.scratchpad); i += 8 {
		aes_compress(&cs.state, &cs.state)
		copy(cs.scratchpad[i:i+8], cs.state[:])
	}
	cs.state = cs.seed

	// memory-hard loop
	for round := uint64(0); round < NumRounds; round++ {
		prim := select_primitive(nonce, chain, round)

		idx := mix_address(cs.state[0], cs.state[1], round) * 8

		copy(cs.block[:], cs.scratchpad[idx:idx+8])

		switch prim {
		case primAES:
			aes_compress(&cs.state, &cs.block)
		case primSHA256:
			sha256_compress(&cs.state, &cs.block)
		case primBLAKE3:
			blake3_compress(&cs.state, &cs.block)
		}

		copy(cs.scratchpad[idx:idx+8], cs.state[:])
	}
}
