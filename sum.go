package uhash

import (
	"encoding/binary"
	"errors"

	"github.com/universalhash/uhash/types"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/blake3"
)

// ErrInvalidInput input carries no nonce
var ErrInvalidInput = errors.New("uhash: input shorter than 8 bytes")

// Hash computes the UniversalHash v4 digest of input. The trailing 8 bytes
// are the little-endian nonce, everything before them is the header (which
// may be empty). Each of the four chains derives a 64-byte seed from the
// header and a chain-tweaked nonce, fills its scratchpad by AES feedback,
// then runs 12288 rounds of data-dependent reads mixed through a
// round-selected primitive. The xor of the four final chain states is
// folded through SHA-256 then BLAKE3 into the digest.
//
// The digest does not depend on the orchestration mode.
func (h *Hasher) Hash(input []byte) (types.Hash, error) {
	if len(input) < MinInputSize {
		return types.ZeroHash, ErrInvalidInput
	}

	header := input[:len(input)-NonceSize]
	nonce := binary.LittleEndian.Uint64(input[len(input)-NonceSize:])

	if h.parallel {
		var eg errgroup.Group
		for c := range h.chains {
			c := c
			eg.Go(func() error {
				h.chains[c].run(header, nonce, uint64(c))
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for c := range h.chains {
			h.chains[c].run(header, nonce, uint64(c))
		}
	}

	return h.finalize(), nil
}

func (h *Hasher) finalize() types.Hash {
	var x [8]uint64
	for c := range h.chains {
		for i := range x {
			x[i] ^= h.chains[c].state[i]
		}
	}

	var buf [BlockSize]byte
	for i := range x {
		binary.LittleEndian.PutUint64(buf[i*8:], x[i])
	}

	inner := sha256simd.Sum256(buf[:])
	return blake3.Sum256(inner[:])
}

// Sum one-shot convenience over a throwaway parallel Hasher.
func Sum(input []byte) (types.Hash, error) {
	return NewHasher().Hash(input)
}
