// Package uhash implements the UniversalHash v4 memory-hard proof-of-work
// function: four independent 512 KiB scratchpad chains mixed through AES,
// SHA-256 and BLAKE3 compression primitives, folded into a 32-byte digest.
package uhash

import (
	"golang.org/x/sys/cpu"
)

// chainState per-chain working memory. Scratchpad and state are kept as
// little-endian uint64 limbs so the address formula reads limbs directly.
type chainState struct {
	scratchpad [ScratchpadSize / 8]uint64

	seed  [8]uint64
	state [8]uint64
	block [8]uint64

	_ cpu.CacheLinePad // prevents false sharing between chains in parallel mode
}

// Hasher UniversalHash state, to reuse between hashes. Holds ~2 MiB of
// scratchpads. Not thread-safe; distinct instances are fully independent.
type Hasher struct {
	chains [NumChains]chainState

	parallel bool
}

// NewHasher returns a Hasher that runs its chains on separate goroutines.
func NewHasher() *Hasher {
	return &Hasher{parallel: true}
}

// NewSequentialHasher returns a Hasher that runs its chains one after
// another on the calling goroutine. Output is bit-identical to the parallel
// mode.
func NewSequentialHasher() *Hasher {
	return &Hasher{}
}
