package uhash

const (
	// NumChains independent memory-hard chains per hash
	NumChains = 4

	// ScratchpadSize 512 KiB scratchpad per chain
	ScratchpadSize = 512 * 1024

	// BlockSize unit of scratchpad access and primitive state width
	BlockSize = 64

	NumBlocks = ScratchpadSize / BlockSize

	// NumRounds mixing rounds of the memory-hard loop
	NumRounds = 12288

	// MinInputSize header may be empty, nonce may not
	MinInputSize = NonceSize

	// NonceSize trailing little-endian nonce
	NonceSize = 8
)

const (
	// goldenRatio 2^64 / phi, used to decorrelate per-chain seeds
	goldenRatio = 0x9E3779B97F4A7C15

	// addressMixer odd multiplier for the scratchpad address formula
	addressMixer = 0x517CC1B727220A95
)
