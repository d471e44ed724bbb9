package uhash

import (
	"encoding/binary"
	"time"
)

// benchInputSize typical mining input: 60-byte header plus the nonce
const benchInputSize = 60 + NonceSize

// Benchmark hashes iterations consecutive nonces of a fixed mining-shaped
// input on a fresh parallel Hasher and returns the elapsed wall time.
func Benchmark(iterations uint32) time.Duration {
	hasher := NewHasher()

	var input [benchInputSize]byte
	for i := range input {
		input[i] = byte(i)
	}

	start := time.Now()
	for i := uint32(0); i < iterations; i++ {
		binary.LittleEndian.PutUint64(input[benchInputSize-NonceSize:], uint64(i))
		_, _ = hasher.Hash(input[:])
	}
	return time.Since(start)
}

// Hashrate converts a Benchmark result to hashes per second.
func Hashrate(iterations uint32, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(iterations) / elapsed.Seconds()
}
