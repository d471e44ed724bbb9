package uhash

import (
	"golang.org/x/sys/cpu"
)

// Caps hardware kernels selected at runtime. AES mirrors the mixing-round
// dispatch; AVX2 and AVX512 report the features the BLAKE3 library picks its
// vectorized kernels from. The pipeline output is identical either way.
type Caps struct {
	AES    bool `json:"aes"`
	AVX2   bool `json:"avx2"`
	AVX512 bool `json:"avx512"`
}

func Capabilities() Caps {
	return Caps{
		AES:    hardwareAES,
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F,
	}
}
