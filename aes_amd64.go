//go:build amd64 && !purego

package uhash

import "golang.org/x/sys/cpu"

var hardwareAES = cpu.X86.HasAES

//go:nosplit
//go:noescape
func aes_compress_internal(state, block *[8]uint64)

//go:nosplit
func aes_compress(state, block *[8]uint64) {
	if hardwareAES {
		aes_compress_internal(state, block)
		return
	}
	aes_compress_generic(state, block)
}
