//go:build !(amd64 || arm64) || purego

package uhash

var hardwareAES = false

func aes_compress(state, block *[8]uint64) {
	aes_compress_generic(state, block)
}
