//go:build darwin && arm64 && !purego

package uhash

// Assume all M1+ have AES
//
// See https://github.com/golang/go/issues/43046
// See https://github.com/golang/go/commit/c15593197453b8bf90fc3a9080ba2afeaf7934ea

var hardwareAES = true

//go:nosplit
//go:noescape
func aes_compress_internal(state, block *[8]uint64)

//go:nosplit
func aes_compress(state, block *[8]uint64) {
	aes_compress_internal(state, block)
}
