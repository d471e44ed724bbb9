package blake3

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	stdblake3 "lukechampine.com/blake3"
)

// single-chunk single-block root compression must match full BLAKE3
func compressDigest(msg []byte) [32]byte {
	var block [16]uint32
	var padded [BlockSize]byte
	copy(padded[:], msg)
	for i := range block {
		block[i] = binary.LittleEndian.Uint32(padded[i*4:])
	}

	cv := IV
	out := Compress(&cv, &block, 0, uint32(len(msg)), FlagChunkStart|FlagChunkEnd|FlagRoot)

	var digest [32]byte
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(digest[i*4:], out[i])
	}
	return digest
}

func TestCompress_RootVectors(t *testing.T) {
	// official test vectors for empty and 3-byte inputs
	for _, v := range []struct {
		input  string
		digest string
	}{
		{"", "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
		{"abc", "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85"},
	} {
		want, err := hex.DecodeString(v.digest)
		if err != nil {
			t.Fatal(err)
		}
		digest := compressDigest([]byte(v.input))
		if string(digest[:]) != string(want) {
			t.Errorf("%q: expected %s, got %x", v.input, v.digest, digest)
		}
	}
}

func TestCompress_AgainstLibrary(t *testing.T) {
	// up to one full block the raw compression path and the tree hasher agree
	msg := make([]byte, BlockSize)
	for i := range msg {
		msg[i] = byte(i * 7)
	}

	for _, n := range []int{1, 31, 32, 33, 63, 64} {
		digest := compressDigest(msg[:n])
		if digest != stdblake3.Sum256(msg[:n]) {
			t.Errorf("length %d: mismatch against library digest", n)
		}
	}
}

func TestCompress_FullOutputFeedback(t *testing.T) {
	// the second half of the output depends on the chaining value; chained
	// calls must not be equivalent to restarting from IV
	var block [16]uint32
	for i := range block {
		block[i] = uint32(i) * 0x01010101
	}

	cv := IV
	first := Compress(&cv, &block, 0, BlockSize, 0)

	var chained [8]uint32
	copy(chained[:], first[:8])
	second := Compress(&chained, &block, 0, BlockSize, 0)

	fresh := IV
	restart := Compress(&fresh, &block, 0, BlockSize, 0)

	if second == restart {
		t.Fatal("chained compression ignored the chaining value")
	}
	if first != restart {
		t.Fatal("compression is not deterministic")
	}
}
