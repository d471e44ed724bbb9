package uhash

import (
	"github.com/universalhash/uhash/types"

	"github.com/floatdrop/lru"
	"lukechampine.com/blake3"
)

// Cache memoizes digests of recently verified inputs. Verifiers re-check
// the same (header, nonce) pairs across peers; a full hash touches 2 MiB,
// the lookup key is a single BLAKE3 pass over the input.
//
// Same thread-safety contract as the wrapped Hasher: not safe for
// concurrent use.
type Cache struct {
	hasher *Hasher
	lru    *lru.LRU[types.Hash, types.Hash]
}

// NewCache wraps hasher with an LRU of up to size digests.
func NewCache(hasher *Hasher, size int) *Cache {
	return &Cache{
		hasher: hasher,
		lru:    lru.New[types.Hash, types.Hash](size),
	}
}

// Hash returns the same digest Hasher.Hash would, serving repeated inputs
// from the cache.
func (c *Cache) Hash(input []byte) (types.Hash, error) {
	key := types.Hash(blake3.Sum256(input))

	if digest := c.lru.Get(key); digest != nil {
		return *digest, nil
	}

	digest, err := c.hasher.Hash(input)
	if err != nil {
		return types.ZeroHash, err
	}

	c.lru.Set(key, digest)
	return digest, nil
}
