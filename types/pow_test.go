package types

import (
	"runtime"
	"testing"
)

// digests the hash pipeline produces for its frozen reference inputs, each
// paired with floor(2^256 / digest), the highest difficulty it satisfies as
// a little-endian integer
var powVectors = []struct {
	name   string
	digest Hash
	exact  Difficulty
}{
	{
		name:   "ZeroNonceOnly",
		digest: MustHashFromString("39477efda0debce95541b5ef5f31b90e73c05e3f885f835faa20cc9ff71b6b60"),
		exact:  DifficultyFrom64(2),
	},
	{
		name:   "NonceOne",
		digest: MustHashFromString("6894f6a3a167f24223b787ec6b48214aac6913be9cf476b54c9ee3b9d756222c"),
		exact:  DifficultyFrom64(5),
	},
	{
		name:   "MiningInput",
		digest: MustHashFromString("32c33b0b824cc05d09186fa3e67dafb5965c55605a2d94cf27a07ebfee524cb8"),
		exact:  DifficultyFrom64(1),
	},
	{
		name:   "SequenceHeaderZeroNonce",
		digest: MustHashFromString("e2988c0dd6938bc8082228f7cb5d3dd0c53542be8070af83000234c3317eda4a"),
		exact:  DifficultyFrom64(3),
	},
	{
		name:   "SequenceHeaderMaxNonce",
		digest: MustHashFromString("8433bc1408a6237600d1e54be99e602aa77dee12287cfd2e07214a346ddf77c6"),
		exact:  DifficultyFrom64(1),
	},
}

func TestDifficultyFromPoW(t *testing.T) {
	for _, v := range powVectors {
		t.Run(v.name, func(t *testing.T) {
			if diff := DifficultyFromPoW(v.digest); !diff.Equals(v.exact) {
				t.Errorf("%s does not equal %s", diff, v.exact)
			}
		})
	}

	if diff := DifficultyFromPoW(ZeroHash); !diff.Equals(MaxDifficulty) {
		t.Errorf("zero digest: expected %s, got %s", MaxDifficulty, diff)
	}
}

var checkPoWImpls = []struct {
	name  string
	check func(Difficulty, Hash) bool
}{
	{"Uint128", Difficulty.CheckPoW},
	{"Native", Difficulty.CheckPoW_Native},
}

// each digest must satisfy exactly its quotient difficulty and nothing above
func TestDifficulty_CheckPoW(t *testing.T) {
	for _, impl := range checkPoWImpls {
		t.Run(impl.name, func(t *testing.T) {
			for _, v := range powVectors {
				if !impl.check(v.exact, v.digest) {
					t.Errorf("%s: does not pass its own difficulty %s", v.name, v.exact)
				}

				above := v.exact.Add(DifficultyFrom64(1))
				if impl.check(above, v.digest) {
					t.Errorf("%s: passes %s above its exact difficulty", v.name, above)
				}

				if impl.check(MaxDifficulty, v.digest) {
					t.Errorf("%s: nonzero digest passes the maximum difficulty", v.name)
				}

				if !impl.check(ZeroDifficulty, v.digest) {
					t.Errorf("%s: zero difficulty must always pass", v.name)
				}
			}
		})
	}
}

func BenchmarkDifficulty_CheckPoW(b *testing.B) {
	digest := powVectors[0].digest
	diff := powVectors[0].exact

	b.Run("Uint128", func(b *testing.B) {
		b.ReportAllocs()
		var result bool
		for i := 0; i < b.N; i++ {
			result = diff.CheckPoW(digest)
		}
		runtime.KeepAlive(result)
	})

	b.Run("Native", func(b *testing.B) {
		b.ReportAllocs()
		var result bool
		for i := 0; i < b.N; i++ {
			result = diff.CheckPoW_Native(digest)
		}
		runtime.KeepAlive(result)
	})
}

func FuzzDifficulty_CheckPoW(f *testing.F) {
	for _, v := range powVectors {
		f.Add(v.digest[:], v.exact.Lo, v.exact.Hi)
	}
	f.Add(ZeroHash[:], uint64(0), uint64(0))
	f.Add(ZeroHash[:], MaxDifficulty.Lo, MaxDifficulty.Hi)

	f.Fuzz(func(t *testing.T, hash []byte, lo, hi uint64) {
		if len(hash) != HashSize {
			t.SkipNow()
		}

		d := NewDifficulty(lo, hi)
		h := Hash(hash)

		result := d.CheckPoW(h)
		if native := d.CheckPoW_Native(h); result != native {
			t.Fatalf("%s diff lo,hi = %d, %d result mismatch: %v vs native %v", h.String(), lo, hi, result, native)
		}
	})
}
