package types

import (
	"encoding/binary"
	"errors"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/universalhash/uhash/utils"

	fasthex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

// Difficulty is a 128-bit mining target. A digest d satisfies difficulty D
// when d, read as a little-endian 256-bit integer, multiplied by D stays
// below 2^256.
//
//nolint:recvcheck
type Difficulty uint128.Uint128

var ZeroDifficulty Difficulty
var MaxDifficulty = Difficulty(uint128.Max)

func NewDifficulty(lo, hi uint64) Difficulty {
	return Difficulty(uint128.New(lo, hi))
}

func DifficultyFrom64(v uint64) Difficulty {
	return Difficulty(uint128.From64(v))
}

// DifficultyFromLeadingZeroBits maps a leading-zero-bit threshold to the
// equivalent target, 2^bits.
func DifficultyFromLeadingZeroBits(zeroBits uint32) Difficulty {
	if zeroBits >= 128 {
		return MaxDifficulty
	}
	return Difficulty(uint128.From64(1).Lsh(uint(zeroBits)))
}

func DifficultyFromString(s string) (Difficulty, error) {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		return ZeroDifficulty, err
	}
	if len(buf) != 16 {
		return ZeroDifficulty, errors.New("wrong size")
	}
	return NewDifficulty(binary.BigEndian.Uint64(buf[8:]), binary.BigEndian.Uint64(buf[:8])), nil
}

func MustDifficultyFromString(s string) Difficulty {
	if d, err := DifficultyFromString(s); err != nil {
		panic(err)
	} else {
		return d
	}
}

var pow256 = new(big.Int).Lsh(big.NewInt(1), 256)

// DifficultyFromPoW returns floor(2^256 / digest), saturated at
// MaxDifficulty. This is the highest difficulty the digest satisfies, except
// for a digest that is a power of two above 2^128: there the product is
// exactly 2^256 and CheckPoW rejects the returned value.
func DifficultyFromPoW(powHash Hash) Difficulty {
	if powHash == ZeroHash {
		return MaxDifficulty
	}

	// digest is little-endian, big.Int wants big-endian
	var buf [HashSize]byte
	for i := range buf {
		buf[i] = powHash[HashSize-1-i]
	}

	q := new(big.Int).Div(pow256, new(big.Int).SetBytes(buf[:]))
	if q.BitLen() > 128 {
		return MaxDifficulty
	}
	return Difficulty(uint128.FromBig(q))
}

func (d Difficulty) uint128() uint128.Uint128 {
	return uint128.Uint128(d)
}

func (d Difficulty) IsZero() bool {
	return d.Lo == 0 && d.Hi == 0
}

func (d Difficulty) Equals(v Difficulty) bool {
	return d.Lo == v.Lo && d.Hi == v.Hi
}

func (d Difficulty) Equals64(v uint64) bool {
	return d.Hi == 0 && d.Lo == v
}

func (d Difficulty) Cmp(v Difficulty) int {
	return d.uint128().Cmp(v.uint128())
}

func (d Difficulty) Add(v Difficulty) Difficulty {
	return Difficulty(d.uint128().Add(v.uint128()))
}

func (d Difficulty) Sub(v Difficulty) Difficulty {
	return Difficulty(d.uint128().Sub(v.uint128()))
}

func (d Difficulty) Mul64(v uint64) Difficulty {
	return Difficulty(d.uint128().Mul64(v))
}

func (d Difficulty) Div(v Difficulty) Difficulty {
	return Difficulty(d.uint128().Div(v.uint128()))
}

func (d Difficulty) Uint64() uint64 {
	return d.Lo
}

// CheckPoW reports whether hash, as a little-endian 256-bit integer, times d
// stays below 2^256. Operates on uint128 halves of the digest.
func (d Difficulty) CheckPoW(pow Hash) bool {
	diff := d.uint128()
	lo := uint128.FromBytes(pow[:16])
	hi := uint128.FromBytes(pow[16:])

	// product = (hi*diff)<<128 + lo*diff; it fits in 256 bits when hi*diff
	// fits in 128 bits and adding the top half of lo*diff does not overflow
	hiHi, hiLo := mul128(hi, diff)
	if !hiHi.IsZero() {
		return false
	}
	loHi, _ := mul128(lo, diff)

	sum := loHi.AddWrap(hiLo)
	return sum.Cmp(loHi) >= 0
}

// mul128 full 128x128 -> 256 multiply
func mul128(a, b uint128.Uint128) (hi, lo uint128.Uint128) {
	h00, l00 := bits.Mul64(a.Lo, b.Lo)
	h01, l01 := bits.Mul64(a.Lo, b.Hi)
	h10, l10 := bits.Mul64(a.Hi, b.Lo)
	h11, l11 := bits.Mul64(a.Hi, b.Hi)

	p1, c1 := bits.Add64(h00, l01, 0)
	carry2 := c1
	p1, c1 = bits.Add64(p1, l10, 0)
	carry2 += c1

	p2, c2 := bits.Add64(h01, h10, 0)
	carry3 := c2
	p2, c2 = bits.Add64(p2, l11, 0)
	carry3 += c2
	p2, c2 = bits.Add64(p2, carry2, 0)
	carry3 += c2

	// the total product is below 2^256, limb 3 cannot overflow
	p3 := h11 + carry3

	return uint128.New(p2, p3), uint128.New(l00, p1)
}

// CheckPoW_Native same check on raw 64-bit limbs, no uint128
func (d Difficulty) CheckPoW_Native(pow Hash) bool {
	h0 := binary.LittleEndian.Uint64(pow[0:8])
	h1 := binary.LittleEndian.Uint64(pow[8:16])
	h2 := binary.LittleEndian.Uint64(pow[16:24])
	h3 := binary.LittleEndian.Uint64(pow[24:32])

	// 256x128 schoolbook product; the proof passes when limbs 4 and 5 of the
	// six-limb result stay zero
	hi0, _ := bits.Mul64(h0, d.Lo)
	hi1a, lo1a := bits.Mul64(h0, d.Hi)
	hi1b, lo1b := bits.Mul64(h1, d.Lo)
	hi2a, lo2a := bits.Mul64(h1, d.Hi)
	hi2b, lo2b := bits.Mul64(h2, d.Lo)
	hi3a, lo3a := bits.Mul64(h2, d.Hi)
	hi3b, lo3b := bits.Mul64(h3, d.Lo)
	hi4, lo4 := bits.Mul64(h3, d.Hi)

	t, c := bits.Add64(hi0, lo1a, 0)
	carry1 := c
	_, c = bits.Add64(t, lo1b, 0)
	carry1 += c

	t, c = bits.Add64(hi1a, hi1b, 0)
	carry2 := c
	t, c = bits.Add64(t, lo2a, 0)
	carry2 += c
	t, c = bits.Add64(t, lo2b, 0)
	carry2 += c
	_, c = bits.Add64(t, carry1, 0)
	carry2 += c

	t, c = bits.Add64(hi2a, hi2b, 0)
	carry3 := c
	t, c = bits.Add64(t, lo3a, 0)
	carry3 += c
	t, c = bits.Add64(t, lo3b, 0)
	carry3 += c
	_, c = bits.Add64(t, carry2, 0)
	carry3 += c

	t, c = bits.Add64(hi3a, hi3b, 0)
	carry4 := c
	t, c = bits.Add64(t, lo4, 0)
	carry4 += c
	t, c = bits.Add64(t, carry3, 0)
	carry4 += c

	return t == 0 && carry4 == 0 && hi4 == 0
}

func (d Difficulty) String() string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], d.Hi)
	binary.BigEndian.PutUint64(buf[8:], d.Lo)
	return fasthex.EncodeToString(buf[:])
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	if d.Hi == 0 {
		return strconv.AppendUint(nil, d.Lo, 10), nil
	}
	return []byte(`"0x` + d.uint128().Big().Text(16) + `"`), nil
}

func (d *Difficulty) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	if b[0] == '"' {
		if len(b) < 2 || b[len(b)-1] != '"' {
			return errors.New("invalid difficulty")
		}
		b = b[1 : len(b)-1]
	}
	if len(b) == 0 {
		return nil
	}

	if len(b) > 2 && b[0] == '0' && (b[1] == 'x' || b[1] == 'X') {
		i, ok := new(big.Int).SetString(string(b[2:]), 16)
		if !ok {
			return errors.New("invalid difficulty")
		}
		if i.Sign() < 0 || i.BitLen() > 128 {
			return errors.New("difficulty out of range")
		}
		*d = Difficulty(uint128.FromBig(i))
		return nil
	}

	v, err := utils.ParseUint64(b)
	if err != nil {
		return err
	}
	*d = DifficultyFrom64(v)
	return nil
}
