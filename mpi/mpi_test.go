package mpi_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johgrolux/micro25519-go/mpi"
)

const testLen = 8

func randWords(r *rand.Rand, length int) []mpi.Word {
	w := make([]mpi.Word, length)
	for i := range w {
		w[i] = r.Uint32()
	}
	return w
}

// toBig treats w as an unsigned little-endian integer, for cross-checking
// against the stdlib's arbitrary-precision oracle.
func toBig(w []mpi.Word) *big.Int {
	n := new(big.Int)
	for i := len(w) - 1; i >= 0; i-- {
		n.Lsh(n, mpi.WSize)
		n.Or(n, big.NewInt(int64(w[i])))
	}
	return n
}

func fromBig(n *big.Int, length int) []mpi.Word {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(length*mpi.WSize))
	n = new(big.Int).Mod(n, mask)

	w := make([]mpi.Word, length)
	m := new(big.Int).Set(n)
	mod := big.NewInt(1 << 32)
	for i := 0; i < length; i++ {
		word := new(big.Int)
		word.Mod(m, mod)
		w[i] = mpi.Word(word.Uint64())
		m.Rsh(m, mpi.WSize)
	}
	return w
}

func TestAddAgainstBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		a := randWords(r, testLen)
		b := randWords(r, testLen)

		got := make([]mpi.Word, testLen)
		carry := mpi.Add(got, a, b, testLen)

		want := new(big.Int).Add(toBig(a), toBig(b))
		wantCarry := 0
		mod := new(big.Int).Lsh(big.NewInt(1), testLen*mpi.WSize)
		if want.Cmp(mod) >= 0 {
			wantCarry = 1
			want.Sub(want, mod)
		}

		assert.Equal(t, wantCarry, carry)
		assert.Equal(t, fromBig(want, testLen), got)
	}
}

func TestSubAgainstBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		a := randWords(r, testLen)
		b := randWords(r, testLen)

		got := make([]mpi.Word, testLen)
		borrow := mpi.Sub(got, a, b, testLen)

		diff := new(big.Int).Sub(toBig(a), toBig(b))
		wantBorrow := 0
		if diff.Sign() < 0 {
			wantBorrow = 1
		}

		assert.Equal(t, wantBorrow, borrow)
		assert.Equal(t, fromBig(diff, testLen), got)
	}
}

func TestCAddMasksOffWhenConditionIsZero(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	a := randWords(r, testLen)
	b := randWords(r, testLen)

	got := make([]mpi.Word, testLen)
	mpi.CAdd(got, a, b, 0, testLen)
	assert.Equal(t, a, got)

	mpi.CAdd(got, a, b, 1, testLen)
	want := make([]mpi.Word, testLen)
	mpi.Add(want, a, b, testLen)
	assert.Equal(t, want, got)
}

func TestMulAgainstBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(4))

	for i := 0; i < 100; i++ {
		a := randWords(r, testLen)
		b := randWords(r, testLen)

		got := make([]mpi.Word, 2*testLen)
		mpi.Mul(got, a, b, testLen)

		want := new(big.Int).Mul(toBig(a), toBig(b))
		assert.Equal(t, fromBig(want, 2*testLen), got)
	}
}

func TestShrHalvesAndReportsLSB(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		a := randWords(r, testLen)
		got := make([]mpi.Word, testLen)
		lsb := mpi.Shr(got, a, testLen)

		want := new(big.Int).Rsh(toBig(a), 1)
		assert.Equal(t, int(a[0]&1), lsb)
		assert.Equal(t, fromBig(want, testLen), got)
	}
}

func TestCmpMatchesBigIntSign(t *testing.T) {
	r := rand.New(rand.NewSource(6))

	for i := 0; i < 200; i++ {
		a := randWords(r, testLen)
		b := randWords(r, testLen)

		got := mpi.Cmp(a, b, testLen)
		want := toBig(a).Cmp(toBig(b))
		if want > 0 {
			want = 1
		} else if want < 0 {
			want = -1
		}
		assert.Equal(t, want, got)
	}

	a := randWords(r, testLen)
	assert.Equal(t, 0, mpi.Cmp(a, a, testLen))
}

func TestCmpWAgainstSingleWord(t *testing.T) {
	zero := make([]mpi.Word, testLen)
	assert.Equal(t, 0, mpi.CmpW(zero, 0, testLen))
	assert.Equal(t, -1, mpi.CmpW(zero, 1, testLen))

	one := make([]mpi.Word, testLen)
	one[0] = 1
	assert.Equal(t, 0, mpi.CmpW(one, 1, testLen))
	assert.Equal(t, 1, mpi.CmpW(one, 0, testLen))

	big := make([]mpi.Word, testLen)
	big[1] = 1
	assert.Equal(t, 1, mpi.CmpW(big, 0xFFFFFFFF, testLen))
}

func TestSetWAndCopy(t *testing.T) {
	r := make([]mpi.Word, testLen)
	mpi.SetW(r, 42, testLen)
	assert.Equal(t, mpi.Word(42), r[0])
	for _, w := range r[1:] {
		assert.Zero(t, w)
	}

	dst := make([]mpi.Word, testLen)
	mpi.Copy(dst, r, testLen)
	assert.Equal(t, r, dst)
}

func TestHexRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a := randWords(r, testLen)

	s := mpi.ToHex(a, testLen)
	got := make([]mpi.Word, testLen)
	require.NoError(t, mpi.FromHex(got, s, testLen))
	assert.Equal(t, a, got)
}

func TestFromHexRejectsMalformedInput(t *testing.T) {
	dst := make([]mpi.Word, testLen)
	assert.ErrorIs(t, mpi.FromHex(dst, "not hex", testLen), mpi.ErrMalformedHex)
	assert.ErrorIs(t, mpi.FromHex(dst, "", testLen), mpi.ErrMalformedHex)
}

func TestFromHexZeroPadsShortStrings(t *testing.T) {
	dst := make([]mpi.Word, testLen)
	require.NoError(t, mpi.FromHex(dst, "0x1", testLen))
	assert.Equal(t, mpi.Word(1), dst[0])
	for _, w := range dst[1:] {
		assert.Zero(t, w)
	}
}
