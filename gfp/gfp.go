// Package gfp implements arithmetic in the prime field GF(p), where
// p = 2^255 - 19 is a pseudo-Mersenne prime. An Element is a fixed-length
// array of eight 32-bit words (256 bits), little-endian, word 0 least
// significant.
//
// Every function below accepts operands in the full range [0, 2^256-1]
// (i.e. an Element need not be the least non-negative residue) and produces
// a result in [0, 2p-1]: at most one subtraction of p away from canonical.
// Call Fred to obtain the canonical representative. This mirrors the
// pseudo-Mersenne reduction trick used throughout gfparith.c: rather than a
// long-integer add/subtract followed by a conditional correction loop, the
// reduction is folded into the single carry-propagation loop already
// required by the operation.
package gfp

import "github.com/johgrolux/micro25519-go/mpi"

// Len is the number of 32-bit words in an Element (255 bits rounded up).
const Len = 8

// constC is the c in p = 2^255 - c.
const constC = 19

// Element is a field element: Element[0] is the least-significant word.
type Element [Len]mpi.Word

const (
	all1Mask mpi.Word = ^mpi.Word(0)         // 0xFFFFFFFF
	msb1Mask mpi.Word = 1 << (mpi.WSize - 1) // 0x80000000
	msb0Mask mpi.Word = all1Mask >> 1        // 0x7FFFFFFF
	min4Mask mpi.Word = all1Mask - 3         // 0xFFFFFFFC
)

// zeroWord is a non-constant mpi.Word zero, used to compute 0-constC via
// runtime unsigned wraparound without tripping the compile-time constant
// overflow check.
var zeroWord mpi.Word = 0

// SetP sets r to the prime p = 2^255 - 19.
func SetP(r *Element) {
	r[Len-1] = msb0Mask
	for i := Len - 2; i > 0; i-- {
		r[i] = all1Mask
	}
	r[0] = zeroWord - constC
}

// CmpP compares a (which need not be reduced) against the prime p. It
// returns +1 if a > p, -1 if a < p, 0 if a == p, and runs in constant time
// with respect to a's value.
func CmpP(a *Element) int {
	var lt, gt mpi.Word

	lt = b2w(a[Len-1] < msb0Mask)
	gt = b2w(a[Len-1] > msb0Mask)

	for i := Len - 2; i > 0; i-- {
		lt = (lt << 1) | b2w(a[i] < all1Mask)
		gt = gt << 1
	}
	lt = (lt << 1) | b2w(a[0] < (zeroWord-mpi.Word(constC)))
	gt = (gt << 1) | b2w(a[0] > (zeroWord-mpi.Word(constC)))

	return int(b2w(gt > lt)) - int(b2w(lt > gt))
}

func b2w(b bool) mpi.Word {
	if b {
		return 1
	}
	return 0
}
