package gfp

import (
	"github.com/pkg/errors"

	"github.com/johgrolux/micro25519-go/log"
	"github.com/johgrolux/micro25519-go/mpi"
)

// ErrInversionOfZero is returned by Inv when asked to invert the additive
// identity, which has no multiplicative inverse in GF(p).
var ErrInversionOfZero = errors.New("gfp: cannot invert zero")

// Fred fully reduces a to its least non-negative residue modulo p. Every
// leaf operation in arith.go already guarantees a result in [0, 2p-1], so two
// conditional subtractions of p suffice for any externally supplied
// Element, which might arrive as large as 2^256-1.
func Fred(r, a *Element) {
	var p Element
	SetP(&p)

	rbit := mpi.Sub(r[:], a[:], p[:], Len)
	mpi.CAdd(r[:], r[:], p[:], rbit, Len)
	rbit = mpi.Sub(r[:], r[:], p[:], Len)
	mpi.CAdd(r[:], r[:], p[:], rbit, Len)
}

// Cmp compares two (possibly unreduced) field elements after fully reducing
// each: it returns +1 if a > b, -1 if a < b, 0 if a == b, in constant time.
func Cmp(a, b *Element) int {
	var ar, br Element
	Fred(&ar, a)
	Fred(&br, b)
	return mpi.Cmp(ar[:], br[:], Len)
}

// Inv computes r = a^-1 mod p using the binary Extended Euclidean
// Algorithm. It tracks the shrinking length of the two working values (ux,
// vx) in uvlen so that the shift and subtract steps operate only on their
// genuinely non-zero words, which is what makes the algorithm run faster as
// it progresses — at the cost of a data-dependent, non-constant execution
// time. Protect call sites against timing leakage with MaskedInv.
//
// Inv returns ErrInversionOfZero if a is (congruent to) zero; r is left
// unmodified in that case.
func Inv(r, a *Element) error {
	var ux, vx, x1 Element
	x2 := r
	uvlen := Len

	mpi.Copy(ux[:], a[:], Len)
	SetP(&vx)
	mpi.SetW(x1[:], 1, Len)

	for mpi.Cmp(ux[:], vx[:], Len) >= 0 {
		mpi.Sub(ux[:], ux[:], vx[:], Len)
	}
	if mpi.CmpW(ux[:], 0, Len) == 0 {
		return errors.WithStack(ErrInversionOfZero)
	}
	mpi.SetW(x2[:], 0, Len)

	for mpi.CmpW(ux[:], 1, uvlen) != 0 && mpi.CmpW(vx[:], 1, uvlen) != 0 {
		for ux[0]&1 == 0 {
			mpi.Shr(ux[:], ux[:], uvlen)
			Hlv(&x1, &x1)
		}
		for vx[0]&1 == 0 {
			mpi.Shr(vx[:], vx[:], uvlen)
			Hlv(x2, x2)
		}
		// both ux and vx are now odd
		if mpi.Cmp(ux[:], vx[:], uvlen) >= 0 {
			mpi.Sub(ux[:], ux[:], vx[:], uvlen)
			Sub(&x1, &x1, x2)
		} else {
			mpi.Sub(vx[:], vx[:], ux[:], uvlen)
			Sub(x2, x2, &x1)
		}
		if ux[uvlen-1] == 0 && vx[uvlen-1] == 0 {
			uvlen--
			log.Debug().Int("uvlen", uvlen).Msg("gfp: inv shrunk working length")
		}
	}

	if mpi.CmpW(ux[:], 1, Len) == 0 {
		copy(r[:], x1[:])
	}
	return nil
}
