package gfp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/curve25519"

	"github.com/johgrolux/micro25519-go/gfp"
)

// a24 = (486662 - 2) / 4, the Montgomery-curve constant used by the X25519
// ladder below.
const a24 = 121665

// montgomeryLadder re-implements the RFC 7748 X25519 ladder entirely in
// terms of gfp.Element operations. It exists only to give gfp.Add/Sub/Mul/
// Sqr/Mul32/Inv a realistic scalar-multiplication workload to cross-check
// against curve25519.ScalarMult — spec.md explicitly excludes this module
// from shipping a ladder of its own, so the workload only ever appears here,
// in a test file.
func montgomeryLadder(scalar *[32]byte, u gfp.Element) gfp.Element {
	clamped := *scalar
	clamped[0] &= 248
	clamped[31] &= 127
	clamped[31] |= 64

	x1 := u
	var x2, z3 gfp.Element
	x2[0] = 1
	x3 := u
	z3[0] = 1
	var z2 gfp.Element

	swap := 0
	for t := 254; t >= 0; t-- {
		bit := int((clamped[t/8] >> uint(t%8)) & 1)
		swap ^= bit
		if swap == 1 {
			x2, x3 = x3, x2
			z2, z3 = z3, z2
		}
		swap = bit

		var a, aa, b, bb, e, c, d, da, cb gfp.Element
		gfp.Add(&a, &x2, &z2)
		gfp.Sqr(&aa, &a)
		gfp.Sub(&b, &x2, &z2)
		gfp.Sqr(&bb, &b)
		gfp.Sub(&e, &aa, &bb)
		gfp.Add(&c, &x3, &z3)
		gfp.Sub(&d, &x3, &z3)
		gfp.Mul(&da, &d, &a)
		gfp.Mul(&cb, &c, &b)

		var sum, dif, difSq gfp.Element
		gfp.Add(&sum, &da, &cb)
		gfp.Sqr(&x3, &sum)
		gfp.Sub(&dif, &da, &cb)
		gfp.Sqr(&difSq, &dif)
		gfp.Mul(&z3, &x1, &difSq)

		gfp.Mul(&x2, &aa, &bb)
		var a24e, sumAAe gfp.Element
		gfp.Mul32(&a24e, &e, a24)
		gfp.Add(&sumAAe, &aa, &a24e)
		gfp.Mul(&z2, &e, &sumAAe)
	}
	if swap == 1 {
		x2, x3 = x3, x2
		z2, z3 = z3, z2
	}
	_ = x3
	_ = z3

	var zInv, result gfp.Element
	if err := gfp.Inv(&zInv, &z2); err != nil {
		panic(err)
	}
	gfp.Mul(&result, &x2, &zInv)

	var reduced gfp.Element
	gfp.Fred(&reduced, &result)
	return reduced
}

func TestMontgomeryLadderAgreesWithCurve25519ScalarMult(t *testing.T) {
	r := rand.New(rand.NewSource(30))

	for i := 0; i < 20; i++ {
		var scalar, base [32]byte
		for j := range scalar {
			scalar[j] = byte(r.Uint32())
			base[j] = byte(r.Uint32())
		}

		var want [32]byte
		curve25519.ScalarMult(&want, &scalar, &base)

		// RFC 7748 decodeUCoordinate (and the pinned x/crypto's feFromBytes)
		// masks the base point's top bit before use; match it so x1 starts
		// from the same u-coordinate the library actually ladders from.
		base[31] &= 127
		u := gfp.FromBytes(base)
		got := montgomeryLadder(&scalar, u)
		gotBytes := gfp.ToBytes(&got)

		assert.Equal(t, want, gotBytes)
	}
}
