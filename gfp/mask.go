package gfp

import "github.com/johgrolux/micro25519-go/mpi"

// RandSource supplies the randomness MaskedInv uses to blind its operand.
// The mask only needs to be unpredictable to a timing observer for the
// duration of one inversion, not secret in the long term, so a fast
// non-cryptographic generator is an acceptable implementation.
type RandSource interface {
	Uint32() uint32
}

// MaskedInv computes r = a^-1 mod p like Inv, but hides the operand-
// dependent timing of the underlying binary Extended Euclidean Algorithm
// behind multiplicative masking: a is blinded by an unpredictable nonzero
// field element u before inversion, and the blinding is removed afterward.
//
// Since (a*u)^-1 * u = a^-1 * u^-1 * u = a^-1, inverting the blinded value
// and multiplying the result by u again (not by u^-1) recovers a^-1 without
// ever running the EEA on a itself. The rng's output still reaches Inv's
// timing-variable code path, but its value is unknown to an observer who
// only sees a, so the variable timing no longer leaks anything about a.
func MaskedInv(r, a *Element, rng RandSource) error {
	var u Element
	for {
		fillRandom(&u, rng)
		Fred(&u, &u)
		if mpi.CmpW(u[:], 0, Len) != 0 {
			break
		}
	}

	var blinded Element
	Mul(&blinded, a, &u)

	var blindedInv Element
	if err := Inv(&blindedInv, &blinded); err != nil {
		return err
	}

	Mul(r, &blindedInv, &u)
	return nil
}

func fillRandom(e *Element, rng RandSource) {
	for i := range e {
		e[i] = rng.Uint32()
	}
}
