package gfp

import "encoding/binary"

// ToBytes encodes a as 32 little-endian bytes, word 0 first. This is the
// wire/test-vector-adjacent encoding used to hand an Element to an
// independent implementation (see internal/edwards25519) for cross-checking,
// and to curve25519-based callers that expect a flat byte string rather
// than a word array.
func ToBytes(a *Element) [32]byte {
	var out [32]byte
	for i, w := range a {
		binary.LittleEndian.PutUint32(out[4*i:4*i+4], w)
	}
	return out
}

// FromBytes decodes 32 little-endian bytes into an Element. The result may
// be unreduced (in [0, 2^256-1]) if b encodes a value >= p; call Fred to
// canonicalize.
func FromBytes(b [32]byte) Element {
	var a Element
	for i := range a {
		a[i] = binary.LittleEndian.Uint32(b[4*i : 4*i+4])
	}
	return a
}
