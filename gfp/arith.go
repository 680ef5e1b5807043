package gfp

import "github.com/johgrolux/micro25519-go/mpi"

// These are the performance-critical field operations: the ones executed in
// the inner loop of a scalar multiplication or the field inversion (Inv).
// Each is a single pass over its operands with the reduction modulo p folded
// directly into the carry-propagation loop, rather than a separate
// long-integer operation followed by a correction step.

const fourXPHi = mpi.DWord(msb0Mask) << 2 // 4*p[Len-1], 0x1FFFFFFFC

// Add computes r = a + b mod p.
func Add(r, a, b *Element) {
	sum := mpi.DWord(a[Len-1]) + mpi.DWord(b[Len-1])
	msw := mpi.Word(sum) & msb0Mask
	sum = mpi.DWord(constC) * mpi.DWord(mpi.Word(sum>>(mpi.WSize-1)))
	// sum is in [0, 3*c]

	for i := 0; i < Len-1; i++ {
		sum += mpi.DWord(a[i]) + mpi.DWord(b[i])
		r[i] = mpi.Word(sum)
		sum >>= mpi.WSize
		// sum is in [0, 2]
	}
	r[Len-1] = msw + mpi.Word(sum)
}

// Sub computes r = a - b mod p.
func Sub(r, a, b *Element) {
	sum := mpi.SDWord(fourXPHi) + mpi.SDWord(a[Len-1]) - mpi.SDWord(b[Len-1])
	msw := mpi.Word(sum) & msb0Mask
	sum = mpi.SDWord(constC) * mpi.SDWord(mpi.Word(sum>>(mpi.WSize-1)))
	sum -= constC << 2
	// sum is in [-3*c, c]

	for i := 0; i < Len-1; i++ {
		sum += mpi.SDWord(a[i]) - mpi.SDWord(b[i])
		r[i] = mpi.Word(sum)
		sum >>= mpi.WSize // arithmetic shift
		// sum is in [-2, 1]
	}
	r[Len-1] = msw + mpi.Word(sum) + 4
}

// CNeg computes r = -a mod p if neg's LSB is 1, or r = a mod p otherwise,
// without branching on neg.
func CNeg(r, a *Element, neg int) {
	mask := 0 - mpi.Word(neg&1) // 0 or all-1
	sum := mpi.SDWord(min4Mask) + mpi.SDWord(mask^a[Len-1])
	msw := mpi.Word(sum) & msb0Mask
	sum = mpi.SDWord(constC) * mpi.SDWord(mpi.Word(sum>>(mpi.WSize-1)))
	sum = sum - (constC << 1) - mpi.SDWord(mask&((constC<<1)-1))
	// sum is in [-3*c+1, -c+1] if neg is 1, [-c, c] if neg is 0

	for i := 0; i < Len-1; i++ {
		sum += mpi.SDWord(mask ^ a[i])
		r[i] = mpi.Word(sum)
		sum >>= mpi.WSize // arithmetic shift
		// sum is in [-1, 1]
	}
	r[Len-1] = msw + mpi.Word(sum) + 4
}

// Hlv computes r = a/2 mod p.
func Hlv(r, a *Element) {
	mask := 0 - (a[0] & 1) // 0 or all-1

	sum := mpi.SDWord(a[0]) - mpi.SDWord(mpi.Word(constC)&mask)
	tmp := mpi.Word(sum)
	sum >>= mpi.WSize
	// sum is in [-1, 0]

	for i := 1; i < Len-1; i++ {
		sum += mpi.SDWord(a[i])
		r[i-1] = (mpi.Word(sum) << (mpi.WSize - 1)) | (tmp >> 1)
		tmp = mpi.Word(sum)
		sum >>= mpi.WSize
		// sum is in [-1, 0]
	}
	sum += mpi.SDWord(a[Len-1]) + mpi.SDWord(msb1Mask&mask)
	r[Len-2] = (mpi.Word(sum) << (mpi.WSize - 1)) | (tmp >> 1)
	r[Len-1] = mpi.Word(sum >> 1)
}

// Mul computes r = a * b mod p.
func Mul(r, a, b *Element) {
	var t [2 * Len]mpi.Word
	var prod mpi.DWord

	// multiplication of a by b[0]
	var j int
	for j = 0; j < Len; j++ {
		prod += mpi.DWord(a[j]) * mpi.DWord(b[0])
		t[j] = mpi.Word(prod)
		prod >>= mpi.WSize
	}
	t[j] = mpi.Word(prod)

	// multiplication of a by b[i] for 1 <= i < Len
	for i := 1; i < Len; i++ {
		prod = 0
		for j = 0; j < Len; j++ {
			prod += mpi.DWord(a[j])*mpi.DWord(b[i]) + mpi.DWord(t[i+j])
			t[i+j] = mpi.Word(prod)
			prod >>= mpi.WSize
		}
		t[i+j] = mpi.Word(prod)
	}

	reduceDouble(r, &t)
}

// Sqr computes r = a^2 mod p.
func Sqr(r, a *Element) {
	var t [2 * Len]mpi.Word
	var prod, sum mpi.DWord

	// multiplication of a[1..Len-1] by a[0] (to avoid zeroing t first)
	t[0] = 0
	var j int
	for j = 1; j < Len; j++ {
		prod += mpi.DWord(a[j]) * mpi.DWord(a[0])
		t[j] = mpi.Word(prod)
		prod >>= mpi.WSize
	}
	t[j] = mpi.Word(prod)

	// multiplication of a[i+1..Len-1] by a[i] for 1 <= i < Len
	for i := 1; i < Len; i++ {
		prod = 0
		for j = i + 1; j < Len; j++ {
			prod += mpi.DWord(a[j])*mpi.DWord(a[i]) + mpi.DWord(t[i+j])
			t[i+j] = mpi.Word(prod)
			prod >>= mpi.WSize
		}
		t[i+j] = mpi.Word(prod)
	}

	// double the cross terms, add the squares a[i]^2 on the main diagonal
	for i := 0; i < Len; i++ {
		prod = mpi.DWord(a[i]) * mpi.DWord(a[i])
		sum += mpi.DWord(mpi.Word(prod))
		sum += mpi.DWord(t[2*i]) + mpi.DWord(t[2*i])
		t[2*i] = mpi.Word(sum)
		sum >>= mpi.WSize
		sum += mpi.DWord(mpi.Word(prod >> mpi.WSize))
		sum += mpi.DWord(t[2*i+1]) + mpi.DWord(t[2*i+1])
		t[2*i+1] = mpi.Word(sum)
		sum >>= mpi.WSize
	}

	reduceDouble(r, &t)
}

// reduceDouble performs the shared two-step modular reduction used by Mul
// and Sqr on a 2*Len-word product t, writing the Len-word result to r.
func reduceDouble(r *Element, t *[2 * Len]mpi.Word) {
	var prod mpi.DWord

	// first step: fold the high Len words back in, scaled by 2c
	for i := 0; i < Len-1; i++ {
		prod += mpi.DWord(t[i+Len])*(constC<<1) + mpi.DWord(t[i])
		t[i] = mpi.Word(prod)
		prod >>= mpi.WSize
	}
	prod += mpi.DWord(t[2*Len-1])*(constC<<1) + mpi.DWord(t[Len-1])
	// prod is in [0, 2^(2*WSize-1)-1]

	// second step: same form as Add's reduction
	msw := mpi.Word(prod) & msb0Mask
	prod = mpi.DWord(constC) * (prod >> (mpi.WSize - 1))
	for i := 0; i < Len-1; i++ {
		prod += mpi.DWord(t[i])
		r[i] = mpi.Word(prod)
		prod >>= mpi.WSize
	}
	r[Len-1] = msw + mpi.Word(prod)
}

// Mul32 computes r = a * b mod p for a single-word multiplier b.
func Mul32(r, a *Element, b mpi.Word) {
	var t [Len + 1]mpi.Word
	var prod mpi.DWord

	var j int
	for j = 0; j < Len; j++ {
		prod += mpi.DWord(a[j]) * mpi.DWord(b)
		t[j] = mpi.Word(prod)
		prod >>= mpi.WSize
	}
	t[j] = mpi.Word(prod)

	msw := t[Len-1] & msb0Mask
	prod = mpi.DWord(constC) * mpi.DWord(t[Len-1]>>(mpi.WSize-1))
	// prod is either 0 or c

	prod += mpi.DWord(t[Len])*(constC<<1) + mpi.DWord(t[0])
	r[0] = mpi.Word(prod)
	prod >>= mpi.WSize

	for i := 1; i < Len-1; i++ {
		prod += mpi.DWord(t[i])
		r[i] = mpi.Word(prod)
		prod >>= mpi.WSize
	}
	r[Len-1] = mpi.Word(prod) + msw
}
