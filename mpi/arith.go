package mpi

// Add computes r = a + b over length words and returns the carry bit
// (0 or 1) out of the most-significant word. Aliasing r with a or b is
// permitted.
func Add(r, a, b []Word, length int) int {
	var sum DWord
	for i := 0; i < length; i++ {
		sum += DWord(a[i]) + DWord(b[i])
		r[i] = Word(sum)
		sum >>= WSize
	}
	return int(sum)
}

// CAdd computes r = a + b if the LSB of add is 1, or r = a otherwise,
// without branching on add: every word of b is AND-masked with a
// sign-extended mask derived from add's LSB before being folded into the
// running sum. Returns the carry bit.
func CAdd(r, a, b []Word, add int, length int) int {
	mask := 0 - Word(add&1) // 0 or all-ones
	var sum DWord
	for i := 0; i < length; i++ {
		sum += DWord(a[i]) + DWord(b[i]&mask)
		r[i] = Word(sum)
		sum >>= WSize
	}
	return int(sum)
}

// Sub computes r = a - b in two's complement over length words and returns
// the borrow bit (1 if a < b, 0 otherwise). A negative result appears in
// its two's-complement form in r.
func Sub(r, a, b []Word, length int) int {
	dif := SDWord(1)
	for i := 0; i < length; i++ {
		dif += SDWord(a[i]) + SDWord(^b[i])
		r[i] = Word(dif)
		dif >>= WSize
	}
	return 1 - int(dif)
}

// Shr computes r = a >> 1 (logical shift) over length words and returns
// the LSB of a[0] before the shift.
func Shr(r, a []Word, length int) int {
	retval := int(a[0] & 1)
	for i := 0; i < length-1; i++ {
		r[i] = (a[i+1] << (WSize - 1)) | (a[i] >> 1)
	}
	r[length-1] = a[length-1] >> 1
	return retval
}

// Mul computes the full 2*length-word product r = a * b using
// operand-scanning schoolbook multiplication. r must not alias a or b: the
// inner loop reads r[i+j] while it still holds a partial accumulation from
// an earlier outer-loop iteration.
func Mul(r, a, b []Word, length int) {
	var prod DWord

	// Peel the first outer iteration (multiply A by b[0]) instead of
	// zeroing r first.
	var j int
	for j = 0; j < length; j++ {
		prod += DWord(a[j]) * DWord(b[0])
		r[j] = Word(prod)
		prod >>= WSize
	}
	r[j] = Word(prod)

	for i := 1; i < length; i++ {
		prod = 0
		for j = 0; j < length; j++ {
			prod += DWord(a[j])*DWord(b[i]) + DWord(r[i+j])
			r[i+j] = Word(prod)
			prod >>= WSize
		}
		r[i+j] = Word(prod)
	}
}
