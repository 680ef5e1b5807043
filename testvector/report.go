package testvector

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/johgrolux/micro25519-go/gfp"
)

// OperationFunc computes a gfp result from one or two operands. Op2 is
// ignored by unary operations.
type OperationFunc func(op1, op2 gfp.Element) gfp.Element

// Mismatch records one vector whose actual result disagreed with the
// expected one.
type Mismatch struct {
	Index int
	Vector
	Got gfp.Element
}

// Report summarizes a Run: how many vectors passed, and the vectors that
// didn't, mirroring the pass/fail tally test_gfp_c99.c prints per operation.
type Report struct {
	Operation  string
	Total      int
	Mismatches []Mismatch
}

// Passed reports whether every vector in the file matched.
func (r Report) Passed() bool {
	return len(r.Mismatches) == 0
}

// String renders a human-readable summary, dumping every mismatch via
// go-spew so a reviewer can see the exact operand/expected/actual words
// without hand-formatting a hex dump.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d/%d vectors passed", r.Operation, r.Total-len(r.Mismatches), r.Total)
	if r.Passed() {
		return b.String()
	}
	b.WriteString("\n")
	for _, m := range r.Mismatches {
		fmt.Fprintf(&b, "vector #%d mismatch:\n%s", m.Index, spew.Sdump(m))
	}
	return b.String()
}

// Run drives every vector in f through op (after reducing its operands and
// expected result, matching chk_vector's call to gfp_fred before
// comparison) and returns a Report tallying the outcome.
func Run(f *File, op OperationFunc) Report {
	report := Report{Operation: f.Operation, Total: len(f.Vectors)}

	for i, v := range f.Vectors {
		var op1, op2, want gfp.Element
		gfp.Fred(&op1, &v.Op1)
		gfp.Fred(&op2, &v.Op2)
		gfp.Fred(&want, &v.Want)

		got := op(op1, op2)
		var gotReduced gfp.Element
		gfp.Fred(&gotReduced, &got)

		if gotReduced != want {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Index:  i,
				Vector: v,
				Got:    gotReduced,
			})
		}
	}

	return report
}
