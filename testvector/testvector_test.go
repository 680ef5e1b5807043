package testvector_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johgrolux/micro25519-go/gfp"
	"github.com/johgrolux/micro25519-go/testvector"
)

const sampleAddFile = `Addition
op1:0x0000000000000000000000000000000000000000000000000000000000000001
op2:0x0000000000000000000000000000000000000000000000000000000000000001
res:0x0000000000000000000000000000000000000000000000000000000000000002
op1:0x0000000000000000000000000000000000000000000000000000000000000005
op2:0x0000000000000000000000000000000000000000000000000000000000000007
res:0x000000000000000000000000000000000000000000000000000000000000000c
`

func TestParseReadsHeaderAndVectors(t *testing.T) {
	f, err := testvector.Parse(strings.NewReader(sampleAddFile))
	require.NoError(t, err)
	assert.Equal(t, "Addition", f.Operation)
	require.Len(t, f.Vectors, 2)
	assert.Equal(t, uint32(1), f.Vectors[0].Op1[0])
	assert.Equal(t, uint32(2), f.Vectors[0].Want[0])
	assert.Equal(t, uint32(12), f.Vectors[1].Want[0])
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := testvector.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, testvector.ErrBadVectorFile)
}

func TestParseRejectsTruncatedVector(t *testing.T) {
	_, err := testvector.Parse(strings.NewReader("Addition\nop1:0x01\n"))
	assert.ErrorIs(t, err, testvector.ErrBadVectorFile)
}

func TestRunReportsAllPassing(t *testing.T) {
	f, err := testvector.Parse(strings.NewReader(sampleAddFile))
	require.NoError(t, err)

	report := testvector.Run(f, func(op1, op2 gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.Add(&r, &op1, &op2)
		return r
	})

	assert.True(t, report.Passed())
	assert.Equal(t, 2, report.Total)
}

func TestRunReportsMismatch(t *testing.T) {
	f, err := testvector.Parse(strings.NewReader(sampleAddFile))
	require.NoError(t, err)

	// Subtraction instead of addition deliberately disagrees with the
	// "Addition" vectors above.
	report := testvector.Run(f, func(op1, op2 gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.Sub(&r, &op1, &op2)
		return r
	})

	assert.False(t, report.Passed())
	assert.Len(t, report.Mismatches, 2)
	assert.Contains(t, report.String(), "mismatch")
}
