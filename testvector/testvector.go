// Package testvector parses and runs the hex-encoded test-vector files used
// to cross-check a gfp operation against an independently generated
// reference. A vector file is a header line naming the operation, followed
// by repeated blocks of "op1:"/"op2:"/"res:" lines, each holding a
// "0x"-prefixed 256-bit little-endian hex string. op2 is omitted for unary
// operations.
package testvector

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/johgrolux/micro25519-go/gfp"
	"github.com/johgrolux/micro25519-go/mpi"
)

// ErrBadVectorFile is returned by Parse when the input does not look like a
// well-formed test-vector file (missing header, or a vector block with no
// "res:" line before EOF).
var ErrBadVectorFile = errors.New("testvector: malformed vector file")

// Vector is one operand/expected-result triple. Op2 is the zero element and
// should be ignored for unary operations.
type Vector struct {
	Op1, Op2, Want gfp.Element
}

// File is a parsed test-vector file: the operation named in its header line,
// plus every vector block that followed it.
type File struct {
	Operation string
	Vectors   []Vector
}

// Parse reads a test-vector file from r.
func Parse(r io.Reader) (*File, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, errors.WithStack(ErrBadVectorFile)
	}
	f := &File{Operation: strings.TrimSpace(scanner.Text())}
	if f.Operation == "" {
		return nil, errors.WithStack(ErrBadVectorFile)
	}

	var cur Vector
	haveOp1, haveRes := false, false

	flush := func() error {
		if !haveRes {
			return nil // no partial vector pending
		}
		f.Vectors = append(f.Vectors, cur)
		cur = Vector{}
		haveOp1, haveRes = false, false
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "op1:"):
			if err := parseHex(&cur.Op1, line[len("op1:"):]); err != nil {
				return nil, err
			}
			haveOp1 = true
		case strings.HasPrefix(line, "op2:"):
			if err := parseHex(&cur.Op2, line[len("op2:"):]); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "res:"):
			if err := parseHex(&cur.Want, line[len("res:"):]); err != nil {
				return nil, err
			}
			haveRes = true
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if haveOp1 && !haveRes {
		return nil, errors.WithStack(ErrBadVectorFile)
	}

	return f, nil
}

func parseHex(e *gfp.Element, s string) error {
	s = strings.TrimSpace(s)
	var w [gfp.Len]mpi.Word
	if err := mpi.FromHex(w[:], s, gfp.Len); err != nil {
		return errors.Wrapf(err, "testvector: parsing %q", s)
	}
	*e = gfp.Element(w)
	return nil
}
