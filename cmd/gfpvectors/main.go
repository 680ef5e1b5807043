// Command gfpvectors runs a hex-encoded test-vector file against one of the
// gfp package's field operations and reports how many vectors matched.
package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/johgrolux/micro25519-go/gfp"
	"github.com/johgrolux/micro25519-go/log"
	"github.com/johgrolux/micro25519-go/testvector"
)

var (
	opFlag   = pflag.StringP("op", "o", "", "operation to test: add|sub|mul|mul32|sqr|hlv|cneg")
	fileFlag = pflag.StringP("file", "f", "", "path to a test-vector file")
)

// check panics if err is not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

var operations = map[string]testvector.OperationFunc{
	"add": func(op1, op2 gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.Add(&r, &op1, &op2)
		return r
	},
	"sub": func(op1, op2 gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.Sub(&r, &op1, &op2)
		return r
	},
	"mul": func(op1, op2 gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.Mul(&r, &op1, &op2)
		return r
	},
	"mul32": func(op1, op2 gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.Mul32(&r, &op1, op2[0])
		return r
	},
	"sqr": func(op1, _ gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.Sqr(&r, &op1)
		return r
	},
	"hlv": func(op1, _ gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.Hlv(&r, &op1)
		return r
	},
	"cneg": func(op1, _ gfp.Element) gfp.Element {
		var r gfp.Element
		gfp.CNeg(&r, &op1, 1)
		return r
	},
}

func main() {
	pflag.Parse()

	op, ok := operations[*opFlag]
	if !ok {
		log.Error().Str("op", *opFlag).Msg("unknown operation")
		os.Exit(1)
	}

	f, err := os.Open(*fileFlag)
	check(err)
	defer f.Close()

	vectors, err := testvector.Parse(f)
	check(err)

	report := testvector.Run(vectors, op)
	if report.Passed() {
		log.Info().Str("op", *opFlag).Int("total", report.Total).Msg("all test vectors passed")
		return
	}

	log.Error().Str("op", *opFlag).Int("failed", len(report.Mismatches)).Msg(report.String())
	os.Exit(1)
}
