package gfp

import "github.com/valyala/fastrand"

// Fastrand is a ready-made RandSource that callers can pass to MaskedInv: a
// thin adapter over the teacher's non-cryptographic PRNG of choice.
// MaskedInv does not fall back to it; the rng argument is always used. It is fast enough that the
// blinding draw in MaskedInv never becomes the dominant cost of an
// inversion, and its output need only be unpredictable to a timing
// observer, not secret.
var Fastrand RandSource = fastrandSource{}

type fastrandSource struct{}

func (fastrandSource) Uint32() uint32 { return fastrand.Uint32() }
