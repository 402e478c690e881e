// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

// Package rangeenc implements the range-to-ternary encoders that turn an
// arbitrary integer port range into a set of TCAM-loadable ternary
// patterns: PFX (prefix decomposition), the DIRPE fence primitive and
// encoder, SRGE (Gray-tree reflection merging) and CGFE (chunked,
// parity-propagated Gray fence encoding).
//
// Every encoder is pure and deterministic: Encode(lo, hi, width) always
// returns the same ordered pattern sequence for the same inputs, performs
// no I/O, and never mutates its arguments.
package rangeenc

import (
	"github.com/pktclass/tcamgen/pkg/ternary"
)

// Range is a closed integer interval [Lo, Hi].
type Range struct {
	Lo, Hi uint32
}

// Empty reports whether the range contains no integers.
func (r Range) Empty() bool { return r.Lo > r.Hi }

// Validate checks that both bounds fit in the given field width. A Lo > Hi
// range is valid (it simply encodes to nothing); only an out-of-width bound
// is an error.
func (r Range) Validate(width int) error {
	if width <= 0 || width > ternary.MaxWidth {
		return &InvalidRangeError{Lo: r.Lo, Hi: r.Hi, Width: width}
	}
	limit := uint64(1) << uint(width)
	if uint64(r.Hi) >= limit || uint64(r.Lo) >= limit {
		return &InvalidRangeError{Lo: r.Lo, Hi: r.Hi, Width: width}
	}
	return nil
}

// Encoder is the shared contract every range-to-ternary algorithm
// implements (spec §4.1): encode(lo, hi, width, config) -> patterns.
// Per-algorithm configuration (e.g. DIRPE/CGFE's chunk parameter) is bound
// into the concrete Encoder value at construction time.
type Encoder interface {
	// Name identifies the algorithm, used in log fields and output
	// filenames ("PFX", "SRGE", "DIRPE", "CGFE").
	Name() string
	// Encode returns the ordered ternary patterns whose match-set union
	// equals exactly {r.Lo, ..., r.Hi}. Returns (nil, nil) for an empty
	// range, and a non-nil error when r fails Validate(width) or when the
	// encoder's own configuration (DIRPE/CGFE chunk parameter) does not fit
	// width.
	Encode(r Range, width int) ([]ternary.Pattern, error)
	// Matches reports whether v is matched by pattern p when p was
	// produced by this encoder for the given width. This is not simply
	// p.Matches(uint64(v)): SRGE matches against Gray(v) and DIRPE/CGFE
	// match against the fence-chunk code of v, not v's plain binary form.
	Matches(p ternary.Pattern, v uint32, width int) bool
}

// MatchSet computes the set of concrete integers matched by the union of
// patterns, restricted to the given width. It is used by tests to verify
// the coverage property (spec §8#1) and is not part of the hot path.
func MatchSet(e Encoder, patterns []ternary.Pattern, width int) map[uint32]bool {
	out := make(map[uint32]bool)
	limit := uint64(1) << uint(width)
	for v := uint64(0); v < limit; v++ {
		for _, p := range patterns {
			if e.Matches(p, uint32(v), width) {
				out[uint32(v)] = true
				break
			}
		}
	}
	return out
}
