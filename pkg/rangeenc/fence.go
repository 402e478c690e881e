// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rangeenc

import "github.com/pktclass/tcamgen/pkg/ternary"

// fenceLen returns the fence length L = 2^c - 1 for a c-bit chunk.
func fenceLen(c int) int {
	return (1 << uint(c)) - 1
}

// fenceRange encodes a value range [s, e] within a single c-bit chunk
// (0 <= s <= e < 2^c) as a unary "fence" pattern of length L = 2^c-1:
// (L-e) zeros, then (e-s) stars, then s ones (spec §4.3). It matches
// exactly the chunk values s..e.
func fenceRange(s, e, c int) ternary.Pattern {
	L := fenceLen(c)
	p := ternary.New(L)
	i := 0
	for ; i < L-e; i++ {
		p.Set(i, ternary.Zero)
	}
	for ; i < L-e+(e-s); i++ {
		p.Set(i, ternary.Star)
	}
	for ; i < L; i++ {
		p.Set(i, ternary.One)
	}
	return p
}

// fenceValue encodes a single chunk value x as fenceRange(x, x, c): L-x
// zeros followed by x ones. Distinct values produce distinct, fully
// specified (star-free) patterns, and fenceValue(x) differs from
// fenceValue(x+1) in exactly one position — the boundary between the
// zero and one runs shifts by one symbol — giving the unary code its
// Gray-like adjacency property.
//
// (Applying fenceRange's own formula with s=e=x is the form used here
// because it is the one self-consistent with fenceRange's total length L;
// see DESIGN.md for the one-off discrepancy this resolves against the
// spec's literal fence_value formula.)
func fenceValue(x, c int) ternary.Pattern {
	return fenceRange(x, x, c)
}
