// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rangeenc

import (
	"math/bits"

	"github.com/pktclass/tcamgen/pkg/ternary"
)

// PFX is the classical power-of-two prefix decomposition encoder (spec
// §4.2): the baseline every other encoder in this package is measured
// against. It matches concrete integers directly against their plain
// binary representation, so Matches needs no value transform.
type PFX struct{}

// Name implements Encoder.
func (PFX) Name() string { return "PFX" }

// Encode implements Encoder. It greedily covers the range with the fewest
// maximal power-of-two aligned blocks: at each step it finds the largest k
// such that the cursor is 2^k-aligned and the resulting block still fits
// under hi, emits one ternary pattern for that block, and advances past
// it. This is unique per step (the tie-break in spec §4.2 is automatic:
// there is exactly one maximal k for any aligned cursor).
func (PFX) Encode(r Range, width int) ([]ternary.Pattern, error) {
	if err := r.Validate(width); err != nil {
		return nil, err
	}
	if r.Empty() {
		return nil, nil
	}

	var out []ternary.Pattern
	cursor := uint64(r.Lo)
	hi := uint64(r.Hi)
	for cursor <= hi {
		k := maxAlignedBlock(cursor, hi, width)
		out = append(out, prefixPattern(cursor, k, width))
		cursor += uint64(1) << uint(k)
	}
	return out, nil
}

// Matches implements Encoder: PFX patterns are plain binary, so no value
// transform is needed before comparing against the pattern.
func (PFX) Matches(p ternary.Pattern, v uint32, _ int) bool {
	return p.Matches(uint64(v))
}

// maxAlignedBlock returns the largest k such that cursor is 2^k-aligned and
// [cursor, cursor+2^k-1] still fits within hi.
func maxAlignedBlock(cursor, hi uint64, width int) int {
	maxK := width
	if cursor != 0 {
		if tz := bits.TrailingZeros64(cursor); tz < maxK {
			maxK = tz
		}
	}
	for k := maxK; k > 0; k-- {
		blockEnd := cursor + (uint64(1) << uint(k)) - 1
		if blockEnd <= hi {
			return k
		}
	}
	return 0
}

// prefixPattern builds the ternary pattern for the 2^k-aligned block
// starting at cursor: the high (width-k) bits fixed to cursor's value, the
// low k bits wildcarded.
func prefixPattern(cursor uint64, k, width int) ternary.Pattern {
	p := ternary.FromValue(cursor, width)
	for i := width - k; i < width; i++ {
		p.Set(i, ternary.Star)
	}
	return p
}
