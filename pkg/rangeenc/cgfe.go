// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rangeenc

import (
	"fmt"

	"github.com/pktclass/tcamgen/pkg/ternary"
)

// CGFE is Chunk-based Gray Fence Encoding (spec §4.8): it factors a value
// into a most-significant chunk (MSC) and a tail (TC), fence-encodes the
// MSC, and fence-encodes the tail chunk-by-chunk while propagating a
// parity bit across chunks so the same tail pattern matches symmetric
// values on either side of an MSC boundary.
//
// For Δ = MSC(hi) - MSC(lo) >= 1 this implementation always uses the
// guaranteed-correct decomposition spec §9 calls out as the fallback for
// when the single-pattern cross-block reflection risks over-coverage:
// a partial low block, whole middle blocks covered by one MSC fence_range
// with an all-star tail, and a partial high block. See DESIGN.md for why
// the riskier single-entry Δ=1 reflection merge is not attempted.
type CGFE struct {
	W int
	C int
}

// Name implements Encoder.
func (cg CGFE) Name() string { return "CGFE" }

// Encode implements Encoder.
func (cg CGFE) Encode(r Range, width int) ([]ternary.Pattern, error) {
	if err := cg.validateConfig(width); err != nil {
		return nil, err
	}
	if err := r.Validate(width); err != nil {
		return nil, err
	}
	if r.Empty() {
		return nil, nil
	}
	if r.Lo == 0 && uint64(r.Hi) == (uint64(1)<<uint(width))-1 {
		return []ternary.Pattern{ternary.New(cg.EncodedWidth(width))}, nil
	}
	return cg.encodeRangeCore(r.Lo, r.Hi), nil
}

// Matches implements Encoder: CGFE patterns describe the parity-propagated
// fence code of v, not v's plain binary form.
func (cg CGFE) Matches(p ternary.Pattern, v uint32, _ int) bool {
	code := cgfeEncodeValue(v, cg.W, cg.C)
	return p.Matches(code.Value())
}

// EncodedWidth returns N*(2^c-1) for N = W/C total chunks (the MSC chunk
// plus every tail chunk).
func (cg CGFE) EncodedWidth(width int) int {
	return numChunks(width, cg.C) * fenceLen(cg.C)
}

func (cg CGFE) validateConfig(width int) error {
	if cg.C <= 0 || cg.W <= 0 {
		return fmt.Errorf("rangeenc: CGFE requires positive W and c, got W=%d c=%d", cg.W, cg.C)
	}
	if cg.W != width {
		return fmt.Errorf("rangeenc: CGFE config width %d does not match requested width %d", cg.W, width)
	}
	if cg.W < cg.C || (cg.W-cg.C)%cg.C != 0 {
		return fmt.Errorf("rangeenc: CGFE requires (W-c) to be a non-negative multiple of c (W=%d c=%d)", cg.W, cg.C)
	}
	return nil
}

func (cg CGFE) encodeRangeCore(lo, hi uint32) []ternary.Pattern {
	tailWidth := cg.W - cg.C
	blockSize := uint32(1) << uint(tailWidth)
	mscS := lo >> uint(tailWidth)
	mscE := hi >> uint(tailWidth)
	tcS := lo & (blockSize - 1)
	tcE := hi & (blockSize - 1)

	if mscS == mscE {
		prefix := fenceValue(int(mscS), cg.C)
		tcPatterns := encodeTCRange(tcS, tcE, tailWidth, cg.C, mscS&1 == 1)
		out := make([]ternary.Pattern, len(tcPatterns))
		for i, p := range tcPatterns {
			out[i] = prefix.Concat(p)
		}
		return out
	}

	var out []ternary.Pattern

	prefixLow := fenceValue(int(mscS), cg.C)
	for _, p := range encodeTCRange(tcS, blockSize-1, tailWidth, cg.C, mscS&1 == 1) {
		out = append(out, prefixLow.Concat(p))
	}

	if mscE-mscS > 1 {
		allStarTail := ternary.New(numChunks(tailWidth, cg.C) * fenceLen(cg.C))
		out = append(out, fenceRange(int(mscS+1), int(mscE-1), cg.C).Concat(allStarTail))
	}

	prefixHigh := fenceValue(int(mscE), cg.C)
	for _, p := range encodeTCRange(0, tcE, tailWidth, cg.C, mscE&1 == 1) {
		out = append(out, prefixHigh.Concat(p))
	}

	return out
}

// encodeTCRange encodes a tail range [lo, hi] (a tailWidth-bit field made
// of tailWidth/c chunks) into ternary patterns, threading a running parity
// flag across chunks the way cgfeEncodeValue does for a single value:
// a chunk is fence-encoded directly when parity is even, and with its
// value reflected (2^c-1-v) when parity is odd; parity for the next chunk
// is the low bit of the value actually written. The one varying chunk in
// each chunk-aligned subrange (spec §4.4) is fence_range-encoded, its
// bounds reflected the same way when parity is odd; every chunk below it
// is a full 0..2^c-1 block, whose fence_range is all-star and therefore
// identical whichever way it is reflected, so parity need not be tracked
// past that point.
func encodeTCRange(lo, hi uint32, tailWidth, c int, parityStart bool) []ternary.Pattern {
	if tailWidth == 0 {
		return []ternary.Pattern{ternary.New(0)}
	}
	subs := decomposeChunks(lo, hi, tailWidth, c)
	n := numChunks(tailWidth, c)
	max := fenceLen(c)
	out := make([]ternary.Pattern, 0, len(subs))
	for _, sr := range subs {
		parity := parityStart
		var p ternary.Pattern
		for i := 0; i < n; i++ {
			sc := getChunk(sr.Lo, i, tailWidth, c)
			ec := getChunk(sr.Hi, i, tailWidth, c)
			var fp ternary.Pattern
			if sc == ec {
				val := sc
				if parity {
					val = max - val
				}
				fp = fenceValue(val, c)
				parity = val&1 == 1
			} else {
				lo2, hi2 := sc, ec
				if parity {
					lo2, hi2 = max-ec, max-sc
				}
				fp = fenceRange(lo2, hi2, c)
			}
			if i == 0 {
				p = fp
			} else {
				p = p.Concat(fp)
			}
		}
		out = append(out, p)
	}
	return out
}

// cgfeEncodeValue returns the fully-specified parity-propagated fence code
// for a single value v (spec §4.8 "Per-value encoding").
func cgfeEncodeValue(v uint32, W, c int) ternary.Pattern {
	tailWidth := W - c
	blockSize := uint32(1) << uint(tailWidth)
	msc := v >> uint(tailWidth)
	tc := v & (blockSize - 1)

	p := fenceValue(int(msc), c)
	parity := msc&1 == 1
	n := numChunks(tailWidth, c)
	max := fenceLen(c)
	for i := 0; i < n; i++ {
		chunkVal := getChunk(tc, i, tailWidth, c)
		val := chunkVal
		if parity {
			val = max - chunkVal
		}
		p = p.Concat(fenceValue(val, c))
		parity = val&1 == 1
	}
	return p
}
