// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rangeenc

import (
	"fmt"

	"github.com/pktclass/tcamgen/pkg/ternary"
)

// DIRPE assembles the per-chunk fence primitive (spec §4.3) over the
// chunk-aligned decomposition (spec §4.4) into full-width patterns (spec
// §4.5). C is the chunk width in bits; width must be a positive multiple
// of C.
type DIRPE struct {
	C int
}

// Name implements Encoder.
func (d DIRPE) Name() string { return "DIRPE" }

// Encode implements Encoder.
func (d DIRPE) Encode(r Range, width int) ([]ternary.Pattern, error) {
	if err := d.validateConfig(width); err != nil {
		return nil, err
	}
	if err := r.Validate(width); err != nil {
		return nil, err
	}
	if r.Empty() {
		return nil, nil
	}

	subranges := decomposeChunks(r.Lo, r.Hi, width, d.C)
	out := make([]ternary.Pattern, 0, len(subranges))
	n := numChunks(width, d.C)
	for _, sr := range subranges {
		var p ternary.Pattern
		for i := 0; i < n; i++ {
			sc := getChunk(sr.Lo, i, width, d.C)
			ec := getChunk(sr.Hi, i, width, d.C)
			fp := fenceRange(sc, ec, d.C)
			if i == 0 {
				p = fp
			} else {
				p = p.Concat(fp)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// Matches implements Encoder: DIRPE patterns describe the per-chunk fence
// code of v, not v's plain binary form.
func (d DIRPE) Matches(p ternary.Pattern, v uint32, width int) bool {
	code := dirpeEncodeValue(v, width, d.C)
	return p.Matches(code.Value())
}

// EncodedWidth returns the length of the ternary patterns this
// configuration produces: N*(2^c-1) for N = width/C chunks.
func (d DIRPE) EncodedWidth(width int) int {
	return numChunks(width, d.C) * fenceLen(d.C)
}

func (d DIRPE) validateConfig(width int) error {
	if d.C <= 0 || width <= 0 || width%d.C != 0 {
		return fmt.Errorf("rangeenc: DIRPE requires width %d to be a positive multiple of chunk size %d", width, d.C)
	}
	return nil
}

// dirpeEncodeValue returns the fully-specified fence code for a single
// value v: the concatenation of fenceValue(chunk_i) across every chunk,
// most significant first.
func dirpeEncodeValue(v uint32, width, c int) ternary.Pattern {
	n := numChunks(width, c)
	var p ternary.Pattern
	for i := 0; i < n; i++ {
		fp := fenceValue(getChunk(v, i, width, c), c)
		if i == 0 {
			p = fp
		} else {
			p = p.Concat(fp)
		}
	}
	return p
}
