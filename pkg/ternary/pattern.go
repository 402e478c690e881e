// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

// Package ternary implements the fixed-width ternary alphabet {0, 1, *}
// used to represent TCAM match entries, and the operations the range
// encoders in pkg/rangeenc build on: construction, concatenation,
// symbol access, and matching against a concrete bit pattern.
package ternary

import (
	"fmt"
	"strings"
)

// Symbol is one position of a ternary pattern.
type Symbol uint8

const (
	// Zero requires the corresponding input bit to be 0.
	Zero Symbol = iota
	// One requires the corresponding input bit to be 1.
	One
	// Star matches either 0 or 1 (don't-care).
	Star
)

// String renders a symbol the way TCAM entries are written on the wire:
// '0', '1' or '*'.
func (s Symbol) String() string {
	switch s {
	case Zero:
		return "0"
	case One:
		return "1"
	case Star:
		return "*"
	default:
		return "?"
	}
}

// Pattern is a fixed-length sequence of ternary symbols. Internally it is
// stored as two parallel bit words rather than a symbol string: a set mask
// bit means its position is fixed (0 or 1), a clear one means a star. This
// mirrors how a TCAM cell is actually implemented and makes matching a
// single AND+compare instead of a symbol-by-symbol walk.
//
// Bit i of value/mask corresponds to pattern position (width-1-i), i.e.
// position 0 (leftmost, most significant symbol) lives in the highest bit.
// Patterns are values: once built they are never mutated in place except
// through the exported Set method, and callers that need a modified copy
// should copy first.
type Pattern struct {
	width int
	value uint64
	mask  uint64
}

// MaxWidth is the largest field width this package supports. It covers
// 16-bit ports directly (PFX, SRGE) and, at W = 16, the N*(2^c-1)-bit fence
// encodings (DIRPE, CGFE) for c = 1, 2 and 4 (16, 24 and 60 symbols). Larger
// chunks (c = 8 needs 510 symbols) exceed it, and New panics on them.
const MaxWidth = 64

// New returns a pattern of the given width with every position a star.
func New(width int) Pattern {
	if width < 0 || width > MaxWidth {
		panic(fmt.Sprintf("ternary: invalid width %d", width))
	}
	return Pattern{width: width}
}

// FromValue returns a fully-specified pattern (no stars) representing the
// low `width` bits of v.
func FromValue(v uint64, width int) Pattern {
	p := New(width)
	p.mask = widthMask(width)
	p.value = v & p.mask
	return p
}

// FromSymbols builds a pattern from an explicit symbol sequence, position 0
// first.
func FromSymbols(symbols []Symbol) Pattern {
	p := New(len(symbols))
	for i, s := range symbols {
		p.Set(i, s)
	}
	return p
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// bitPos maps a symbol position to its bit index within value/mask.
func (p Pattern) bitPos(i int) uint {
	return uint(p.width - 1 - i)
}

// Width returns the number of symbol positions.
func (p Pattern) Width() int { return p.width }

// At returns the symbol at position i (0 = leftmost / most significant).
func (p Pattern) At(i int) Symbol {
	if i < 0 || i >= p.width {
		panic(fmt.Sprintf("ternary: index %d out of range for width %d", i, p.width))
	}
	b := p.bitPos(i)
	if p.mask&(1<<b) == 0 {
		return Star
	}
	if p.value&(1<<b) != 0 {
		return One
	}
	return Zero
}

// Set writes the symbol at position i in place, through the pointer
// receiver; it returns nothing.
func (p *Pattern) Set(i int, s Symbol) {
	if i < 0 || i >= p.width {
		panic(fmt.Sprintf("ternary: index %d out of range for width %d", i, p.width))
	}
	b := p.bitPos(i)
	switch s {
	case Star:
		p.mask &^= 1 << b
		p.value &^= 1 << b
	case Zero:
		p.mask |= 1 << b
		p.value &^= 1 << b
	case One:
		p.mask |= 1 << b
		p.value |= 1 << b
	default:
		panic(fmt.Sprintf("ternary: invalid symbol %d", s))
	}
}

// Concat returns a new pattern that is the receiver followed by other,
// used to assemble a full-width pattern out of per-chunk fence patterns.
func (p Pattern) Concat(other Pattern) Pattern {
	total := p.width + other.width
	out := New(total)
	out.value = (p.value << uint(other.width)) | other.value
	out.mask = (p.mask << uint(other.width)) | other.mask
	return out
}

// Matches reports whether the fixed positions of p agree with the
// corresponding bits of code. code is interpreted as a `p.Width()`-bit
// unsigned integer, low bit first from the right exactly like value/mask.
// It is the caller's responsibility to first transform a concrete integer
// into the code space the encoder actually matches against (plain binary
// for PFX, Gray code for SRGE, fence-chunk code for DIRPE/CGFE); see the
// per-encoder Matches helpers in pkg/rangeenc.
func (p Pattern) Matches(code uint64) bool {
	return code&p.mask == p.value
}

// Equal reports whether two patterns have identical width and symbols.
func (p Pattern) Equal(other Pattern) bool {
	return p.width == other.width && p.value == other.value && p.mask == other.mask
}

// NumStars returns the count of don't-care positions.
func (p Pattern) NumStars() int {
	n := 0
	for i := 0; i < p.width; i++ {
		if p.At(i) == Star {
			n++
		}
	}
	return n
}

// String renders the pattern using '0'/'1'/'*' characters, most
// significant symbol first — the form used for TCAM output lines.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(p.width)
	for i := 0; i < p.width; i++ {
		b.WriteString(p.At(i).String())
	}
	return b.String()
}

// Value and Mask expose the raw bit words, for callers (serializers,
// tests) that need direct access rather than symbol-by-symbol iteration.
func (p Pattern) Value() uint64 { return p.value }
func (p Pattern) Mask() uint64  { return p.mask }
