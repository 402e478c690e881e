// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package ternary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatternAllStar(t *testing.T) {
	p := New(4)
	require.Equal(t, "****", p.String())
	for v := uint64(0); v < 16; v++ {
		require.True(t, p.Matches(v))
	}
}

func TestFromValueNoStars(t *testing.T) {
	p := FromValue(0b0101, 4)
	require.Equal(t, "0101", p.String())
	require.Equal(t, 0, p.NumStars())
	require.True(t, p.Matches(0b0101))
	require.False(t, p.Matches(0b0100))
}

func TestSetAndAt(t *testing.T) {
	p := New(3)
	p.Set(0, One)
	p.Set(1, Star)
	p.Set(2, Zero)
	require.Equal(t, "1*0", p.String())
	require.Equal(t, One, p.At(0))
	require.Equal(t, Star, p.At(1))
	require.Equal(t, Zero, p.At(2))
	require.True(t, p.Matches(0b100))
	require.True(t, p.Matches(0b110))
	require.False(t, p.Matches(0b101))
}

func TestConcat(t *testing.T) {
	a := FromValue(0b10, 2)
	b := New(3)
	b.Set(0, Zero)
	b.Set(1, Star)
	b.Set(2, One)
	got := a.Concat(b)
	require.Equal(t, 5, got.Width())
	require.Equal(t, "100*1", got.String())
}

func TestEqual(t *testing.T) {
	a := FromValue(5, 4)
	b := FromValue(5, 4)
	c := FromValue(6, 4)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestNumStars(t *testing.T) {
	p := FromSymbols([]Symbol{Zero, Star, Star, One})
	require.Equal(t, 2, p.NumStars())
}
