// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rangeenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPFXSingleAlignedBlock(t *testing.T) {
	p := PFX{}
	patterns, err := p.Encode(Range{0, 15}, 4)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	require.Equal(t, "****", patterns[0].String())
}

func TestPFXSingleton(t *testing.T) {
	p := PFX{}
	patterns, err := p.Encode(Range{5, 5}, 4)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	require.Equal(t, "0101", patterns[0].String())
}

func TestPFXEmptyRange(t *testing.T) {
	p := PFX{}
	patterns, err := p.Encode(Range{5, 3}, 8)
	require.NoError(t, err)
	require.Nil(t, patterns)
}

func TestPFXInvalidRange(t *testing.T) {
	p := PFX{}
	_, err := p.Encode(Range{0, 256}, 8)
	require.Error(t, err)
	require.True(t, IsInvalidRange(err))
}

func TestPFXCoverageExhaustive(t *testing.T) {
	p := PFX{}
	const width = 8
	limit := uint32(1) << width
	for lo := uint32(0); lo < limit; lo++ {
		for hi := lo; hi < limit; hi++ {
			patterns, err := p.Encode(Range{lo, hi}, width)
			require.NoError(t, err)
			got := MatchSet(p, patterns, width)
			require.Equal(t, int(hi-lo+1), len(got), "[%d,%d]", lo, hi)
		}
	}
}

func TestPFXKnownPortRangeDecomposition(t *testing.T) {
	// 1-1023 split at power-of-two boundaries, grounded on the
	// well-known-ports convention seen in the teacher's own port-range
	// tests.
	p := PFX{}
	patterns, err := p.Encode(Range{1, 1023}, 16)
	require.NoError(t, err)
	got := MatchSet(p, patterns, 16)
	require.Equal(t, 1023, len(got))
	for v := uint32(1); v <= 1023; v++ {
		require.True(t, got[v])
	}
	require.False(t, got[0])
	require.False(t, got[1024])
}
