// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rangeenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSetChunkRoundTrip(t *testing.T) {
	const width, c = 8, 2
	v := uint32(0b10110100)
	require.Equal(t, 0b10, getChunk(v, 0, width, c))
	require.Equal(t, 0b11, getChunk(v, 1, width, c))
	require.Equal(t, 0b01, getChunk(v, 2, width, c))
	require.Equal(t, 0b00, getChunk(v, 3, width, c))

	v2 := setChunk(v, 1, 0b00, width, c)
	require.Equal(t, uint32(0b10000100), v2)
}

func TestIsDirectlyEncodable(t *testing.T) {
	const width, c = 4, 2
	require.True(t, isDirectlyEncodable(2, 3, width, c))  // [2,3] single chunk1 variation
	require.True(t, isDirectlyEncodable(0, 15, width, c)) // whole domain
	require.False(t, isDirectlyEncodable(2, 9, width, c)) // crosses chunk0 boundary with partial chunk1
	require.True(t, isDirectlyEncodable(8, 9, width, c))  // chunk0 fixed, chunk1 partial at tail
}

func TestDecomposeChunksCoversExactly(t *testing.T) {
	const width, c = 4, 2
	for lo := uint32(0); lo < 16; lo++ {
		for hi := lo; hi < 16; hi++ {
			subs := decomposeChunks(lo, hi, width, c)
			seen := make(map[uint32]bool)
			for _, sr := range subs {
				require.True(t, isDirectlyEncodable(sr.Lo, sr.Hi, width, c), "[%d,%d] -> [%d,%d]", lo, hi, sr.Lo, sr.Hi)
				for v := sr.Lo; v <= sr.Hi; v++ {
					require.False(t, seen[v], "duplicate coverage of %d for [%d,%d]", v, lo, hi)
					seen[v] = true
				}
			}
			require.Equal(t, int(hi-lo+1), len(seen), "[%d,%d]", lo, hi)
		}
	}
}

func TestDecomposeChunksExampleScenario(t *testing.T) {
	subs := decomposeChunks(2, 9, 4, 2)
	require.Equal(t, []chunkRange{{2, 3}, {4, 7}, {8, 9}}, subs)
}
