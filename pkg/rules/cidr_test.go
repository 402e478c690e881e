// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIPv4CIDR(t *testing.T) {
	rng, length, err := ParseIPv4CIDR("192.168.1.0/24")
	require.NoError(t, err)
	require.Equal(t, 24, length)
	require.Equal(t, uint32(192)<<24|168<<16|1<<8|0, rng.Lo)
	require.Equal(t, uint32(192)<<24|168<<16|1<<8|255, rng.Hi)
}

func TestParseIPv4CIDRHostRoute(t *testing.T) {
	rng, length, err := ParseIPv4CIDR("10.0.0.1/32")
	require.NoError(t, err)
	require.Equal(t, 32, length)
	require.Equal(t, rng.Lo, rng.Hi)
}

func TestParseIPv4CIDRRejectsIPv6(t *testing.T) {
	_, _, err := ParseIPv4CIDR("::1/128")
	require.Error(t, err)
}

func TestRangeToCIDRAlignedBlock(t *testing.T) {
	cidrs := RangeToCIDR(0, 255)
	require.Equal(t, []string{"0.0.0.0/24"}, cidrs)
}

func TestRangeToCIDRUnalignedRangeCoversExactly(t *testing.T) {
	lo, hi := uint32(10), uint32(20)
	cidrs := RangeToCIDR(lo, hi)
	covered := make(map[uint32]bool)
	for _, c := range cidrs {
		r, _, err := ParseIPv4CIDR(c)
		require.NoError(t, err)
		for v := r.Lo; v <= r.Hi; v++ {
			require.False(t, covered[v], "double-covered %d by %s", v, c)
			covered[v] = true
		}
	}
	require.Equal(t, int(hi-lo+1), len(covered))
	for v := lo; v <= hi; v++ {
		require.True(t, covered[v])
	}
}
