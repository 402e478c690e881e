// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package tcam

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pktclass/tcamgen/pkg/ternary"
)

func TestWriteFileFormatAndSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	entries := []Entry{
		{
			SrcIPCIDR: "10.0.0.0/24",
			DstIPCIDR: "10.1.0.0/16",
			SrcPort:   ternary.FromSymbols([]ternary.Symbol{ternary.Zero, ternary.One, ternary.Star, ternary.Star}),
			DstPort:   ternary.New(4),
			Proto:     6,
			Action:    "0x0000/0x0200",
		},
	}

	require.NoError(t, WriteFile(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	require.True(t, strings.HasPrefix(content, "10.0.0.0/24\t10.1.0.0/16\t01**\t****\t0x06/0xFF\t0x0000/0x0200\n"))
	require.True(t, strings.HasSuffix(content, "# total entries: 1\n"))
}

// TestWriteFileMaskIsAlwaysLiteral0xFF proves the mask written is not the
// rule's own mask, by using a Proto value whose only source is the Entry
// itself; there is no ProtoMask field on Entry for a stray value to leak
// through from.
func TestWriteFileMaskIsAlwaysLiteral0xFF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	entries := []Entry{
		{
			SrcIPCIDR: "0.0.0.0/0",
			DstIPCIDR: "0.0.0.0/0",
			SrcPort:   ternary.New(4),
			DstPort:   ternary.New(4),
			Proto:     0x11,
			Action:    "0x0000/0x0000",
		},
	}

	require.NoError(t, WriteFile(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "0x11/0xFF\t0x0000/0x0000\n")
}

func TestWriteFileTruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that should be gone\n"), 0o644))

	require.NoError(t, WriteFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# total entries: 0\n", string(data))
}
