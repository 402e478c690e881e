// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleRulesFile = `# example rules file
@ header comment, ignored like a rule line

192.168.1.0/24 10.0.0.0/8 0 : 65535 80 : 443 6/0xFF 0x0000/0x0200
10.0.0.0/24 10.0.0.0/24 1024 : 65535 22 : 22 6/0xFF 0x1000/0x1000
`

func TestLoadParsesRulesAndAssignsPriority(t *testing.T) {
	rules, err := load(strings.NewReader(sampleRulesFile), "sample.rules", true)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	r0 := rules[0]
	require.Equal(t, 1, r0.Priority)
	require.Equal(t, 24, r0.SrcPrefixLen)
	require.Equal(t, uint16(0), r0.SrcPort.Lo)
	require.Equal(t, uint16(65535), r0.SrcPort.Hi)
	require.Equal(t, uint16(80), r0.DstPort.Lo)
	require.Equal(t, uint16(443), r0.DstPort.Hi)
	require.Equal(t, byte(6), r0.Proto)
	require.Equal(t, byte(0xFF), r0.ProtoMask)
	require.Equal(t, "0x0000/0x0200", r0.Action)

	r1 := rules[1]
	require.Equal(t, 2, r1.Priority)
	require.Equal(t, uint16(22), r1.DstPort.Lo)
	require.Equal(t, uint16(22), r1.DstPort.Hi)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := load(strings.NewReader("not enough fields\n"), "bad.rules", true)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 1, parseErr.Line)
}

func TestLoadRejectsInvertedPortRange(t *testing.T) {
	line := "192.168.1.0/24 10.0.0.0/8 100 : 50 80 : 443 6/0xFF 0x0000/0x0200\n"
	_, err := load(strings.NewReader(line), "bad.rules", true)
	require.Error(t, err)
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	rules, err := load(strings.NewReader(sampleRulesFile), "sample.rules", true)
	require.NoError(t, err)
	// Priority is assigned only to non-comment, non-blank lines.
	require.Equal(t, 1, rules[0].Priority)
	require.Equal(t, 2, rules[1].Priority)
}

func TestLoadNonStrictSkipsMalformedLineAndContinues(t *testing.T) {
	input := "not enough fields\n" + sampleRulesFile
	rules, err := load(strings.NewReader(input), "mixed.rules", false)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	// Priority tracks ordinal position among non-comment lines, so the
	// skipped malformed line still consumes priority 1.
	require.Equal(t, 2, rules[0].Priority)
	require.Equal(t, 3, rules[1].Priority)
}

func TestLoadNonStrictAllMalformedYieldsEmptyResult(t *testing.T) {
	rules, err := load(strings.NewReader("garbage\nmore garbage\n"), "bad.rules", false)
	require.NoError(t, err)
	require.Empty(t, rules)
}
