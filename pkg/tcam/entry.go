// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

// Package tcam builds and serializes the TCAM entries produced by joining
// an encoded port-rule's pattern sets back to its IP rule.
package tcam

import (
	"fmt"

	"github.com/pktclass/tcamgen/pkg/ternary"
)

// Entry is one emitted TCAM line: an IP-prefix pair, a ternary pattern
// for each port field, a protocol byte, and the rule's priority and
// opaque action (spec §3 "TCAM entry"). The protocol mask is not carried
// here: the output format always emits a literal 0xFF mask regardless of
// what the rule's own mask was (spec §6, ground-truthed by
// original_source/src/Prefix_code.cpp's hardcoded "/0xFF").
type Entry struct {
	SrcIPCIDR string
	DstIPCIDR string
	SrcPort   ternary.Pattern
	DstPort   ternary.Pattern
	Proto     byte
	Priority  int
	Action    string
}

func formatIPv4CIDR(addr uint32, prefixLen int) string {
	return fmt.Sprintf("%d.%d.%d.%d/%d", addr>>24&0xFF, addr>>16&0xFF, addr>>8&0xFF, addr&0xFF, prefixLen)
}
