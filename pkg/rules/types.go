// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

// Package rules holds the 5-tuple rule types loaded from a rules file, the
// parser that produces them, and the split that separates each rule into
// an IP-only and a port-only half for independent encoding.
package rules

// PortRange is a closed 16-bit port interval with Lo <= Hi.
type PortRange struct {
	Lo, Hi uint16
}

// IPRange is a closed 32-bit address interval with Lo <= Hi.
type IPRange struct {
	Lo, Hi uint32
}

// Rule is one parsed 5-tuple line: source/destination IP ranges (with the
// prefix length the CIDR was parsed from), a protocol byte and mask, source
// and destination port ranges, a priority, and an opaque action token.
type Rule struct {
	SrcIP        IPRange
	SrcPrefixLen int
	DstIP        IPRange
	DstPrefixLen int
	Proto        byte
	ProtoMask    byte
	SrcPort      PortRange
	DstPort      PortRange
	Priority     int
	Action       string
}

// IPRule is the IP-and-metadata half of a split Rule: everything the
// port-range encoders treat as opaque.
type IPRule struct {
	SrcIP        IPRange
	SrcPrefixLen int
	DstIP        IPRange
	DstPrefixLen int
	Proto        byte
	ProtoMask    byte
	Priority     int
	Action       string
}

// PortRule is the port-range half of a split Rule, keyed back to its
// IPRule by Priority (spec's join key; RuleIndex is the tie-break for
// rules that happen to share a priority).
type PortRule struct {
	RuleIndex int
	SrcPort   PortRange
	DstPort   PortRange
	Priority  int
	Action    string
}
