// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package tcam

import (
	"fmt"
	"time"

	"github.com/pktclass/tcamgen/internal/metrics"
	"github.com/pktclass/tcamgen/pkg/rangeenc"
	"github.com/pktclass/tcamgen/pkg/rules"
)

// BuildEntries encodes every port rule's source and destination ranges
// with enc, cross-products the two pattern sets (src outer, dst inner,
// spec §4.9), and joins each product back to its IP rule by priority, with
// original rule index as the tie-break for rules sharing a priority (spec
// §9 "Priority join").
func BuildEntries(ipTable []rules.IPRule, portTable []rules.PortRule, enc rangeenc.Encoder, width int) ([]Entry, error) {
	byPriority := make(map[int][]rules.IPRule)
	for _, ip := range ipTable {
		byPriority[ip.Priority] = append(byPriority[ip.Priority], ip)
	}
	cursor := make(map[int]int)

	var out []Entry
	for _, pr := range portTable {
		group := byPriority[pr.Priority]
		idx := cursor[pr.Priority]
		if idx >= len(group) {
			return nil, fmt.Errorf("tcam: no IP rule matches priority %d (rule index %d)", pr.Priority, pr.RuleIndex)
		}
		ipRule := group[idx]
		cursor[pr.Priority] = idx + 1

		start := time.Now()
		srcPatterns, err := enc.Encode(rangeenc.Range{Lo: uint32(pr.SrcPort.Lo), Hi: uint32(pr.SrcPort.Hi)}, width)
		if err != nil {
			return nil, fmt.Errorf("tcam: encoding src port range for rule index %d: %w", pr.RuleIndex, err)
		}
		metrics.EncodeDuration.WithLabelValues(enc.Name()).Observe(time.Since(start).Seconds())

		start = time.Now()
		dstPatterns, err := enc.Encode(rangeenc.Range{Lo: uint32(pr.DstPort.Lo), Hi: uint32(pr.DstPort.Hi)}, width)
		if err != nil {
			return nil, fmt.Errorf("tcam: encoding dst port range for rule index %d: %w", pr.RuleIndex, err)
		}
		metrics.EncodeDuration.WithLabelValues(enc.Name()).Observe(time.Since(start).Seconds())

		srcCIDR := formatIPv4CIDR(ipRule.SrcIP.Lo, ipRule.SrcPrefixLen)
		dstCIDR := formatIPv4CIDR(ipRule.DstIP.Lo, ipRule.DstPrefixLen)

		for _, sp := range srcPatterns {
			for _, dp := range dstPatterns {
				out = append(out, Entry{
					SrcIPCIDR: srcCIDR,
					DstIPCIDR: dstCIDR,
					SrcPort:   sp,
					DstPort:   dp,
					Proto:     ipRule.Proto,
					Priority:  pr.Priority,
					Action:    pr.Action,
				})
			}
		}
		metrics.EntriesEmitted.WithLabelValues(enc.Name()).Add(float64(len(srcPatterns) * len(dstPatterns)))
	}
	return out, nil
}
