// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rules

// Split separates a loaded rule set into its IP and port tables (spec §6
// "Split"), in input order. The two tables are joined back together at
// emission time by matching Priority, with RuleIndex (original position in
// rules) as the tie-break spec §9 "Priority join" calls out for rules that
// happen to share a priority.
func Split(all []Rule) (ipTable []IPRule, portTable []PortRule) {
	ipTable = make([]IPRule, 0, len(all))
	portTable = make([]PortRule, 0, len(all))
	for i, r := range all {
		ipTable = append(ipTable, IPRule{
			SrcIP:        r.SrcIP,
			SrcPrefixLen: r.SrcPrefixLen,
			DstIP:        r.DstIP,
			DstPrefixLen: r.DstPrefixLen,
			Proto:        r.Proto,
			ProtoMask:    r.ProtoMask,
			Priority:     r.Priority,
			Action:       r.Action,
		})
		portTable = append(portTable, PortRule{
			RuleIndex: i,
			SrcPort:   r.SrcPort,
			DstPort:   r.DstPort,
			Priority:  r.Priority,
			Action:    r.Action,
		})
	}
	return ipTable, portTable
}
