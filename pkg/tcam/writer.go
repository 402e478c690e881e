// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package tcam

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// WriteFile serializes entries to path, one line per entry, UTF-8,
// LF-terminated, truncating any existing file (spec §6 "TCAM output
// file"). The final line is a summary comment recording the entry count.
func WriteFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "tcam: creating %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		// The mask is always 0xFF on output: spec's TCAM line format is
		// 0x<proto>/0xFF, a literal, regardless of the rule's own mask.
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t0x%02X/0xFF\t%s\n",
			e.SrcIPCIDR, e.DstIPCIDR, e.SrcPort.String(), e.DstPort.String(),
			e.Proto, e.Action); err != nil {
			return errors.Wrapf(err, "tcam: writing %s", path)
		}
	}
	if _, err := fmt.Fprintf(w, "# total entries: %d\n", len(entries)); err != nil {
		return errors.Wrapf(err, "tcam: writing %s", path)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "tcam: flushing %s", path)
	}
	return nil
}
