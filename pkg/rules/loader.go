// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rules

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pktclass/tcamgen/internal/logging"
	"github.com/pktclass/tcamgen/internal/logging/logfields"
	"github.com/pktclass/tcamgen/internal/metrics"
)

var log = logging.Subsys("rules")

// ParseError describes one malformed rules-file line. In strict mode it is
// returned by Load and aborts the whole load before any encoding begins
// (spec §7); in non-strict mode (the default) it is logged as a warning
// and the offending line is skipped instead.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rules: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Load reads a rules file: one 5-tuple rule per non-comment, non-blank
// line. Lines beginning with '#' or '@' are treated as comments and
// skipped (spec §6). Priority is assigned as the 1-based index among
// non-comment lines, in file order, including lines later skipped for
// being malformed.
//
// When strict is true, the first malformed line aborts the load with a
// *ParseError (spec.md §7's mandated behavior). When strict is false, a
// malformed line is logged as a warning and skipped, and loading
// continues with the rest of the file.
//
// Expected line format (whitespace separated):
//
//	<src-cidr> <dst-cidr> <src-lo> : <src-hi> <dst-lo> : <dst-hi> <proto>/<mask> <action>
func Load(path string, strict bool) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "rules: opening %s", path)
	}
	defer f.Close()
	return load(f, path, strict)
}

func load(r io.Reader, path string, strict bool) ([]Rule, error) {
	var out []Rule
	scanner := bufio.NewScanner(r)
	lineNo := 0
	priority := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") {
			continue
		}
		priority++
		rule, err := parseLine(line, priority)
		if err != nil {
			metrics.ParseErrors.Inc()
			parseErr := &ParseError{Line: lineNo, Text: line, Reason: err.Error()}
			if strict {
				return nil, parseErr
			}
			log.WithError(parseErr).WithFields(map[string]interface{}{
				logfields.RulesFile:  path,
				logfields.LineNumber: lineNo,
			}).Warn("skipping malformed rule line")
			continue
		}
		out = append(out, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "rules: reading %s", path)
	}
	metrics.RulesLoaded.Add(float64(len(out)))
	log.WithFields(map[string]interface{}{
		logfields.RulesFile: path,
		logfields.RuleCount: len(out),
	}).Debug("loaded rules")
	return out, nil
}

func parseLine(line string, priority int) (Rule, error) {
	fields := strings.Fields(line)
	// src-cidr dst-cidr src-lo : src-hi dst-lo : dst-hi proto/mask action
	if len(fields) != 10 {
		return Rule{}, errors.Errorf("expected 10 fields, got %d", len(fields))
	}
	if fields[3] != ":" || fields[6] != ":" {
		return Rule{}, errors.New("expected ':' between port range bounds")
	}

	srcIP, srcLen, err := ParseIPv4CIDR(fields[0])
	if err != nil {
		return Rule{}, err
	}
	dstIP, dstLen, err := ParseIPv4CIDR(fields[1])
	if err != nil {
		return Rule{}, err
	}
	srcPort, err := parsePortRange(fields[2], fields[4])
	if err != nil {
		return Rule{}, err
	}
	dstPort, err := parsePortRange(fields[5], fields[7])
	if err != nil {
		return Rule{}, err
	}
	proto, mask, err := parseProtoMask(fields[8])
	if err != nil {
		return Rule{}, err
	}
	action := fields[9]
	if err := validateAction(action); err != nil {
		return Rule{}, err
	}

	return Rule{
		SrcIP:        srcIP,
		SrcPrefixLen: srcLen,
		DstIP:        dstIP,
		DstPrefixLen: dstLen,
		Proto:        proto,
		ProtoMask:    mask,
		SrcPort:      srcPort,
		DstPort:      dstPort,
		Priority:     priority,
		Action:       action,
	}, nil
}

func parsePortRange(loTok, hiTok string) (PortRange, error) {
	lo, err := strconv.ParseUint(loTok, 0, 16)
	if err != nil {
		return PortRange{}, errors.Wrapf(err, "invalid port %q", loTok)
	}
	hi, err := strconv.ParseUint(hiTok, 0, 16)
	if err != nil {
		return PortRange{}, errors.Wrapf(err, "invalid port %q", hiTok)
	}
	if lo > hi {
		return PortRange{}, errors.Errorf("port range lo %d exceeds hi %d", lo, hi)
	}
	return PortRange{Lo: uint16(lo), Hi: uint16(hi)}, nil
}

func parseProtoMask(tok string) (byte, byte, error) {
	parts := strings.SplitN(tok, "/", 2)
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("expected <proto>/<mask>, got %q", tok)
	}
	proto, err := strconv.ParseUint(parts[0], 0, 8)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid protocol %q", parts[0])
	}
	mask, err := strconv.ParseUint(parts[1], 0, 8)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid protocol mask %q", parts[1])
	}
	return byte(proto), byte(mask), nil
}

func validateAction(action string) error {
	parts := strings.SplitN(action, "/", 2)
	if len(parts) != 2 {
		return errors.Errorf("expected action of the form 0xHHHH/0xMMMM, got %q", action)
	}
	for _, p := range parts {
		if _, err := strconv.ParseUint(p, 0, 32); err != nil {
			return errors.Wrapf(err, "invalid action token %q", action)
		}
	}
	return nil
}
