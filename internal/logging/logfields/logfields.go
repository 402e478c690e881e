// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

// Package logfields defines common logging fields used across packages.
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging.
	LogSubsys = "subsys"

	// Algorithm is the range-to-ternary encoder name ("PFX", "SRGE",
	// "DIRPE", "CGFE").
	Algorithm = "algorithm"

	// RulesFile is the path to the rules file being loaded.
	RulesFile = "rulesFile"

	// OutputFile is the path to a generated TCAM output file.
	OutputFile = "outputFile"

	// LineNumber is the 1-based line number within a rules file.
	LineNumber = "lineNumber"

	// RuleCount is the number of rules loaded or processed.
	RuleCount = "ruleCount"

	// Rule is the index of a single rule within its table.
	Rule = "rule"

	// EntryCount is the number of TCAM entries emitted.
	EntryCount = "entryCount"

	// Priority is a rule's opaque priority value.
	Priority = "priority"

	// Duration is how long an operation took.
	Duration = "duration"
)
