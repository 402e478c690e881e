// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

// Package logging configures the process-wide logger used by the CLI and
// every internal package.
package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/pktclass/tcamgen/internal/logging/logfields"
)

// DefaultLogger is the process-wide logger. It starts at Info level; the
// CLI raises it to Debug when --debug is set.
var DefaultLogger = logrus.New()

// SetDebug toggles Debug-level logging.
func SetDebug(debug bool) {
	if debug {
		DefaultLogger.SetLevel(logrus.DebugLevel)
	} else {
		DefaultLogger.SetLevel(logrus.InfoLevel)
	}
}

// Subsys returns a logger pre-tagged with the given subsystem name, the way
// every package-level logger in this module identifies itself.
func Subsys(name string) *logrus.Entry {
	return DefaultLogger.WithField(logfields.LogSubsys, name)
}
