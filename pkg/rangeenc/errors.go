// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package rangeenc

import (
	"errors"
	"fmt"
)

// InvalidRangeError is returned when a range cannot be represented in the
// requested field width: the low bound exceeds the high bound is NOT an
// error (it yields an empty pattern set), but a bound that does not fit in
// `width` bits is a programming/input error and is reported as such.
type InvalidRangeError struct {
	Lo, Hi uint32
	Width  int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("rangeenc: invalid range [%d, %d] for width %d bits", e.Lo, e.Hi, e.Width)
}

// Is enables errors.Is(err, ErrInvalidRange) style checks without exposing
// field values to callers that only care about the error kind.
func (e *InvalidRangeError) Is(target error) bool {
	_, ok := target.(*InvalidRangeError)
	return ok
}

// ErrInvalidRange is a sentinel usable with errors.Is; concrete errors
// returned by encoders are *InvalidRangeError values carrying the offending
// bounds, but they compare equal under errors.Is(err, ErrInvalidRange).
var ErrInvalidRange = &InvalidRangeError{}

// IsInvalidRange reports whether err is (or wraps) an *InvalidRangeError.
func IsInvalidRange(err error) bool {
	return errors.Is(err, ErrInvalidRange)
}
