// SPDX-License-Identifier: MIT
// Package geom: sentinel error set and error assembly.
// This file defines ONLY the package-level sentinel errors and the
// wrapping helper used across the geom package. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package geom

import (
	"errors"
	"fmt"

	"github.com/terraglide/terraglide/logmsg"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "geom: ..." for consistency and to
// allow easy grepping across logs. Sentinels are wrapped exactly once,
// at the raising site, with the display string produced by the injected
// message formatter — callers still match via errors.Is.
//
// VALIDATION ORDER (documented, enforced in tests):
// argument presence is checked before the first component write, so a
// failed operation leaves the receiver bit-identical.

var (
	// ErrNilMatrix is returned when an operation requires a matrix
	// argument and nil was supplied. The receiver is left unmodified.
	ErrNilMatrix = errors.New("geom: nil matrix argument")

	// ErrSingularMatrix is returned by InvertMatrix when the source
	// determinant is within SingularEps of zero (relative to the matrix
	// magnitude). No other operation produces it.
	ErrSingularMatrix = errors.New("geom: singular matrix")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSetMatrix        = "SetMatrix"
	opSetToMultiply    = "SetToMultiply"
	opMultiplyByMatrix = "MultiplyByMatrix"
	opTransposeMatrix  = "TransposeMatrix"
	opInvertMatrix     = "InvertMatrix"
)

// typeNameMatrix3 is the type name reported to the message formatter.
const typeNameMatrix3 = "Matrix3"

// Message keys forwarded to the formatter, aliased locally so raising
// sites stay one identifier wide.
const (
	keyMissingMatrix  = logmsg.KeyMissingMatrix
	keySingularMatrix = logmsg.KeySingularMatrix
)

// MessageFormatter builds the human-readable text wrapped around a
// sentinel error: (severity, type name, operation name, message key) →
// display string. The default is logmsg.Format; a host application may
// substitute its own via SetMessageFormatter.
type MessageFormatter func(severity logmsg.Severity, typeName, opName, messageKey string) string

// formatMessage is the formatter in effect. Package-level and
// unsynchronized: replace it at init time, before geometry operations run.
var formatMessage MessageFormatter = logmsg.Format

// SetMessageFormatter replaces the formatter used for error text.
// A nil formatter restores the logmsg default. Not safe for concurrent
// use with running operations; call during program initialization.
func SetMessageFormatter(f MessageFormatter) {
	if f == nil {
		f = logmsg.Format
	}
	formatMessage = f
}

// geomErrorf wraps a sentinel with the formatted display text for the
// failing operation, preserving the sentinel for errors.Is.
// Use only when err != nil.
func geomErrorf(opName, messageKey string, err error) error {
	return fmt.Errorf("%s: %w", formatMessage(logmsg.SeverityError, typeNameMatrix3, opName, messageKey), err)
}
