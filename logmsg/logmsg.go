// SPDX-License-Identifier: MIT
// Package logmsg: severity levels, the message-key table, and Format.
// This file defines the ONLY public surface of the package. Message keys
// are short camelCase identifiers chosen at the raising site; unknown
// keys pass through verbatim so a missing table entry never hides the
// condition being reported.

package logmsg

import "fmt"

// Severity classifies a formatted message.
//
//   - SeverityError — the operation failed and the error propagates.
//   - SeverityWarn  — recoverable or advisory condition.
//   - SeverityInfo  — informational trace text.
//
// Only SeverityError is produced by the geometry packages today; the
// other levels exist so a host formatter can route by severity.
type Severity int

const (
	// SeverityError marks a failed operation whose error propagates to the caller.
	SeverityError Severity = iota

	// SeverityWarn marks a recoverable or advisory condition.
	SeverityWarn

	// SeverityInfo marks informational trace text.
	SeverityInfo
)

// severityNames maps Severity values to their stable display forms.
var severityNames = [...]string{
	SeverityError: "ERROR",
	SeverityWarn:  "WARN",
	SeverityInfo:  "INFO",
}

// String returns the stable upper-case display form of the severity.
// Out-of-range values format as "SEVERITY(<n>)" rather than panicking.
func (s Severity) String() string {
	if s < SeverityError || int(s) >= len(severityNames) {
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}

	return severityNames[s]
}

// Message keys understood by the table below. Raising sites reference
// these constants; the table owns the display text.
const (
	// KeyMissingMatrix reports a required matrix argument that was nil.
	KeyMissingMatrix = "missingMatrix"

	// KeySingularMatrix reports an inversion source with a (near-)zero determinant.
	KeySingularMatrix = "singularMatrix"
)

// messages is the fixed key → display-text table.
var messages = map[string]string{
	KeyMissingMatrix:  "missing matrix argument",
	KeySingularMatrix: "matrix is singular and cannot be inverted",
}

// Format renders the display string for a raised condition.
// Stage 1 (Resolve): look up messageKey in the table; unknown keys echo verbatim.
// Stage 2 (Finalize): return "<SEVERITY> <Type>.<op>: <message>".
// Complexity: O(1).
func Format(severity Severity, typeName, opName, messageKey string) string {
	// Resolve the display text for the key
	msg, ok := messages[messageKey]
	if !ok {
		msg = messageKey // unknown key: echo it rather than drop the report
	}

	// Assemble the display string
	return fmt.Sprintf("%s %s.%s: %s", severity, typeName, opName, msg)
}
