// Package logmsg builds the human-readable messages attached to errors
// raised by the terraglide geometry packages.
//
// The logmsg package provides:
//
//   - Severity levels (Error, Warn, Info) with stable string forms.
//   - A fixed message-key table mapping short keys ("missingMatrix",
//     "singularMatrix") to display text, so call sites stay terse and
//     messages stay consistent across the module.
//   - Format, the single entry point: (severity, type name, operation
//     name, message key) → "<SEVERITY> <Type>.<op>: <message>".
//
// Consumers treat Format as an injectable function value, so a host
// application can substitute its own formatter (localization, richer
// log routing) without touching the geometry packages.
//
// See the geom package for the primary consumer.
package logmsg
