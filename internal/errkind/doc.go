// Package errkind defines the failure kinds reported by the remapping core.
//
// Every failed operation returns exactly one *Error carrying one Kind:
//   - InvalidInterval: a zero-length or overflowing interval was supplied
//   - MalformedStage: a stage's mappings overlap in their source domain
//   - SearchExhausted: a bounded inverse search hit its candidate limit
//
// Callers match kinds with errors.Is against the Err* sentinels.
package errkind
