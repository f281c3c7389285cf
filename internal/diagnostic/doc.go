// Package diagnostic collects structured findings produced while validating
// a parsed almanac before it is turned into a pipeline.
//
// Key capabilities:
//   - Overlapping mapping reports naming both offenders
//   - Degenerate (zero-length or overflowing) mapping and seed range errors
//   - Warnings for suspicious but legal input, such as empty stages
//   - A combined error value for callers that only need pass/fail
package diagnostic
