// Package main provides the CLI entrypoint for range-remapper.
//
// range-remapper reads an almanac (seeds plus an ordered list of
// "x-to-y map:" stages) and answers minimum-location queries:
//   - points: seeds are individual values
//   - ranges: seeds are (start, length) pairs, solved on whole intervals
//   - search: seeds are pairs, solved by bounded inverse scanning
package main

import (
	"errors"
	"os"

	"range-remapper/internal/errkind"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps failure kinds to distinct process exit statuses.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errkind.ErrSearchExhausted):
		return 3
	case errors.Is(err, errkind.ErrMalformedStage):
		return 4
	case errors.Is(err, errkind.ErrInvalidInterval):
		return 5
	default:
		return 1
	}
}
