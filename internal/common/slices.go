package common

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Flatten concatenates parts into one slice, preserving order.
func Flatten[S ~[]E, E any](parts []S) S {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	out := make(S, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Clone returns a copy of s that shares no backing array with it.
// A nil input yields nil.
func Clone[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}

	return append(S(nil), s...)
}
