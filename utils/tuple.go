package utils

// Unpack2 returns the first two elements of s. Missing elements are left zero.
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}

// Chunks2 splits s into consecutive pairs. A trailing odd element is returned as rest.
func Chunks2[Slice ~[]T, T any](s Slice) (pairs [][2]T, rest Slice) {
	pairs = make([][2]T, 0, len(s)/2)

	for len(s) >= 2 {
		a, b := Unpack2(s)
		pairs = append(pairs, [2]T{a, b})
		s = s[2:]
	}

	return pairs, s
}
