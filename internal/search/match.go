package search

import (
	"strings"
	"unicode/utf8"
)

// ContainsFold reports whether substr is within s, ignoring case. The
// comparison is literal: no pattern syntax is interpreted.
func ContainsFold(s, substr string) bool {
	start, _ := indexFold(s, substr)
	return start >= 0
}

// indexFold returns the byte range of the first case-insensitive occurrence
// of substr in s, or (-1, -1).
func indexFold(s, substr string) (int, int) {
	n := utf8.RuneCountInString(substr)
	if n == 0 {
		return 0, 0
	}
	for i := 0; i < len(s); {
		j, k := i, 0
		for k < n && j < len(s) {
			_, w := utf8.DecodeRuneInString(s[j:])
			j += w
			k++
		}
		if k < n {
			break
		}
		if equalFold(s[i:j], substr) {
			return i, j
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return -1, -1
}

// equalFold is strings.EqualFold except that invalid UTF-8 bytes only match
// the identical byte.
func equalFold(a, b string) bool {
	for a != "" && b != "" {
		ra, wa := utf8.DecodeRuneInString(a)
		rb, wb := utf8.DecodeRuneInString(b)
		if (ra == utf8.RuneError && wa == 1) || (rb == utf8.RuneError && wb == 1) {
			if wa != wb || a[0] != b[0] {
				return false
			}
		} else if !strings.EqualFold(a[:wa], b[:wb]) {
			return false
		}
		a, b = a[wa:], b[wb:]
	}
	return a == "" && b == ""
}
