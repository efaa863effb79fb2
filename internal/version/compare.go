package version

import (
	"strconv"
	"strings"
)

// Display trims whitespace and a leading v or V.
func Display(v string) string {
	return strings.TrimLeft(strings.TrimSpace(v), "vV")
}

// ParseNumbers returns the leading numeric components of v. Parsing of a
// component stops at its first non-digit, so "1.2.3-beta" yields
// [1 2 3] and "1.x" yields [1 0].
func ParseNumbers(v string) []int {
	v = Display(v)
	if i := strings.IndexAny(v, "-+ "); i >= 0 {
		v = v[:i]
	}
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ".")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		end := 0
		for end < len(p) && p[end] >= '0' && p[end] <= '9' {
			end++
		}
		n, err := strconv.Atoi(p[:end])
		if err != nil {
			n = 0
		}
		nums = append(nums, n)
	}
	return nums
}

// Compare returns -1, 0 or 1 as a is older than, equal to, or newer than
// b. Missing components count as zero, so "1.2" equals "1.2.0".
func Compare(a, b string) int {
	na, nb := ParseNumbers(a), ParseNumbers(b)
	for i := 0; i < max(len(na), len(nb)); i++ {
		var x, y int
		if i < len(na) {
			x = na[i]
		}
		if i < len(nb) {
			y = nb[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// IsNewer reports whether candidate is a newer release than current.
func IsNewer(candidate, current string) bool {
	return Compare(candidate, current) > 0
}
