package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Mod is a modulo that is never negative for a positive n.
func Mod[A constraints.Integer](a A, n A) A {
	res := a % n
	if res < 0 {
		res += n
	}
	return res
}

// BaseLetter is the first character of a spelling, upper-cased.
func BaseLetter(note string) string {
	if note == "" {
		return ""
	}
	c := note[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return string(c)
}

func IndexOf[A comparable](s []A, v A) int {
	return slices.Index(s, v)
}
