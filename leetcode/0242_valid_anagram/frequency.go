package validanagram

import (
	"iter"
	"unicode/utf8"
)

// Frequency maps each letter of a string to the number of times it occurs.
type Frequency map[rune]int

func NewFrequency(s string) Frequency {
	letters := make(Frequency)

	for c := range Letters(s) {
		letters[c]++
	}
	return letters
}

// Letters yields the runes of s. A byte that is not part of valid UTF-8 is
// yielded on its own as -1-b, a key no real rune can take, so that every key
// always stands for the same number of bytes.
func Letters(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				r = -1 - rune(s[i])
			}
			if !yield(r) {
				return
			}
			i += size
		}
	}
}

// Total returns the number of letters counted.
func (f Frequency) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Equal compares both key sets, so it does not rely on a length check.
func (f Frequency) Equal(other Frequency) bool {
	if len(f) != len(other) {
		return false
	}

	for k, v := range f {
		c, exists := other[k]
		if !exists || v != c {
			return false
		}
	}

	return true
}
