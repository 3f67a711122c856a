package validanagram

import (
	"slices"
)

// IsAnagram reports whether candidate is a letter-for-letter rearrangement of
// word. Letters are compared as runes, case and whitespace included.
//
// Only the keys of word's table are checked. That is enough because the
// lengths are equal: once every rune of word is matched in candidate there
// are no bytes left over for an extra rune.
func IsAnagram(word, candidate string) bool {
	if len(word) != len(candidate) {
		return false
	}

	wordLetters := NewFrequency(word)
	candidateLetters := NewFrequency(candidate)

	for letter, count := range wordLetters {
		if candidateLetters[letter] != count {
			return false
		}
	}

	return true
}

// IsAnagramWithLookup uses a single table: counts from word are decremented
// by the runes of candidate.
func IsAnagramWithLookup(word, candidate string) bool {
	if len(word) != len(candidate) {
		return false
	}

	lookup := NewFrequency(word)

	for letter := range Letters(candidate) {
		if lookup[letter] == 0 {
			return false
		}
		lookup[letter]--
	}

	return true
}

// IsAnagramSorted compares the sorted runes of both strings.
func IsAnagramSorted(word, candidate string) bool {
	if len(word) != len(candidate) {
		return false
	}

	sortedWord := slices.Collect(Letters(word))
	sortedCandidate := slices.Collect(Letters(candidate))

	slices.Sort(sortedWord)
	slices.Sort(sortedCandidate)

	return slices.Equal(sortedWord, sortedCandidate)
}
