// Package sentence provides word-level string transforms and a Caesar cipher.
package sentence

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const alphabetSize = 26

// ReverseWords reverses the characters of every space-separated word and
// keeps the words in place. Consecutive spaces yield empty words, which are
// kept, so the spacing of text survives.
func ReverseWords(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		words[i] = reverse(w)
	}
	return strings.Join(words, " ")
}

// reverse reverses s by code point. Bytes that are not valid UTF-8 are moved
// as single units and kept as they are.
func reverse(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for end := len(s); end > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		sb.WriteString(s[end-size : end])
		end -= size
	}
	return sb.String()
}

// ReverseSentence reverses the order of the space-separated words.
func ReverseSentence(text string) string {
	words := strings.Split(text, " ")
	slices.Reverse(words)
	return strings.Join(words, " ")
}

// Encrypt shifts ASCII letters shift places along their own case's alphabet,
// wrapping around. Any shift is accepted. Everything else passes through.
func Encrypt(text string, shift int) string {
	k := rune(((shift % alphabetSize) + alphabetSize) % alphabetSize)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+k)%alphabetSize
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+k)%alphabetSize
		}
		return r
	}, text)
}

// Decrypt undoes Encrypt with the same shift.
func Decrypt(text string, shift int) string {
	// -shift overflows for math.MinInt; reducing first keeps it in range.
	return Encrypt(text, -(shift % alphabetSize))
}
