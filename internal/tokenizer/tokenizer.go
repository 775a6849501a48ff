// Package tokenizer splits lines of text into words.
//
// A word is a maximal run of characters that are not delimiters. Whitespace
// and the marks ! ? : ; always delimit. A comma or period delimits unless it
// sits between two digits, so "350,000.56" and "18.05" survive as single
// words while "end." and "35,abc" split.
package tokenizer

import "unicode/utf8"

// Words returns the words of line in the order they appear. Empty tokens
// are never produced, and an empty or delimiter-only line yields nil.
func Words(line string) []string {
	var words []string
	eachSpan(line, func(word string) {
		words = append(words, word)
	})
	return words
}

// Len reports the length of a word in characters (code points).
func Len(word string) int {
	return utf8.RuneCountInString(word)
}

// Each calls fn with the length of every word in line without allocating
// the intermediate slice.
func Each(line string, fn func(length int)) {
	eachSpan(line, func(word string) {
		fn(Len(word))
	})
}

// eachSpan calls fn with every maximal non-delimiter run of line, in order.
// The words are substrings of line.
func eachSpan(line string, fn func(word string)) {
	start := -1
	for i := 0; i < len(line); i++ {
		if isDelimiter(line, i) {
			if start >= 0 {
				fn(line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fn(line[start:])
	}
}

// isDelimiter inspects a single byte. Every delimiter is ASCII, and bytes of
// a multi-byte UTF-8 sequence are never ASCII, so byte-wise scanning never
// cuts a character in half.
func isDelimiter(line string, i int) bool {
	switch line[i] {
	case ' ', '\t', '\n', '\v', '\f', '\r', '!', '?', ':', ';':
		return true
	case ',', '.':
		return !(i > 0 && isDigit(line[i-1]) && i+1 < len(line) && isDigit(line[i+1]))
	default:
		return false
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
