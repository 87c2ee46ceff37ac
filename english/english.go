// Package english scores byte sequences by how much they look like English text.
package english

import (
	"io"
)

// Threshold is the smallest mean per-byte Score of English text.
const Threshold = 0.045

// frequencies holds the relative frequency of space and of each letter.
var frequencies = [256]float64{
	' ': 0.13,
	'E': 0.12702,
	'T': 0.09056,
	'A': 0.08167,
	'O': 0.07507,
	'I': 0.06966,
	'N': 0.06749,
	'S': 0.06327,
	'H': 0.06094,
	'R': 0.05987,
	'D': 0.04253,
	'L': 0.04025,
	'C': 0.02782,
	'U': 0.02758,
	'M': 0.02406,
	'W': 0.02361,
	'F': 0.02228,
	'G': 0.02015,
	'Y': 0.01974,
	'P': 0.01929,
	'B': 0.01492,
	'V': 0.00978,
	'K': 0.00772,
	'J': 0.00153,
	'X': 0.00150,
	'Q': 0.00095,
	'Z': 0.00074,
}

// Score adds up the letter frequencies of a buffer, ignoring case.
func Score(buf []byte) float64 {
	var res float64
	for _, b := range buf {
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		res += frequencies[b]
	}
	return res
}

// IsEnglish reports whether the mean score of a buffer reaches Threshold.
func IsEnglish(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	return Score(buf)/float64(len(buf)) >= Threshold
}

// SymbolCounts reads sample text and returns a map of UTF-8 symbol counts.
func SymbolCounts(in io.Reader) (map[rune]int, error) {
	buf, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	m := make(map[rune]int)
	for _, r := range string(buf) {
		m[r]++
	}
	return m, nil
}

// SymbolFrequencies reads sample text and returns a map of UTF-8 symbol frequencies.
func SymbolFrequencies(in io.Reader) (map[rune]float64, error) {
	counts, err := SymbolCounts(in)
	if err != nil {
		return nil, err
	}
	var total int
	for _, n := range counts {
		total += n
	}
	m := make(map[rune]float64, len(counts))
	for r, n := range counts {
		m[r] = float64(n) / float64(total)
	}
	return m, nil
}

// ScoreFunc reads sample text and returns a scoring function.
func ScoreFunc(in io.Reader) (func([]byte) float64, error) {
	m, err := SymbolFrequencies(in)
	if err != nil {
		return nil, err
	}
	// The frequency map is retained in a closure.
	return func(buf []byte) float64 {
		var res float64
		for _, r := range string(buf) {
			res += m[r]
		}
		return res
	}, nil
}
