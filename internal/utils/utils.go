package utils

import "github.com/hailam/linegen/internal/ports"

// Alphabet is the set of characters emitted in corpus lines.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// FillLetters overwrites every byte of dst with a letter from Alphabet,
// taking one draw from src per byte.
func FillLetters(dst []byte, src ports.RandomSource) {
	for i := range dst {
		dst[i] = 'a' + byte(src.Uint32()%uint32(len(Alphabet)))
	}
}

// IsLetterLine reports whether line is non-empty and made only of Alphabet letters.
func IsLetterLine(line []byte) bool {
	if len(line) == 0 {
		return false
	}
	for _, c := range line {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
