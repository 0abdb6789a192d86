package hexcodec

import "golang.org/x/exp/constraints"

// ASCII bounds of the three accepted hex digit ranges.
const (
	charDigitLo byte = '0' // 48
	charDigitHi byte = '9' // 57
	charUpperLo byte = 'A' // 65
	charUpperHi byte = 'F' // 70
	charLowerLo byte = 'a' // 97
	charLowerHi byte = 'f' // 102
)

// InvalidDigit is returned by HexCharToDigit for any byte that is not a hex digit.
const InvalidDigit = -1

// DigitToHexChar returns the lowercase ASCII hex digit for n.
// n must be in [0,16); other values produce an unspecified byte.
func DigitToHexChar[T constraints.Integer](n T) byte {
	if n < 10 {
		return charDigitLo + byte(n)
	}
	return charLowerLo + byte(n-10)
}

// HexCharToDigit returns the value of the hex digit c, accepting both cases,
// or InvalidDigit if c is outside '0'-'9', 'A'-'F' and 'a'-'f'.
func HexCharToDigit(c byte) int {
	if v, ok := ParseNibble(c); ok {
		return int(v)
	}
	return InvalidDigit
}

// ParseNibble is the checked form of HexCharToDigit.
func ParseNibble(c byte) (byte, bool) {
	switch {
	case c >= charDigitLo && c <= charDigitHi:
		return c - charDigitLo, true
	case c >= charUpperLo && c <= charUpperHi:
		return c - charUpperLo + 10, true
	case c >= charLowerLo && c <= charLowerHi:
		return c - charLowerLo + 10, true
	}
	return 0, false
}
