package hexcodec

import "fmt"

// EncodedLen returns the length of the hex text for n source bytes.
func EncodedLen(n int) int { return n * 2 }

// Encode returns the lowercase hex text of src. It never fails and
// returns an empty slice for empty input.
func Encode(src []byte) []byte {
	return AppendEncode(make([]byte, 0, EncodedLen(len(src))), src)
}

// AppendEncode appends the lowercase hex text of src to dst and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	for _, c := range src {
		dst = append(dst, DigitToHexChar(c/16), DigitToHexChar(c%16))
	}
	return dst
}

// EncodeToString returns the lowercase hex text of src as a string.
func EncodeToString(src []byte) string {
	return string(Encode(src))
}

// decode runs the single pass shared by every decode entry point.
// On failure it returns the failure code and the offset of the offending byte.
func decode(src []byte) ([]byte, Code, int) {
	n := len(src)
	if n%2 != 0 {
		return nil, CodeOddLength, n
	}
	out := make([]byte, 0, n/2)
	for i := 0; i < n; i += 2 {
		hi, ok := ParseNibble(src[i])
		if !ok {
			return nil, CodeInvalidChar, i
		}
		lo, ok := ParseNibble(src[i+1])
		if !ok {
			return nil, CodeInvalidChar, i + 1
		}
		out = append(out, hi<<4|lo)
	}
	return out, CodeNone, 0
}

// DecodeResult decodes the hex text src into a Result.
// Odd length input fails with CodeOddLength before any byte is inspected;
// the first non-hex byte fails with CodeInvalidChar and discards the partial payload.
// Empty input succeeds with an empty payload.
func DecodeResult(src []byte) Result {
	out, code, _ := decode(src)
	if code != CodeNone {
		return Fail(code)
	}
	return Ok(out)
}

// Decode decodes the hex text src and returns the Result Envelope bytes.
func Decode(src []byte) []byte {
	return DecodeResult(src).Bytes()
}

// DecodeString decodes the hex text s. The error wraps ErrOddLength or
// ErrInvalidChar and names the offending position.
func DecodeString(s string) ([]byte, error) {
	out, code, pos := decode([]byte(s))
	if code != CodeNone {
		return nil, decodeError(s, code, pos)
	}
	return out, nil
}

func decodeError(s string, code Code, pos int) error {
	if code == CodeOddLength {
		return fmt.Errorf("%w: length %d", ErrOddLength, pos)
	}
	return fmt.Errorf("%w: %q at offset %d", ErrInvalidChar, s[pos], pos)
}
