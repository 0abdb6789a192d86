package hexcodec

import "errors"

var (
	// ErrOddLength indicates hex input whose length is not a multiple of two.
	// It corresponds to envelope code CodeOddLength.
	ErrOddLength = errors.New("hexcodec: odd length hex input")

	// ErrInvalidChar indicates a byte outside '0'-'9', 'A'-'F' and 'a'-'f' in hex input.
	// It corresponds to envelope code CodeInvalidChar.
	ErrInvalidChar = errors.New("hexcodec: invalid hex character")

	// ErrUnknownCode is wrapped by Result.Err for error envelopes carrying a code
	// this package never produces.
	ErrUnknownCode = errors.New("hexcodec: unknown error code")

	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("hexcodec: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrUnknownTag is returned when parsing an envelope whose first byte is neither
	// the error tag nor the success tag.
	ErrUnknownTag = errors.New("hexcodec: unknown envelope tag")

	// ErrReservedField is returned when the reserved field of an error envelope is not zero.
	ErrReservedField = errors.New("hexcodec: non-zero reserved field in error envelope")

	// ErrTrailingData is returned when an error envelope has bytes after its fixed 9 byte frame.
	ErrTrailingData = errors.New("hexcodec: non-zero trailing data found after decoding")

	// ErrTruncatedData indicates that the envelope ended before its frame was complete.
	ErrTruncatedData = errors.New("hexcodec: truncated data")
)
