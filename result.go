package hexcodec

import (
	"bytes"
	"fmt"
	"io"
)

// Code is the numeric failure reason carried by an error envelope.
// The set of codes this package produces is closed.
type Code int32

const (
	// CodeNone is what ErrorCode reports for buffers that are not error envelopes.
	CodeNone Code = 0
	// CodeOddLength reports hex input of odd length.
	CodeOddLength Code = 1
	// CodeInvalidChar reports a non-hex byte in the input.
	CodeInvalidChar Code = 2
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeOddLength:
		return "odd length"
	case CodeInvalidChar:
		return "invalid character"
	}
	return fmt.Sprintf("code(%d)", int32(c))
}

// Envelope frame layout.
const (
	tagError   byte = 0
	tagSuccess byte = 1

	errorFrameSize = 1 + 4 + 4 // tag | code u32 | reserved u32
)

// Result is the outcome of a decode: either a payload or a failure code.
// Its binary form is the Result Envelope:
//
//	error   : 0x00 | code (u32 LE) | reserved (u32 LE, zero)
//	success : 0x01 | payload
//
// The zero value is an error result with code CodeNone, mirroring
// IsError on an empty buffer.
type Result struct {
	ok      bool
	code    Code
	payload []byte
}

// Statically assert that Result implements Codec.
var _ Codec = (*Result)(nil)

// Ok returns a successful Result wrapping payload. The slice is not copied.
func Ok(payload []byte) Result {
	if payload == nil {
		payload = []byte{}
	}
	return Result{ok: true, payload: payload}
}

// Fail returns an error Result with the given code.
func Fail(code Code) Result {
	return Result{code: code}
}

// IsError reports whether r is a failure.
func (r Result) IsError() bool { return !r.ok }

// Code returns the failure code, or CodeNone for a successful Result.
func (r Result) Code() Code { return r.code }

// Payload returns the decoded bytes, or an empty slice for an error Result.
func (r Result) Payload() []byte {
	if !r.ok {
		return []byte{}
	}
	return r.payload
}

// Err converts the Result into a Go error matching ErrOddLength, ErrInvalidChar
// or ErrUnknownCode. It returns nil on success.
func (r Result) Err() error {
	if r.ok {
		return nil
	}
	switch r.code {
	case CodeOddLength:
		return ErrOddLength
	case CodeInvalidChar:
		return ErrInvalidChar
	}
	return fmt.Errorf("%w: %d", ErrUnknownCode, int32(r.code))
}

// Size returns the length of the envelope in bytes.
func (r Result) Size() int {
	if r.ok {
		return 1 + len(r.payload)
	}
	return errorFrameSize
}

// AppendBinary appends the envelope to b.
func (r Result) AppendBinary(b []byte) ([]byte, error) {
	return r.appendTo(b), nil
}

func (r Result) appendTo(b []byte) []byte {
	buf := bytes.NewBuffer(b)
	bw, _ := NewWriter(buf)
	r.writeFrame(bw)
	return buf.Bytes()
}

// Bytes returns a newly allocated envelope.
func (r Result) Bytes() []byte {
	return r.appendTo(make([]byte, 0, r.Size()))
}

// WriteTo implements io.WriterTo, streaming the envelope to w.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	bw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	r.writeFrame(bw)
	return bw.Result()
}

// writeFrame is the only envelope serializer. Envelope integers are
// little-endian whatever Order is set to.
func (r Result) writeFrame(bw *Writer) {
	bw.WithByteOrder(LE)
	if r.ok {
		bw.WriteUint8(tagSuccess)
		bw.WriteBytes(r.payload)
		return
	}
	bw.WriteUint8(tagError)
	bw.WriteUint32(uint32(r.code))
	bw.WriteZeros(4)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r Result) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(r)
}

// MarshalTo writes the envelope into p without allocating.
// It returns io.ErrShortWrite if p is smaller than Size.
func (r Result) MarshalTo(p []byte) (int, error) {
	return MarshalToGeneric(r, p)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Unlike the
// IsError/ErrorCode/Payload accessors it rejects malformed envelopes.
// The payload is copied out of data.
func (r *Result) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty envelope", ErrTruncatedData)
	}
	rd, err := NewReader(NewBytesReader(data))
	if err != nil {
		return err
	}
	rd.WithByteOrder(LE)

	var tag uint8
	rd.ReadUint8(&tag)
	switch tag {
	case tagSuccess:
		payload := make([]byte, len(data)-1)
		rd.ReadBytesTo(payload)
		if err := rd.Err(); err != nil {
			return err
		}
		*r = Result{ok: true, payload: payload}
		return nil

	case tagError:
		var code, reserved uint32
		rd.ReadUint32(&code)
		rd.ReadUint32(&reserved)
		if err := rd.Err(); err != nil {
			return fmt.Errorf("%w: error envelope of %d bytes: %w", ErrTruncatedData, len(data), err)
		}
		if reserved != 0 {
			return fmt.Errorf("%w: 0x%08x", ErrReservedField, reserved)
		}
		if len(data) > errorFrameSize {
			return fmt.Errorf("%w: %d bytes after error frame", ErrTrailingData, len(data)-errorFrameSize)
		}
		*r = Result{code: Code(int32(code))}
		return nil
	}
	return fmt.Errorf("%w: 0x%02x", ErrUnknownTag, tag)
}

// ReadFrom implements io.ReaderFrom. A success envelope has no length
// prefix, so the whole stream up to EOF is consumed.
func (r *Result) ReadFrom(rd io.Reader) (int64, error) {
	return ReadFromGeneric(r, rd)
}
