package hexcodec

import "encoding/binary"

// The accessors below read raw envelopes as found on the wire. They look only
// at the length and the tag byte and fall back to a safe default for anything
// else, so they can be called on untrusted or foreign buffers.

// IsError reports whether doc is an error envelope. An empty buffer counts
// as an error, never as an empty success.
func IsError(doc []byte) bool {
	return len(doc) == 0 || doc[0] == tagError
}

// ErrorCode returns the code of an error envelope, or 0 when doc is not one.
//
// A genuine code 0 cannot be told apart from "no error"; check IsError first.
func ErrorCode(doc []byte) int32 {
	if len(doc) < 5 || doc[0] != tagError {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(doc[1:5]))
}

// Payload returns a copy of the payload of a success envelope, or an empty
// slice for anything else. It does not signal failure; check IsError first.
func Payload(doc []byte) []byte {
	if len(doc) < 1 || doc[0] != tagSuccess {
		return []byte{}
	}
	return append([]byte{}, doc[1:]...)
}
