package hexcodec

import (
	"encoding/binary"
	"io"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the default byte order of Reader and Writer.
	// Envelope integers are little-endian.
	Order binary.ByteOrder = LE
)

const BUFFER_SIZE = 4096

var empty [BUFFER_SIZE]byte

// Zero is an io.Reader that reads an infinite stream of zero bytes.
var Zero io.Reader = zero{}

type zero struct{}

func (z zero) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
