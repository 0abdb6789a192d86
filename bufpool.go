package hexcodec

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses buffers for reading whole envelopes off a stream.
// We pool *bytes.Buffer because they are easily reset and resized.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, BUFFER_SIZE))
	},
}
