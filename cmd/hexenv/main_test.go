//go:build test

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oy3o/hexcodec"
	"github.com/stretchr/testify/assert"
)

func runWith(t *testing.T, stdin []byte, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, bytes.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestEncodeDecode(t *testing.T) {
	code, out, _ := runWith(t, []byte{0x00, 0xFF, 0x1A}, "encode")
	assert.Equal(t, 0, code)
	assert.Equal(t, "00ff1a", out)

	for _, in := range []string{"00FF1a", "00FF1a\n", "00FF1a\r\n"} {
		code, out, _ = runWith(t, []byte(in), "decode")
		assert.Equal(t, 0, code, "%q", in)
		assert.Equal(t, string([]byte{0x00, 0xFF, 0x1A}), out, "%q", in)
	}

	// Only one line ending is dropped.
	code, _, _ = runWith(t, []byte("00\n\n"), "decode")
	assert.Equal(t, 1, code)
}

func TestDecodeFailure(t *testing.T) {
	code, out, errOut := runWith(t, []byte("0g"), "decode")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid hex character")
	assert.Contains(t, errOut, "offset 1")
}

func TestInspect(t *testing.T) {
	code, out, _ := runWith(t, hexcodec.Decode([]byte("abcd")), "inspect")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ok 2 bytes\n", out)

	code, _, errOut := runWith(t, hexcodec.Decode([]byte("abc")), "inspect")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "error code=1 (odd length)")

	code, _, errOut = runWith(t, []byte{7}, "inspect")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown envelope tag")
}

func TestUsage(t *testing.T) {
	code, _, errOut := runWith(t, nil)
	assert.Equal(t, 2, code)
	assert.True(t, strings.HasPrefix(errOut, "usage:"))

	code, _, errOut = runWith(t, nil, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)
}
