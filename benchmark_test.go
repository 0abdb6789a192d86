package hexcodec

import "testing"

func benchInput() []byte {
	b := make([]byte, 1024)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func BenchmarkEncode(b *testing.B) {
	src := benchInput()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Encode(src)
	}
}

func BenchmarkDecode(b *testing.B) {
	src := Encode(benchInput())
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Decode(src)
	}
}

func BenchmarkResultMarshalTo(b *testing.B) {
	r := DecodeResult(Encode(benchInput()))
	buf := make([]byte, r.Size())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.MarshalTo(buf)
	}
}
