package hexcodec

// Coder runs the package level codec functions with logging and
// outcome counting. A Coder holds no per-call state; one value can serve
// concurrent callers.
type Coder struct {
	log   Logger
	stats *Stats
}

// Option configures a Coder.
type Option func(*Coder)

// WithLogger sets the logger used for decode failures. Nil disables logging.
func WithLogger(l Logger) Option {
	return func(c *Coder) {
		if l == nil {
			l = NopLogger{}
		}
		c.log = l
	}
}

// WithStats makes the Coder record outcomes into s.
func WithStats(s *Stats) Option {
	return func(c *Coder) { c.stats = s }
}

// NewCoder returns a Coder. Without options it logs nothing and keeps
// its own Stats.
func NewCoder(opts ...Option) *Coder {
	c := &Coder{log: NopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	if c.stats == nil {
		c.stats = NewStats()
	}
	return c
}

// Stats returns the collector the Coder records into.
func (c *Coder) Stats() *Stats { return c.stats }

// Encode is Encode with outcome counting.
func (c *Coder) Encode(src []byte) []byte {
	c.stats.recordEncode()
	return Encode(src)
}

// DecodeResult is DecodeResult with outcome counting and failure logging.
func (c *Coder) DecodeResult(src []byte) Result {
	r := DecodeResult(src)
	c.stats.recordDecode(r)
	if r.IsError() {
		c.log.Debug("hex decode failed", Fields{
			"code":   int32(r.Code()),
			"reason": r.Code().String(),
			"len":    len(src),
		})
	}
	return r
}

// Decode returns the Result Envelope of DecodeResult.
func (c *Coder) Decode(src []byte) []byte {
	return c.DecodeResult(src).Bytes()
}

// DecodeString is DecodeString with outcome counting and failure logging.
func (c *Coder) DecodeString(s string) ([]byte, error) {
	out, code, pos := decode([]byte(s))
	if code != CodeNone {
		err := decodeError(s, code, pos)
		c.stats.recordDecode(Fail(code))
		c.log.Debug("hex decode failed", Fields{"code": int32(code), "error": err.Error(), "len": len(s)})
		return nil, err
	}
	c.stats.recordDecode(Ok(out))
	return out, nil
}
