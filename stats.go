package hexcodec

import "github.com/puzpuzpuz/xsync/v4"

// Stats counts Coder outcomes. It is safe for concurrent use and may be
// shared between Coders.
type Stats struct {
	encodes  *xsync.Counter
	decodes  *xsync.Counter
	failures *xsync.Map[Code, *xsync.Counter]
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Encodes  int64
	Decodes  int64
	Failures map[Code]int64
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{
		encodes:  xsync.NewCounter(),
		decodes:  xsync.NewCounter(),
		failures: xsync.NewMap[Code, *xsync.Counter](),
	}
}

func (s *Stats) recordEncode() { s.encodes.Inc() }

func (s *Stats) recordDecode(r Result) {
	s.decodes.Inc()
	if !r.IsError() {
		return
	}
	c, ok := s.failures.Load(r.Code())
	if !ok {
		c, _ = s.failures.LoadOrStore(r.Code(), xsync.NewCounter())
	}
	c.Inc()
}

// Snapshot returns the current counts. Counters updated concurrently with
// Snapshot may or may not be reflected.
func (s *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Encodes:  s.encodes.Value(),
		Decodes:  s.decodes.Value(),
		Failures: make(map[Code]int64, s.failures.Size()),
	}
	s.failures.Range(func(code Code, c *xsync.Counter) bool {
		snap.Failures[code] = c.Value()
		return true
	})
	return snap
}
