// Package zap adapts a *zap.Logger to hexcodec.Logger.
package zap

import (
	"github.com/oy3o/hexcodec"
	"go.uber.org/zap"
)

var _ hexcodec.Logger = ZapLogger{}

// ZapLogger forwards hexcodec log calls to L, one zap field per Fields entry.
type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f hexcodec.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f hexcodec.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f hexcodec.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f hexcodec.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f hexcodec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
