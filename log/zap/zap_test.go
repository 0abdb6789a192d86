//go:build test

package zap

import (
	"testing"

	"github.com/oy3o/hexcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}

	l.Debug("d", hexcodec.Fields{"len": 3})
	l.Info("i", nil)
	l.Warn("w", hexcodec.Fields{})
	l.Error("e", hexcodec.Fields{"code": int32(2)})

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.EqualValues(t, 3, entries[0].ContextMap()["len"])
	assert.EqualValues(t, 2, entries[3].ContextMap()["code"])
}

func TestCoderLogsDecodeFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := hexcodec.NewCoder(hexcodec.WithLogger(ZapLogger{L: zap.New(core)}))

	c.Decode([]byte("abc"))
	c.Decode([]byte("ab"))
	_, err := c.DecodeString("zz")
	require.ErrorIs(t, err, hexcodec.ErrInvalidChar)

	entries := logs.FilterMessage("hex decode failed").All()
	require.Len(t, entries, 2)
	assert.EqualValues(t, 1, entries[0].ContextMap()["code"])
	assert.Equal(t, "odd length", entries[0].ContextMap()["reason"])
	assert.EqualValues(t, 2, entries[1].ContextMap()["code"])
}
