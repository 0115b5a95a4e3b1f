package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestZapWrapper_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.WithFields(map[string]interface{}{"operation": "getProfile"}).
		WithError(errors.New("boom")).
		Warn("request failed", map[string]interface{}{"status": 500})
	log.Debug("debug line", nil)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "getProfile", ctx["operation"])
	assert.Equal(t, int64(500), ctx["status"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "", MaskToken(""))
	assert.Equal(t, "***", MaskToken("short"))
	assert.Equal(t, "eyJhbGci...", MaskToken("eyJhbGciOiJIUzI1NiJ9.payload.sig"))
}

func TestNewNoOpLogger_DoesNotPanic(t *testing.T) {
	log := NewNoOpLogger()
	log.With(map[string]interface{}{"k": "v"}).Error("ignored", nil)
}
