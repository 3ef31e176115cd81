package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)

	log.Info().Msg("city registered")

	entry := decode(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "city registered", entry["message"])
	assert.Equal(t, "test-service", entry["service"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "test"}, &buf)

	log.Info().Msg("human readable")

	assert.Contains(t, buf.String(), "human readable")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		emit      func(*Logger)
		shouldLog bool
	}{
		{"debug dropped at info", "info", func(l *Logger) { l.Debug().Msg("x") }, false},
		{"info kept at info", "info", func(l *Logger) { l.Info().Msg("x") }, true},
		{"info dropped at warn", "warn", func(l *Logger) { l.Info().Msg("x") }, false},
		{"error kept at warn", "warn", func(l *Logger) { l.Error().Msg("x") }, true},
		{"debug kept at debug", "debug", func(l *Logger) { l.Debug().Msg("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewWithOutput(Config{Level: tt.level, Format: "json"}, &buf))
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestNewLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "verbose", Format: "json"}, &buf)

	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Info().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestNewLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("with caller")

	assert.Contains(t, decode(t, &buf), "caller")
}

func TestLogger_ContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	base.WithRequestID("req-1").WithComponent("registrar").WithContext("city", "Paris").Info().Msg("ctx")

	entry := decode(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "registrar", entry["component"])
	assert.Equal(t, "Paris", entry["city"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("discarded")
	})
}

func TestGlobal(t *testing.T) {
	t.Cleanup(func() { SetGlobal(nil) })

	SetGlobal(nil)
	assert.NotNil(t, Global(), "a default logger is created lazily")

	var buf bytes.Buffer
	SetGlobal(NewWithOutput(Config{Level: "debug", Format: "json"}, &buf))

	Warn().Str("trigger", "city").Msg("derivation failed")

	entry := decode(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "city", entry["trigger"])
}
