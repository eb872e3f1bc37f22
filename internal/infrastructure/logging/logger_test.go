package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		level   zapcore.Level
		wantErr bool
	}{
		{name: "production default", cfg: Config{}, level: zapcore.InfoLevel},
		{name: "development default", cfg: Config{Development: true}, level: zapcore.DebugLevel},
		{name: "explicit level", cfg: Config{Level: "warn"}, level: zapcore.WarnLevel},
		{name: "stderr output", cfg: Config{Level: "error", Output: "stderr"}, level: zapcore.ErrorLevel},
		{name: "bad level", cfg: Config{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.level))
			assert.False(t, logger.Core().Enabled(tt.level-1))
		})
	}
}

func TestForCall(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := &Logger{Logger: zap.New(core)}

	id := "req_01"
	logger.ForCall("ntp.euclid", &types.Context{RequestID: &id, Source: "cli"}).Info("done")
	logger.ForCall("ntp.goldbach", nil).Debug("rejected", Reason(&id))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]interface{}{
		"tool":       "ntp.euclid",
		"request_id": "req_01",
		"source":     "cli",
	}, entries[0].ContextMap())
	assert.Equal(t, map[string]interface{}{
		"tool":   "ntp.goldbach",
		"reason": "req_01",
	}, entries[1].ContextMap())
}

func TestCallOmitsUnknownFields(t *testing.T) {
	fields := Call("ntp.primes", &types.Context{})
	require.Len(t, fields, 1)
	assert.Equal(t, "tool", fields[0].Key)
}

func TestChildLoggers(t *testing.T) {
	logger := NewNop().Named("provider").With(Tool("ntp.euclid"))
	require.NotNil(t, logger)
	logger.Info("still a no-op")
}
