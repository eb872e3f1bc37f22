package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// Logger wraps zap.Logger with the fields calculations are logged by.
type Logger struct {
	*zap.Logger
}

// Config selects level, encoding and destination.
type Config struct {
	Level       string // "debug", "info", "warn", "error"; empty keeps the mode's default
	Development bool   // colour console output with caller and stack traces
	Output      string // "stdout" when empty
}

// New builds a logger: JSON in production, console in development.
func New(cfg Config) (*Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc.Sampling = nil
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.MessageKey = "message"
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	zc.OutputPaths = []string{output}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{Logger: logger}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Named returns a child logger with the given name segment.
func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name)}
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

// ForCall returns a child logger tagged with the tool and the caller's
// request ID and source.
func (l *Logger) ForCall(toolID string, appCtx *types.Context) *Logger {
	return l.With(Call(toolID, appCtx)...)
}

// Call returns the fields identifying one tool call. Request ID and source
// are omitted when unknown.
func Call(toolID string, appCtx *types.Context) []zap.Field {
	fields := []zap.Field{Tool(toolID)}
	if appCtx == nil {
		return fields
	}
	if appCtx.RequestID != nil {
		fields = append(fields, RequestID(*appCtx.RequestID))
	}
	if appCtx.Source != "" {
		fields = append(fields, zap.String("source", appCtx.Source))
	}
	return fields
}

func Tool(id string) zap.Field { return zap.String("tool", id) }

func RequestID(id string) zap.Field { return zap.String("request_id", id) }

// Reason is why an input was rejected
func Reason(msg *string) zap.Field { return zap.Stringp("reason", msg) }

func Status(code int) zap.Field { return zap.Int("status", code) }

func Latency(d time.Duration) zap.Field { return zap.Duration("latency", d) }
