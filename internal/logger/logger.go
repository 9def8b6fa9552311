// Package logger provides the zap-backed implementation of contracts.Logger,
// plus a no-op logger for firmware builds and tests where nothing should be
// emitted.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leandrodaf/footswitch/sdk/contracts"
)

// ZapLogger implements contracts.Logger on top of Uber's zap.
type ZapLogger struct {
	logger *zap.Logger
	level  contracts.LogLevel
}

// NewZapLogger creates a production zap logger at InfoLevel.
func NewZapLogger() contracts.Logger {
	l, _ := zap.NewProduction()
	return &ZapLogger{logger: l, level: contracts.InfoLevel}
}

// NewDevelopmentLogger creates a human-readable zap logger at DebugLevel,
// suited to the host-side tooling.
func NewDevelopmentLogger() contracts.Logger {
	l, _ := zap.NewDevelopment()
	return &ZapLogger{logger: l, level: contracts.DebugLevel}
}

// Debug logs a message at the DEBUG level.
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, contracts.DebugLevel, msg, fields)
}

// Info logs a message at the INFO level.
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, contracts.InfoLevel, msg, fields)
}

// Warn logs a message at the WARN level.
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, contracts.WarnLevel, msg, fields)
}

// Error logs a message at the ERROR level.
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, contracts.ErrorLevel, msg, fields)
}

// SetLevel sets the minimum level that will be emitted.
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level = level
}

func (z *ZapLogger) log(zl zapcore.Level, cl contracts.LogLevel, msg string, fields []contracts.Field) {
	if cl < z.level {
		return
	}
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			zf = append(zf, zap.String(f.Key, v))
		case int:
			zf = append(zf, zap.Int(f.Key, v))
		case uint8:
			zf = append(zf, zap.Uint8(f.Key, v))
		case uint32:
			zf = append(zf, zap.Uint32(f.Key, v))
		case bool:
			zf = append(zf, zap.Bool(f.Key, v))
		case error:
			zf = append(zf, zap.Error(v))
		case fmt.Stringer:
			zf = append(zf, zap.Stringer(f.Key, v))
		default:
			zf = append(zf, zap.Any(f.Key, v))
		}
	}
	if ce := z.logger.Check(zl, msg); ce != nil {
		ce.Write(zf...)
	}
}
