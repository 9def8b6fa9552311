package logger

import "github.com/leandrodaf/footswitch/sdk/contracts"

// NopLogger discards everything. It is the default for controllers, where the
// target may have no console at all.
type NopLogger struct{}

// NewNopLogger returns a logger that drops every message.
func NewNopLogger() contracts.Logger { return NopLogger{} }

func (NopLogger) Debug(string, ...contracts.Field) {}
func (NopLogger) Info(string, ...contracts.Field)  {}
func (NopLogger) Warn(string, ...contracts.Field)  {}
func (NopLogger) Error(string, ...contracts.Field) {}
func (NopLogger) SetLevel(contracts.LogLevel)      {}
