package mocks

import "github.com/haguru/persona/internal/interfaces"

// NoopLogger discards everything. Tests use it where log output is noise.
type NoopLogger struct{}

func NewNoopLogger() interfaces.Logger { return &NoopLogger{} }

func (l *NoopLogger) Info(msg string, keyvals ...interface{})  {}
func (l *NoopLogger) Warn(msg string, keyvals ...interface{})  {}
func (l *NoopLogger) Error(msg string, keyvals ...interface{}) {}
func (l *NoopLogger) Debug(msg string, keyvals ...interface{}) {}
func (l *NoopLogger) SetLevel(level string)                    {}
func (l *NoopLogger) WithContext(ctx map[string]interface{}) interfaces.Logger {
	return l
}
