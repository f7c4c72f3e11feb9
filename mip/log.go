package mip

import "fmt"

type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// Logf writes a formatted message to the model's logger. It is used
// by solver backends to surface progress information.
func (model *Model) Logf(format string, v ...interface{}) {
	model.mu.RLock()
	logger := model.logger
	model.mu.RUnlock()

	logger.Print(fmt.Sprintf(format, v...))
}
