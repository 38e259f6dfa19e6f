package logging

import (
	"fmt"

	"github.com/go-kit/kit/log"
	"go.uber.org/zap"
)

// zapLogger adapts a zap logger to the go-kit log.Logger surface used throughout
// this library.  Hosts standardized on zap can pass the result anywhere a
// log.Logger is accepted, e.g. binsem.WithPerfWarnings.
type zapLogger struct {
	zap *zap.Logger
}

func (zl zapLogger) Log(keyvals ...interface{}) error {
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fields = append(fields, zap.Any(fmt.Sprint(keyvals[i]), keyvals[i+1]))
	}

	zl.zap.Info("", fields...)
	return nil
}

// NewZapLogger wraps a zap logger in the go-kit log.Logger interface.
// A nil zap logger yields the package's default NOP logger.
func NewZapLogger(z *zap.Logger) log.Logger {
	if z == nil {
		return DefaultLogger()
	}

	return zapLogger{zap: z}
}
