package variant

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package logger. Contract violations are logged
// at error level before the offending call panics.
// This must be called before any container is used.
func SetLogger(l *zap.Logger) {
	logger = l
}

// violation logs err and returns it for the caller to panic with.
func violation(err *errors.Error) *errors.Error {
	Logger().Error("variant contract violation",
		zap.String("phase", string(err.Phase)),
		zap.String("kind", string(err.Kind)),
		zap.String("want", err.Want),
		zap.String("have", err.Have),
		zap.String("detail", err.Detail))
	return err
}
