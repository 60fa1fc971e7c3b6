// Package log provides centralized logging for searise using the zap logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger. With debug set, logs are
// human-readable development output at debug level; otherwise production
// JSON at info level.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		log.Sync()
	}
}

func logger() *zap.SugaredLogger {
	if log == nil {
		base, _ := zap.NewProduction(zap.AddCallerSkip(2))
		log = base.Sugar()
	}
	return log
}

// Package-level convenience functions
func Debug(args ...interface{}) {
	logger().Debug(args...)
}

func Debugf(template string, args ...interface{}) {
	logger().Debugf(template, args...)
}

func Info(args ...interface{}) {
	logger().Info(args...)
}

func Infof(template string, args ...interface{}) {
	logger().Infof(template, args...)
}

func Warn(args ...interface{}) {
	logger().Warn(args...)
}

func Warnf(template string, args ...interface{}) {
	logger().Warnf(template, args...)
}

func Error(args ...interface{}) {
	logger().Error(args...)
}

func Errorf(template string, args ...interface{}) {
	logger().Errorf(template, args...)
}
