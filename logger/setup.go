package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around Uber's Zap logger.
//
// It exposes a simplified, map-based API so that call sites don't need to
// build zap.Field slices by hand. The underlying zap.Logger stays accessible
// for the rare case where Zap-specific functionality is needed.
type Logger struct {
	// Zap is the underlying zap.Logger instance.
	Zap *zap.Logger
}

// NewLoggerClient initializes a configured Zap logger.
//
// The logger emits JSON entries with ISO8601 timestamps, capitalized level
// names and caller information, and carries the process id and service name
// as initial fields on every entry. Output goes to stderr.
//
// If the underlying Zap build fails, the process terminates — a service
// without a logger is not worth starting.
func NewLoggerClient(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zapLogger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{Zap: zapLogger}
}
