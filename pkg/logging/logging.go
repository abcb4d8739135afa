package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger = zap.NewNop()

// Setup builds the global logger writing to w. Debug mode uses zap's
// development config. Otherwise the logger only reports panics, so the
// notification is the single line a user sees for a failed run.
func Setup(debug bool, appName, appVersion string, w io.Writer) {
	var cfg zap.Config
	var encoder zapcore.Encoder

	if debug {
		cfg = zap.NewDevelopmentConfig()
		encoder = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DPanicLevel)
		encoder = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	}

	opts := []zap.Option{
		zap.AddCaller(),
		zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(w))),
		// Add default fields
		zap.Fields(
			zap.String("appName", appName),
			zap.String("appVersion", appVersion),
		),
	}
	if debug {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), cfg.Level)
	Logger = zap.New(core, opts...)
	zap.ReplaceGlobals(Logger)
}
