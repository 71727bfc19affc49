package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huynhanx03/go-spatial/pkg/settings"
)

// Logger wraps zap with this repo's default encoding and rotation setup.
type Logger struct {
	*zap.Logger
}

// New builds a logger from the Logger config section. When FileLogName is set
// the log is written both to stdout and to a size-rotated file.
func New(cfg settings.Logger) *Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.LogLevel); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	ws := zapcore.AddSync(os.Stdout)
	if cfg.FileLogName != "" {
		rotated := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		ws = zapcore.NewMultiWriteSyncer(ws, rotated)
	}

	core := zapcore.NewCore(encoder, ws, level)
	return &Logger{zap.New(core, zap.AddCaller())}
}
