package logging

import (
	"os"

	"github.com/iburimskiy/particle-field/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing to ws. An unparsable level falls back
// to info.
func New(cfg config.LogConfig, ws zapcore.WriteSyncer) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if cfg.Color {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("particlefield")
}

// NewStdout is New with console output on a locked stdout.
func NewStdout(cfg config.LogConfig) *zap.Logger {
	return New(cfg, zapcore.Lock(os.Stdout))
}
