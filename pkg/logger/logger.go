package logger

import (
	"fmt"
	"os"

	"github.com/olobando-hub/BicPop-Web/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

// InitLogger installs the global logger used through zap.L().
func InitLogger(conf *config.Config) error {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	enc, err := encoder(conf.LogFormat)
	if err != nil {
		return err
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(lvl))
	logger := zap.New(core, zap.ErrorOutput(zapcore.Lock(os.Stderr))).
		Named("bicpop").
		With(zap.Int("pid", os.Getpid()))

	zap.ReplaceGlobals(logger)
	return nil
}

// encoder picks the colored console layout for terminals and json for
// collectors. An empty format means console.
func encoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		cfg.CallerKey = zapcore.OmitKey
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}
