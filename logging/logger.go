// Package logging builds the application logger.
// The terminal owns stdout and stderr while running, so log output only ever goes to a rotating file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/garapon/constants"
)

const timeFmt = "2006/01/02 15:04:05.000"

// Config selects where and how much to log
type Config struct {
	Enabled bool
	Dir     string
	Level   string
}

// New returns a file-backed logger, or a no-op logger when disabled
// The returned closer flushes and closes the file
func New(cfg Config) (*zap.Logger, func(), error) {
	if !cfg.Enabled {
		return zap.NewNop(), func() {}, nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = constants.LogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	lv := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
	} else {
		lv.SetLevel(zap.DebugLevel)
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.LogFileName),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(w), lv)
	logger := zap.New(core, zap.AddCaller())

	closer := func() {
		_ = logger.Sync()
		_ = w.Close()
	}
	return logger, closer, nil
}

// Path returns the log file location for a directory
func Path(dir string) string {
	if dir == "" {
		dir = constants.LogDir
	}
	return filepath.Join(dir, constants.LogFileName)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.ConsoleSeparator = " "
	return cfg
}
