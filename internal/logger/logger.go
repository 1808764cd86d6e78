// internal/logger/logger.go
//
// Structured logger (Zap + Lumberjack).
//
// Context
// -------
// The logger is built from the LogConfig projection: level and encoder
// format come straight from LOG_LEVEL / LOG_FORMAT, and when LOG_FILE is
// set the sink is a Lumberjack writer that rotates by size and keeps
// LOG_BACKUP_COUNT old files — no external log-rotate job is required.
// Without a file, everything goes to stdout only.
//
// Usage
// -----
//
//	log, err := logger.New(cfg.LogConfig(), runningInTTY())
//	if err != nil { … }
//	log.Infow("settings loaded", "app", cfg.AppName)
//
// Notes
// -----
//   - Zap core uses ISO-8601 timestamps and lowercase levels.
//   - Format "console" selects the console encoder; anything else falls
//     back to JSON.
//   - The logger is installed as the process-wide default via
//     zap.ReplaceGlobals so zap.S() works everywhere after startup.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/orbitai/orbit/internal/types"
)

// New returns a *zap.SugaredLogger configured from cfg.  When a file sink
// is active and tee == true, a console core is also attached so an
// interactive session sees the same events.
func New(cfg types.LogConfig, tee bool) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("logger: bad level %q: %w", cfg.Level, err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder
	if strings.EqualFold(cfg.Format, "console") {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	var cores []zapcore.Core

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, err
		}
		fileSink := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSizeMB(cfg.MaxSize),
			MaxBackups: cfg.BackupCount,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(fileSink), level))

		if tee {
			cores = append(cores, zapcore.NewCore(
				zapcore.NewConsoleEncoder(encCfg),
				zapcore.AddSync(os.Stdout),
				level,
			))
		}
	} else {
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), level))
	}

	z := zap.New(zapcore.NewTee(cores...)).Sugar()

	// Make this the global logger so zap.S() works everywhere after startup.
	zap.ReplaceGlobals(z.Desugar())

	z.Debugw("logger online", "level", level.String(), "file", cfg.File)
	return z, nil
}

// maxSizeMB converts the byte-denominated config value to Lumberjack's
// megabyte unit, rounding up so a small non-zero setting still rotates.
func maxSizeMB(bytes int) int {
	if bytes <= 0 {
		return 10
	}
	mb := (bytes + (1 << 20) - 1) / (1 << 20)
	if mb < 1 {
		mb = 1
	}
	return mb
}
