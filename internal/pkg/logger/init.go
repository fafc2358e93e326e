package logger

import (
	"Blogly/internal/api/config"
	"fmt"
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer = os.Stdout

// InitLogger 初始化全局 slog，配置了 file 时同时写入文件
func InitLogger(cfg config.LogConfig) error {
	var level log.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	opts := &log.HandlerOptions{Level: level}
	hStdout := log.NewJSONHandler(os.Stdout, opts)

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		finalHandler = &TeeHandler{
			handlers: []log.Handler{hStdout, log.NewJSONHandler(f, opts)},
		}
		LogWriter = io.MultiWriter(os.Stdout, f)
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
	return nil
}
