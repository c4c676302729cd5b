package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

// InitLogger 初始化全局 slog JSON 日志 输出到标准输出
func InitLogger() {
	LogWriter = os.Stdout

	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	logger := log.New(&ContextHandler{hStdout})
	log.SetDefault(logger)
}
