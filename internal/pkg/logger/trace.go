package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey Context 与日志记录共用的追踪键
const TraceIDKey = "trace_id"

// ContextHandler 包装器 从 ctx 中提取 trace_id 附加到每条记录
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String("trace_id", traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
