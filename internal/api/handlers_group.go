package api

import "ImpulseGuard/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler    *handler.UserHandler
	EventHandler   *handler.EventHandler
	RewriteHandler *handler.RewriteHandler
}
