package api

import (
	"ImpulseGuard/internal/api/config"
	"ImpulseGuard/internal/api/middleware"
	"ImpulseGuard/internal/pkg/logger"
	"ImpulseGuard/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(group *HandlersGroup, userSvc service.UserService, db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & CORS & Logger
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	logger.SetupGin(r)

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 无需登录即可访问的接口
	r.POST("/register", group.UserHandler.Register)
	r.POST("/login", group.UserHandler.Login)
	r.POST("/rewrite", group.RewriteHandler.Rewrite)

	authGroup := r.Group("")
	authGroup.Use(middleware.AuthMiddleware(userSvc))
	{
		authGroup.POST("/event", group.EventHandler.SaveEvent)
		authGroup.GET("/summary", group.EventHandler.GetSummary)
		authGroup.GET("/summary/full", group.EventHandler.GetFullSummary)
		authGroup.POST("/seed-demo", group.EventHandler.SeedDemo)
	}

	return r
}
