package wire

import (
	"ImpulseGuard/internal/api"
	"ImpulseGuard/internal/api/config"
	"ImpulseGuard/internal/api/handler"
	"ImpulseGuard/internal/repository"
	"ImpulseGuard/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	eventRepo := repository.NewEventRepo(db)

	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		EventHandler:   handler.NewEventHandler(eventService),
		RewriteHandler: handler.NewRewriteHandler(),
	}

	router := api.SetupRouter(handlers, userService, db, cfg)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
