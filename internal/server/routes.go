package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/quickfixlabs/receptionist/internal/config"
	"github.com/quickfixlabs/receptionist/internal/handlers"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

// Dependencies carries the wired handlers the router needs.
type Dependencies struct {
	Knowledge *handlers.KnowledgeHandler
	Demo      *handlers.DemoHandler
	Booking   *handlers.BookingHandler
}

// InitializeRoutes builds the gin engine with all middleware and routes.
func InitializeRoutes(cfg *config.Settings, deps Dependencies, logger *Logger.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.CORSMiddleware())
	r.Use(handlers.RequestLogger(logger))

	r.GET("/health", deps.Knowledge.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	deps.Knowledge.RegisterKnowledgeRoutes(api)
	deps.Demo.RegisterDemoRoutes(api)
	deps.Booking.RegisterBookingRoutes(api)

	return r
}
