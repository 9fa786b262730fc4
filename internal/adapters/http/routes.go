package router

import (
	"time"

	"github.com/VENUCODE/paint-ai/internal/adapters/http/dto"
	"github.com/VENUCODE/paint-ai/internal/adapters/http/handler"
	"github.com/VENUCODE/paint-ai/internal/adapters/http/middleware"
	"github.com/VENUCODE/paint-ai/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	ImageHandler *handler.ImageHandler
}

func SetupRoutes(config RouterConfig) *gin.Engine {

	h := config.ImageHandler

	g := gin.New()
	g.Use(
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:    []string{"Content-Type", "Authorization"},
			ExposeHeaders:   []string{middleware.RequestIDHeader},
			MaxAge:          12 * time.Hour,
		}),
		middleware.AddRequestIDAndTime(),
		middleware.PanicRecoveryMiddleware(h.Logger),
		middleware.LoggingRequestMiddleware(h.Logger),
	)

	// image routes
	api := g.Group("/api")
	api.Use(middleware.CheckContentType())
	{
		api.Handle("POST", "/edit-image",
			middleware.CheckContentBody[dto.StyleRequest](h.MaxAllowedSize, domain.StyleExterior.MissingFieldsMessage()),
			h.StyleHandler(domain.StyleExterior))
		api.Handle("POST", "/interior-design",
			middleware.CheckContentBody[dto.StyleRequest](h.MaxAllowedSize, domain.StyleInterior.MissingFieldsMessage()),
			h.StyleHandler(domain.StyleInterior))
		api.Handle("POST", "/nature-inspired",
			middleware.CheckContentBody[dto.NatureRequest](h.MaxAllowedSize, domain.StyleNatureInspired.MissingFieldsMessage()),
			h.StyleHandler(domain.StyleNatureInspired))
	}

	// public routes
	g.Handle("GET", "/", h.HomePageHandler)
	g.Handle("GET", "/health", h.HealthHandler)

	return g

}
