// Package server assembles the gin engine.
package server

import (
	"net/http"
	"time"

	_ "workbrew/docs"
	"workbrew/internal/handler"
	"workbrew/internal/middleware"
	"workbrew/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the router hands to its handlers.
type Dependencies struct {
	Cafes       handler.CafeService
	Gate        Gate
	Secret      string
	CORSOrigins []string
}

// Gate logs admins in and out and authorizes admin actions.
type Gate interface {
	handler.SessionGate
	middleware.Authorizer
}

// NewRouter builds the engine with every route registered.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.GET("/health", handler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiHandler := handler.NewAPIHandler(deps.Cafes)
	api := r.Group("/api")
	if len(deps.CORSOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:  deps.CORSOrigins,
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}
	api.GET("/cafes", apiHandler.ListCafes)

	cafeHandler := handler.NewCafeHandler(deps.Cafes)
	adminHandler := handler.NewAdminHandler(deps.Gate)

	site := r.Group("/")
	site.Use(middleware.Sessions(deps.Secret), middleware.CSRF(deps.Secret))
	{
		site.GET("/", cafeHandler.Index)
		site.GET("/add", cafeHandler.AddForm)
		site.POST("/add", cafeHandler.Add)
		site.POST("/cafe/:id/delete", middleware.RequireAdmin(deps.Gate), cafeHandler.Delete)

		site.GET("/admin/login", adminHandler.LoginForm)
		site.POST("/admin/login", adminHandler.Login)
		site.GET("/admin/logout", adminHandler.Logout)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Status":  http.StatusNotFound,
			"Message": "Page not found.",
		})
	})

	return r, nil
}
