package router

import (
	"linkden/internal/auth"
	"linkden/internal/handlers"
	"linkden/internal/middleware"
	"linkden/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine with all routes registered. The principal
// resolver runs on every request; authorization itself happens in the
// service layer, so no route group aborts unauthenticated calls here.
func New(svc *service.Service, resolver *auth.Resolver) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.SanitizeInput())
	r.Use(middleware.ResolvePrincipal(resolver))

	authHandler := handlers.NewAuthHandler(svc)
	postHandler := handlers.NewPostHandler(svc)
	userHandler := handlers.NewUserHandler(svc)

	api := r.Group("/api")
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)

		api.GET("/posts", postHandler.List)
		api.GET("/posts/:id", postHandler.Get)
		api.POST("/posts", postHandler.Write)
		api.DELETE("/posts/:id", postHandler.Delete)
		api.POST("/posts/:id/upvote", postHandler.Upvote)
		api.POST("/posts/:id/downvote", postHandler.Downvote)

		api.GET("/users", userHandler.List)
	}

	return r
}
