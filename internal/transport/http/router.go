package handlers

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"trainingcentre/internal/infrastructure/security"
	"trainingcentre/internal/middleware"
)

func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	courseHandler *CourseHandler,
	roadmapHandler *RoadmapHandler,
	limiter *middleware.RateLimiter,
	tokens *security.TokenManager,
	allowedOrigins string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(allowedOrigins, ",")
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			auth.POST("/logout", middleware.AuthMiddleware(tokens), authHandler.Logout)
		}

		course := api.Group("/courses")
		{
			course.GET("", courseHandler.List)
			course.GET("/:id", courseHandler.GetOne)

			enroll := course.Group("")
			enroll.Use(middleware.AuthMiddleware(tokens))
			{
				enroll.GET("/:id/checkout", courseHandler.Checkout)
				enroll.POST("/:id/enroll", courseHandler.Enroll)
				enroll.POST("/:id/pay", courseHandler.Pay)
			}
		}

		user := api.Group("/user")
		user.Use(middleware.AuthMiddleware(tokens))
		{
			user.GET("/dashboard", userHandler.Dashboard)
		}

		// One generation at a time per caller, plus a per-minute cap.
		api.POST("/roadmap",
			limiter.Limit("roadmap", 10, 1*time.Minute),
			limiter.InFlight("roadmap", 2*time.Minute),
			roadmapHandler.Generate)
	}

	return r
}
