package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse/internal/api/controllers"
	"pulse/internal/config"
	"pulse/pkg/middleware"
)

// NewRouter assembles the engine with all middleware and routes. Route
// guards run as an explicit middleware chain before the handlers.
func NewRouter(
	cfg *config.Config,
	authMW *middleware.AuthMiddleware,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	roleController *controllers.RoleController,
	feedbackController *controllers.FeedbackController,
) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to " + cfg.AppName})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)

	userGroup := r.Group("/user")
	userGroup.GET("/profile", authMW.RequireAuth(), userController.Profile)
	userGroup.GET("/users", authMW.RequireAdmin(), userController.GetAllUsers)
	userGroup.PATCH("/users/:id", authMW.RequireAdmin(), userController.UpdateUser)

	adminGroup := r.Group("/admin")
	adminGroup.PATCH("/roles/:id", authMW.RequireAdmin(), roleController.UpdateRole)
	adminGroup.GET("/feedback", authMW.RequireAdmin(), feedbackController.ListFeedback)

	r.POST("/feedback", authMW.RequireAuth(), feedbackController.AddFeedback)
	r.GET("/feedback/summary", authMW.RequireAuth(), feedbackController.Summary)

	return r
}
