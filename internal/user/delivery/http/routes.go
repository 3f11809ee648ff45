package http

import (
	"campus-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", mw.Auth(), h.Logout)
		auth.GET("/session", mw.Auth(), h.Session)
	}

	users := rg.Group("/users")
	{
		users.GET("/profile", mw.Auth(), h.GetProfile)
		users.PUT("/profile", mw.Auth(), h.UpdateProfile)
		users.GET("/avatars", h.ListAvatars)
	}
}
