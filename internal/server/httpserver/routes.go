package httpserver

import (
	"github.com/dmitrijs2005/jwtauth/internal/logging"
	"github.com/gin-gonic/gin"
)

func registerRoutes(engine *gin.Engine, h *Handler, basePath string, secret []byte, l logging.Logger) {
	engine.GET("/health", h.health)
	engine.GET("/api/", h.welcome)

	authRoutes := engine.Group(basePath)
	{
		authRoutes.POST("/signup", h.signUp)
		authRoutes.POST("/signin", h.signIn)
		authRoutes.GET("/test-public", h.testPublic)
		authRoutes.GET("/test-private", RequireAccessToken(secret, l), h.testPrivate)
	}
}
