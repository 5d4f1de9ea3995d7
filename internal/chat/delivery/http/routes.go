package http

import (
	"github.com/gin-gonic/gin"

	"asha-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Converse)
		chat.POST("/feedback", h.SubmitFeedback)
		chat.GET("/feedback/:session_id", h.ListFeedback)
	}
}
