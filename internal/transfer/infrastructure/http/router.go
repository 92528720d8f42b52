package http

import (
	"github.com/Lexv0lk/transfer-engine/internal/pkg/jwt"
	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type RouterSettings struct {
	AllowedOrigins []string
	JwtSecret      string
}

// NewRouter wires the account routes. Mutating routes require an operator
// token only when a JWT secret is configured.
func NewRouter(handler *AccountsHandler, tokenParser jwt.TokenParser, settings RouterSettings, logger logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewCORSMiddleware(settings.AllowedOrigins))

	accounts := router.Group("/v1/accounts")
	{
		accounts.GET("/:"+AccountIDKey, handler.GetAccount)

		mutating := accounts.Group("")
		if settings.JwtSecret != "" {
			mutating.Use(NewAuthMiddleware(settings.JwtSecret, tokenParser, logger))
		}

		mutating.POST("", handler.CreateAccount)
		mutating.POST("/transfer", handler.TransferFunds)
	}

	return router
}
