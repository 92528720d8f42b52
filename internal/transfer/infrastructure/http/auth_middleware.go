package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/jwt"
	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"
)

// NewAuthMiddleware accepts requests carrying a valid operator token and
// stores the operator name under jwt.OperatorContextKey.
func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse operator token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(jwt.OperatorContextKey, claims.Operator)
		c.Next()
	}
}
