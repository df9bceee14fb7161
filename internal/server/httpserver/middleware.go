package httpserver

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jwtauth/internal/common"
	"github.com/dmitrijs2005/jwtauth/internal/logging"
	"github.com/dmitrijs2005/jwtauth/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the verified *auth.Claims.
const IdentityKey = "auth.identity"

const (
	msgNoAccessToken      = "No access token provided"
	msgInvalidAccessToken = "Invalid access token"
)

// RequireAccessToken rejects requests without a valid jwt-auth cookie with
// 403. On success the claims are stored under IdentityKey and in the request
// context (see auth.IdentityFromContext).
func RequireAccessToken(secret []byte, l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.AccessTokenCookieName)
		if err != nil || token == "" {
			c.String(http.StatusForbidden, msgNoAccessToken)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token, secret)
		if err != nil {
			l.Warn(c.Request.Context(), "access token rejected", "path", c.Request.URL.Path, "error", err)
			c.String(http.StatusForbidden, msgInvalidAccessToken)
			c.Abort()
			return
		}

		c.Set(IdentityKey, claims)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), claims))
		c.Next()
	}
}

// accessLog writes one structured line per request.
func accessLog(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

// recovery turns a panic into a plain 500 and logs the recovered value.
// Stack traces never reach the client.
func recovery(l logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		l.Error(c.Request.Context(), "panic recovered",
			"method", c.Request.Method, "path", c.Request.URL.Path, "panic", fmt.Sprint(recovered))
		c.String(http.StatusInternalServerError, msgInternalError)
		c.Abort()
	})
}
