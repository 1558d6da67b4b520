package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
	userIDContextKey    = "userId"
)

// userIdMiddleware guards the /api/v1 group: it requires a Bearer token,
// resolves it to a user id and stores the id in the request context.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		abortUnauthorized(c, "missing Authorization header")
		return
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != bearerScheme || token == "" {
		abortUnauthorized(c, "invalid Authorization header format")
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		abortUnauthorized(c, "invalid or expired token")
		return
	}

	c.Set(userIDContextKey, userID)
	c.Next()
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
