package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rfp-backend/internal/shared/server/respond"
)

const userIDKey = "userId"

// Identity resolves the caller identity from request headers and stores it in
// context. The service is single-tenant and demo-grade: an X-User-Id header
// names a bid-desk user, an X-Guest-Id header names an anonymous session.
// There is no credential verification here, only attribution.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if userID := strings.TrimSpace(c.GetHeader("X-User-Id")); userID != "" {
			c.Set(userIDKey, userID)
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		c.Set(userIDKey, "guest:"+guestID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
