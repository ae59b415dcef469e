package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context key under which the middleware stores the resolved user id.
const ctxUserID = "userId"

func (h *Handler) userIDMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "No token provided",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "No token provided",
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid or expired token",
		})
		return
	}

	// store in Gin context; the token claim is trusted, no user lookup
	c.Set(ctxUserID, userID)
	c.Next()
}

// ownerID pulls the authenticated user id out of the gin context. A missing
// or empty id means the middleware did not run.
func ownerID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// requireOwner writes the 401 rejection when no identity is present.
func (h *Handler) requireOwner(c *gin.Context) (string, bool) {
	id, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: User not logged in"})
	}
	return id, ok
}
