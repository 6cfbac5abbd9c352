package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the caller's asserted identity. There is no token
// behind it; every authenticated route trusts this integer id.
const HeaderUserID = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

// RequireIdentity parses the X-Sharer-User-Id header and stores the caller
// id in the request context. A missing or non-integer header is a 400.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "X-Sharer-User-Id header required",
			})
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "X-Sharer-User-Id header must be an integer",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
