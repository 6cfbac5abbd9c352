package api

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// pathID parses an integer path parameter, answering 400 on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

// callerID reads the identity the middleware stored. Absence means a route
// was wired without RequireIdentity, which is a server bug.
func callerID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return 0, false
	}
	return id, true
}

// pageParams parses from/size query parameters with the original defaults.
// Range validation happens in the usecase.
func pageParams(c *gin.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from format")
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid size format")
		return 0, 0, false
	}
	return from, size, true
}
