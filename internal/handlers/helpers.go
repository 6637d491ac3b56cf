package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

// idParam reads a positive numeric path parameter; on failure it has
// already written the 404 response.
func idParam(c *gin.Context, name, notFoundCode string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.ErrNotFound(notFoundCode))
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_request", ""))
		return false
	}
	return true
}
